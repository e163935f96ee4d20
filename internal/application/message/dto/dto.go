package dto

import (
	"time"

	"github.com/esit-pro/service-desk/internal/domain/message"
)

type ClientMessageDTO struct {
	ID               string    `json:"id"`
	ClientID         string    `json:"client_id"`
	ClientName       string    `json:"client_name"`
	ClientEmail      string    `json:"client_email"`
	Subject          string    `json:"subject"`
	Content          string    `json:"content"`
	Attachments      []string  `json:"attachments,omitempty"`
	Received         time.Time `json:"received"`
	IsRead           bool      `json:"is_read"`
	IsFlagged        bool      `json:"is_flagged,omitempty"`
	Category         string    `json:"category,omitempty"`
	Status           string    `json:"status"`
	AssignedTo       string    `json:"assigned_to,omitempty"`
	RelatedServiceID string    `json:"related_service_id,omitempty"`
}

type ListMessagesResult struct {
	Items   []*ClientMessageDTO `json:"items"`
	Total   int64               `json:"total"`
	Page    int                 `json:"page"`
	HasMore bool                `json:"has_more"`
}

type ThreadMessageDTO struct {
	ID          string    `json:"id"`
	Sender      string    `json:"sender"`
	SenderName  string    `json:"sender_name"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
	Attachments []string  `json:"attachments,omitempty"`
	IsRead      bool      `json:"is_read"`
}

type ThreadDTO struct {
	ID               string             `json:"id"`
	Messages         []ThreadMessageDTO `json:"messages"`
	ServiceRequestID string             `json:"service_request_id,omitempty"`
	IsArchived       bool               `json:"is_archived"`
}

type ListThreadsResult struct {
	Items   []*ThreadDTO `json:"items"`
	Total   int64        `json:"total"`
	Page    int          `json:"page"`
	HasMore bool         `json:"has_more"`
}

type UnreadCountResult struct {
	Count int64 `json:"count"`
}

func ToClientMessageDTO(m *message.ClientMessage) *ClientMessageDTO {
	if m == nil {
		return nil
	}
	return &ClientMessageDTO{
		ID:               m.ID,
		ClientID:         m.ClientID,
		ClientName:       m.ClientName,
		ClientEmail:      m.ClientEmail,
		Subject:          m.Subject,
		Content:          m.Content,
		Attachments:      m.Attachments,
		Received:         m.Received,
		IsRead:           m.IsRead,
		IsFlagged:        m.IsFlagged,
		Category:         m.Category.String(),
		Status:           m.Status.String(),
		AssignedTo:       m.AssignedTo,
		RelatedServiceID: m.RelatedServiceID,
	}
}

func ToClientMessageDTOs(msgs []*message.ClientMessage) []*ClientMessageDTO {
	out := make([]*ClientMessageDTO, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, ToClientMessageDTO(m))
	}
	return out
}

func ToThreadMessageDTO(tm *message.ThreadMessage) ThreadMessageDTO {
	return ThreadMessageDTO{
		ID:          tm.ID,
		Sender:      tm.Sender.String(),
		SenderName:  tm.SenderName,
		Content:     tm.Content,
		Timestamp:   tm.Timestamp,
		Attachments: tm.Attachments,
		IsRead:      tm.IsRead,
	}
}

func ToThreadDTO(t *message.MessageThread) *ThreadDTO {
	if t == nil {
		return nil
	}
	msgs := make([]ThreadMessageDTO, 0, len(t.Messages))
	for i := range t.Messages {
		msgs = append(msgs, ToThreadMessageDTO(&t.Messages[i]))
	}
	return &ThreadDTO{
		ID:               t.ID,
		Messages:         msgs,
		ServiceRequestID: t.ServiceRequestID,
		IsArchived:       t.IsArchived,
	}
}

func ToThreadDTOs(threads []*message.MessageThread) []*ThreadDTO {
	out := make([]*ThreadDTO, 0, len(threads))
	for _, t := range threads {
		out = append(out, ToThreadDTO(t))
	}
	return out
}
