package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/esit-pro/service-desk/internal/domain/message"
	vo "github.com/esit-pro/service-desk/internal/domain/message/valueobjects"
	"github.com/esit-pro/service-desk/internal/infrastructure/persistence/models"
)

// MessageMapper handles the conversion between message domain entities
// and persistence models.
type MessageMapper interface {
	ToModel(m *message.ClientMessage) (*models.ClientMessageModel, error)
	ToDomain(model *models.ClientMessageModel) (*message.ClientMessage, error)
	ThreadToModel(t *message.MessageThread) (*models.MessageThreadModel, error)
	ThreadToDomain(model *models.MessageThreadModel) (*message.MessageThread, error)
}

type MessageMapperImpl struct{}

func NewMessageMapper() MessageMapper {
	return &MessageMapperImpl{}
}

func (mp *MessageMapperImpl) ToModel(m *message.ClientMessage) (*models.ClientMessageModel, error) {
	model := &models.ClientMessageModel{
		ID:               m.ID,
		ClientID:         m.ClientID,
		ClientName:       m.ClientName,
		ClientEmail:      m.ClientEmail,
		Subject:          m.Subject,
		Content:          m.Content,
		Received:         m.Received.UnixMilli(),
		IsRead:           m.IsRead,
		IsFlagged:        m.IsFlagged,
		Category:         m.Category.String(),
		Status:           m.Status.String(),
		AssignedTo:       m.AssignedTo,
		RelatedServiceID: m.RelatedServiceID,
	}

	var err error
	if model.Attachments, err = marshalStrings(m.Attachments); err != nil {
		return nil, fmt.Errorf("marshal attachments: %w", err)
	}
	return model, nil
}

func (mp *MessageMapperImpl) ToDomain(model *models.ClientMessageModel) (*message.ClientMessage, error) {
	status, err := vo.NewMessageStatus(model.Status)
	if err != nil {
		return nil, err
	}

	var category vo.Category
	if model.Category != "" {
		if category, err = vo.NewCategory(model.Category); err != nil {
			return nil, err
		}
	}

	m := &message.ClientMessage{
		ID:               model.ID,
		ClientID:         model.ClientID,
		ClientName:       model.ClientName,
		ClientEmail:      model.ClientEmail,
		Subject:          model.Subject,
		Content:          model.Content,
		Received:         time.UnixMilli(model.Received),
		IsRead:           model.IsRead,
		IsFlagged:        model.IsFlagged,
		Category:         category,
		Status:           status,
		AssignedTo:       model.AssignedTo,
		RelatedServiceID: model.RelatedServiceID,
	}

	if m.Attachments, err = unmarshalStrings(model.Attachments); err != nil {
		return nil, fmt.Errorf("unmarshal attachments: %w", err)
	}
	return m, nil
}

// threadMessageRecord is the JSON shape of one thread entry inside the
// thread row.
type threadMessageRecord struct {
	ID          string   `json:"id"`
	Sender      string   `json:"sender"`
	SenderName  string   `json:"sender_name"`
	Content     string   `json:"content"`
	Timestamp   int64    `json:"timestamp"`
	Attachments []string `json:"attachments,omitempty"`
	IsRead      bool     `json:"is_read"`
}

func (mp *MessageMapperImpl) ThreadToModel(t *message.MessageThread) (*models.MessageThreadModel, error) {
	records := make([]threadMessageRecord, 0, len(t.Messages))
	for _, tm := range t.Messages {
		records = append(records, threadMessageRecord{
			ID:          tm.ID,
			Sender:      tm.Sender.String(),
			SenderName:  tm.SenderName,
			Content:     tm.Content,
			Timestamp:   tm.Timestamp.UnixMilli(),
			Attachments: tm.Attachments,
			IsRead:      tm.IsRead,
		})
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("marshal thread messages: %w", err)
	}

	return &models.MessageThreadModel{
		ID:               t.ID,
		Messages:         raw,
		ServiceRequestID: t.ServiceRequestID,
		IsArchived:       t.IsArchived,
	}, nil
}

func (mp *MessageMapperImpl) ThreadToDomain(model *models.MessageThreadModel) (*message.MessageThread, error) {
	var records []threadMessageRecord
	if err := json.Unmarshal(model.Messages, &records); err != nil {
		return nil, fmt.Errorf("unmarshal thread messages: %w", err)
	}

	msgs := make([]message.ThreadMessage, 0, len(records))
	for _, rec := range records {
		sender, err := vo.NewSender(rec.Sender)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, message.ThreadMessage{
			ID:          rec.ID,
			Sender:      sender,
			SenderName:  rec.SenderName,
			Content:     rec.Content,
			Timestamp:   time.UnixMilli(rec.Timestamp),
			Attachments: rec.Attachments,
			IsRead:      rec.IsRead,
		})
	}

	return &message.MessageThread{
		ID:               model.ID,
		Messages:         msgs,
		ServiceRequestID: model.ServiceRequestID,
		IsArchived:       model.IsArchived,
	}, nil
}
