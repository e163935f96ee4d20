package message

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/esit-pro/service-desk/internal/application/message/usecases"
	"github.com/esit-pro/service-desk/internal/domain/message"
	vo "github.com/esit-pro/service-desk/internal/domain/message/valueobjects"
	"github.com/esit-pro/service-desk/internal/shared/constants"
	"github.com/esit-pro/service-desk/internal/shared/errors"
)

type CreateMessageBody struct {
	ClientID    string   `json:"client_id" binding:"required"`
	ClientName  string   `json:"client_name" binding:"required"`
	ClientEmail string   `json:"client_email" binding:"required,email"`
	Subject     string   `json:"subject" binding:"required"`
	Content     string   `json:"content" binding:"required"`
	Category    string   `json:"category,omitempty"`
	Attachments []string `json:"attachments,omitempty"`
}

func (r *CreateMessageBody) ToCommand() usecases.CreateMessageCommand {
	return usecases.CreateMessageCommand{
		ClientID:    r.ClientID,
		ClientName:  r.ClientName,
		ClientEmail: r.ClientEmail,
		Subject:     r.Subject,
		Content:     r.Content,
		Category:    r.Category,
		Attachments: r.Attachments,
	}
}

type FlagBody struct {
	IsFlagged *bool `json:"is_flagged" binding:"required"`
}

type StatusBody struct {
	Status string `json:"status" binding:"required"`
}

type AssignBody struct {
	AssignedTo string `json:"assigned_to"`
}

type BatchUpdateBody struct {
	MessageIDs []string `json:"message_ids" binding:"required"`
	Status     *string  `json:"status,omitempty"`
	IsRead     *bool    `json:"is_read,omitempty"`
	IsFlagged  *bool    `json:"is_flagged,omitempty"`
	AssignedTo *string  `json:"assigned_to,omitempty"`
}

func (r *BatchUpdateBody) ToCommand() usecases.BatchUpdateCommand {
	return usecases.BatchUpdateCommand{
		MessageIDs: r.MessageIDs,
		Status:     r.Status,
		IsRead:     r.IsRead,
		IsFlagged:  r.IsFlagged,
		AssignedTo: r.AssignedTo,
	}
}

type ConvertBody struct {
	Category string `json:"category" binding:"required"`
	Priority int    `json:"priority" binding:"required"`
}

type LinkBody struct {
	RequestID string `json:"request_id" binding:"required"`
}

type RelatedServiceBody struct {
	ServiceRequestID string `json:"service_request_id" binding:"required"`
}

type BatchIDsBody struct {
	MessageIDs []string `json:"message_ids" binding:"required"`
}

func parsePageParams(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(constants.DefaultPageSize)))
	return page, pageSize
}

// parseFilter builds the list filter from query parameters. Unknown
// status or category values are rejected up front.
func parseFilter(c *gin.Context) (message.Filter, error) {
	var f message.Filter

	if s := c.Query("status"); s != "" {
		status, err := vo.NewMessageStatus(s)
		if err != nil {
			return f, errors.NewValidationError(err.Error())
		}
		f.Status = &status
	}
	if s := c.Query("category"); s != "" {
		category, err := vo.NewCategory(s)
		if err != nil {
			return f, errors.NewValidationError(err.Error())
		}
		f.Category = &category
	}
	if s := c.Query("is_read"); s != "" {
		isRead, err := strconv.ParseBool(s)
		if err != nil {
			return f, errors.NewValidationError("is_read must be a boolean")
		}
		f.IsRead = &isRead
	}
	if s := c.Query("is_flagged"); s != "" {
		isFlagged, err := strconv.ParseBool(s)
		if err != nil {
			return f, errors.NewValidationError("is_flagged must be a boolean")
		}
		f.IsFlagged = &isFlagged
	}
	if s := c.Query("client_id"); s != "" {
		f.ClientID = &s
	}
	if s := c.Query("assigned_to"); s != "" {
		f.AssignedTo = &s
	}
	if s := c.Query("related_service_id"); s != "" {
		f.RelatedServiceID = &s
	}

	return f, nil
}
