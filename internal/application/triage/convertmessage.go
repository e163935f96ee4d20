// Package triage bridges the message and service request contexts:
// converting a client message into a ticket and linking messages to
// existing tickets.
package triage

import (
	"context"

	msgdto "github.com/esit-pro/service-desk/internal/application/message/dto"
	srdto "github.com/esit-pro/service-desk/internal/application/servicerequest/dto"
	"github.com/esit-pro/service-desk/internal/domain/message"
	msgvo "github.com/esit-pro/service-desk/internal/domain/message/valueobjects"
	"github.com/esit-pro/service-desk/internal/domain/servicerequest"
	srvo "github.com/esit-pro/service-desk/internal/domain/servicerequest/valueobjects"
	"github.com/esit-pro/service-desk/internal/shared/errors"
	"github.com/esit-pro/service-desk/internal/shared/logger"
)

type ConvertMessageCommand struct {
	MessageID string
	Category  string
	Priority  int
}

type ConvertMessageResult struct {
	Request *srdto.ServiceRequestDTO `json:"request"`
	Message *msgdto.ClientMessageDTO `json:"message"`
}

// ConvertMessageUseCase creates a service request from a client message
// and marks the message converted. The message is fetched and validated
// before anything is written, so a failure leaves both stores untouched.
type ConvertMessageUseCase struct {
	messages message.Repository
	requests servicerequest.Repository
	logger   logger.Interface
}

func NewConvertMessageUseCase(messages message.Repository, requests servicerequest.Repository, logger logger.Interface) *ConvertMessageUseCase {
	return &ConvertMessageUseCase{messages: messages, requests: requests, logger: logger}
}

// Execute returns nil without error when the message does not exist.
func (uc *ConvertMessageUseCase) Execute(ctx context.Context, cmd ConvertMessageCommand) (*ConvertMessageResult, error) {
	priority, err := srvo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	m, err := uc.messages.GetByID(ctx, cmd.MessageID)
	if err != nil {
		uc.logger.Error("failed to fetch message for conversion", "id", cmd.MessageID, "error", err)
		return nil, err
	}
	if m == nil {
		return nil, nil
	}

	sr, err := servicerequest.New(m.Subject, m.Content, cmd.Category, priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	sr.ClientID = m.ClientID
	sr.ClientName = m.ClientName
	sr.ClientEmail = m.ClientEmail
	sr.SourceMessageIDs = []string{m.ID}
	if !m.Category.IsZero() {
		sr.Tags = []string{m.Category.String()}
	}

	if err := uc.requests.Save(ctx, sr); err != nil {
		uc.logger.Error("failed to save converted request", "message_id", m.ID, "error", err)
		return nil, err
	}

	converted := msgvo.MessageStatusConverted
	found, err := uc.messages.Update(ctx, m.ID, message.Patch{
		Status:           &converted,
		RelatedServiceID: &sr.ID,
	})
	if err != nil {
		uc.logger.Error("failed to mark message converted", "message_id", m.ID, "request_id", sr.ID, "error", err)
		return nil, err
	}
	if !found {
		return nil, errors.NewInternalError("message vanished during conversion")
	}

	m.Status = converted
	m.RelatedServiceID = sr.ID

	uc.logger.Info("message converted", "message_id", m.ID, "request_id", sr.ID)
	return &ConvertMessageResult{
		Request: srdto.ToServiceRequestDTO(sr),
		Message: msgdto.ToClientMessageDTO(m),
	}, nil
}
