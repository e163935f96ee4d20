package triage

import (
	"context"

	msgdto "github.com/esit-pro/service-desk/internal/application/message/dto"
	"github.com/esit-pro/service-desk/internal/domain/message"
	"github.com/esit-pro/service-desk/internal/domain/servicerequest"
	"github.com/esit-pro/service-desk/internal/shared/errors"
	"github.com/esit-pro/service-desk/internal/shared/logger"
)

type LinkMessageCommand struct {
	MessageID string
	RequestID string
}

// LinkMessageUseCase attaches an existing message to an existing service
// request, keeping both sides of the reference consistent. Linking the
// same pair twice is a no-op on the request side.
type LinkMessageUseCase struct {
	messages message.Repository
	requests servicerequest.Repository
	logger   logger.Interface
}

func NewLinkMessageUseCase(messages message.Repository, requests servicerequest.Repository, logger logger.Interface) *LinkMessageUseCase {
	return &LinkMessageUseCase{messages: messages, requests: requests, logger: logger}
}

// Execute returns nil without error when either side of the link is
// missing.
func (uc *LinkMessageUseCase) Execute(ctx context.Context, cmd LinkMessageCommand) (*msgdto.ClientMessageDTO, error) {
	m, err := uc.messages.GetByID(ctx, cmd.MessageID)
	if err != nil {
		uc.logger.Error("failed to fetch message for linking", "id", cmd.MessageID, "error", err)
		return nil, err
	}
	if m == nil {
		return nil, nil
	}

	sr, err := uc.requests.GetByID(ctx, cmd.RequestID)
	if err != nil {
		uc.logger.Error("failed to fetch request for linking", "id", cmd.RequestID, "error", err)
		return nil, err
	}
	if sr == nil {
		return nil, nil
	}

	found, err := uc.messages.Update(ctx, m.ID, message.Patch{RelatedServiceID: &sr.ID})
	if err != nil {
		uc.logger.Error("failed to link message", "message_id", m.ID, "request_id", sr.ID, "error", err)
		return nil, err
	}
	if !found {
		return nil, errors.NewInternalError("message vanished during linking")
	}

	sr.LinkSourceMessage(m.ID)
	if _, err := uc.requests.Update(ctx, sr); err != nil {
		uc.logger.Error("failed to record source message", "message_id", m.ID, "request_id", sr.ID, "error", err)
		return nil, err
	}

	m.RelatedServiceID = sr.ID

	uc.logger.Info("message linked", "message_id", m.ID, "request_id", sr.ID)
	return msgdto.ToClientMessageDTO(m), nil
}
