package usecases

import (
	"context"

	"github.com/esit-pro/service-desk/internal/application/message/dto"
	"github.com/esit-pro/service-desk/internal/domain/message"
	vo "github.com/esit-pro/service-desk/internal/domain/message/valueobjects"
	"github.com/esit-pro/service-desk/internal/shared/errors"
	"github.com/esit-pro/service-desk/internal/shared/logger"
)

type CreateMessageCommand struct {
	ClientID    string
	ClientName  string
	ClientEmail string
	Subject     string
	Content     string
	Category    string
	Attachments []string
}

type CreateMessageUseCase struct {
	repo   message.Repository
	logger logger.Interface
}

func NewCreateMessageUseCase(repo message.Repository, logger logger.Interface) *CreateMessageUseCase {
	return &CreateMessageUseCase{repo: repo, logger: logger}
}

func (uc *CreateMessageUseCase) Execute(ctx context.Context, cmd CreateMessageCommand) (*dto.ClientMessageDTO, error) {
	var category vo.Category
	if cmd.Category != "" {
		var err error
		if category, err = vo.NewCategory(cmd.Category); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	m, err := message.NewClientMessage(cmd.ClientID, cmd.ClientName, cmd.ClientEmail, cmd.Subject, cmd.Content, category)
	if err != nil {
		uc.logger.Error("failed to build message", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}
	m.Attachments = cmd.Attachments

	if err := uc.repo.Save(ctx, m); err != nil {
		uc.logger.Error("failed to save message", "error", err)
		return nil, err
	}

	uc.logger.Info("client message created", "id", m.ID, "client_id", m.ClientID)
	return dto.ToClientMessageDTO(m), nil
}
