package usecases

import (
	"context"

	"github.com/esit-pro/service-desk/internal/application/message/dto"
	"github.com/esit-pro/service-desk/internal/domain/message"
	"github.com/esit-pro/service-desk/internal/shared/logger"
)

type GetMessageUseCase struct {
	repo   message.Repository
	logger logger.Interface
}

func NewGetMessageUseCase(repo message.Repository, logger logger.Interface) *GetMessageUseCase {
	return &GetMessageUseCase{repo: repo, logger: logger}
}

// Execute returns nil without error when the ID is unknown.
func (uc *GetMessageUseCase) Execute(ctx context.Context, id string) (*dto.ClientMessageDTO, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Error("failed to get message", "id", id, "error", err)
		return nil, err
	}
	return dto.ToClientMessageDTO(m), nil
}
