package usecases

import (
	"context"

	"github.com/esit-pro/service-desk/internal/application/message/dto"
	"github.com/esit-pro/service-desk/internal/domain/message"
	"github.com/esit-pro/service-desk/internal/shared/logger"
)

type GetThreadUseCase struct {
	threads message.ThreadRepository
	logger  logger.Interface
}

func NewGetThreadUseCase(threads message.ThreadRepository, logger logger.Interface) *GetThreadUseCase {
	return &GetThreadUseCase{threads: threads, logger: logger}
}

// Execute returns nil without error when the ID is unknown.
func (uc *GetThreadUseCase) Execute(ctx context.Context, id string) (*dto.ThreadDTO, error) {
	t, err := uc.threads.GetByID(ctx, id)
	if err != nil {
		uc.logger.Error("failed to fetch thread", "id", id, "error", err)
		return nil, err
	}
	return dto.ToThreadDTO(t), nil
}
