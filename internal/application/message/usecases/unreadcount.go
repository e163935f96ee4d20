package usecases

import (
	"context"

	"github.com/esit-pro/service-desk/internal/application/message/dto"
	"github.com/esit-pro/service-desk/internal/domain/message"
	"github.com/esit-pro/service-desk/internal/shared/logger"
)

type UnreadCountUseCase struct {
	repo   message.Repository
	logger logger.Interface
}

func NewUnreadCountUseCase(repo message.Repository, logger logger.Interface) *UnreadCountUseCase {
	return &UnreadCountUseCase{repo: repo, logger: logger}
}

func (uc *UnreadCountUseCase) Execute(ctx context.Context) (*dto.UnreadCountResult, error) {
	count, err := uc.repo.CountUnread(ctx)
	if err != nil {
		uc.logger.Error("failed to count unread messages", "error", err)
		return nil, err
	}
	return &dto.UnreadCountResult{Count: count}, nil
}
