package usecases

import (
	"context"

	"github.com/esit-pro/service-desk/internal/application/message/dto"
	"github.com/esit-pro/service-desk/internal/domain/message"
	"github.com/esit-pro/service-desk/internal/shared/logger"
	"github.com/esit-pro/service-desk/internal/shared/utils"
)

type ListMessagesQuery struct {
	Page     int
	PageSize int
	Filter   message.Filter
}

type ListMessagesUseCase struct {
	repo   message.Repository
	logger logger.Interface
}

func NewListMessagesUseCase(repo message.Repository, logger logger.Interface) *ListMessagesUseCase {
	return &ListMessagesUseCase{repo: repo, logger: logger}
}

func (uc *ListMessagesUseCase) Execute(ctx context.Context, query ListMessagesQuery) (*dto.ListMessagesResult, error) {
	p := utils.ValidatePagination(query.Page, query.PageSize)

	msgs, total, err := uc.repo.List(ctx, query.Filter, p.Page, p.PageSize)
	if err != nil {
		uc.logger.Error("failed to list messages", "error", err)
		return nil, err
	}

	return &dto.ListMessagesResult{
		Items:   dto.ToClientMessageDTOs(msgs),
		Total:   total,
		Page:    p.Page,
		HasMore: utils.HasMore(total, p.Page, p.PageSize),
	}, nil
}
