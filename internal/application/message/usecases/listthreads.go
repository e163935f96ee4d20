package usecases

import (
	"context"

	"github.com/esit-pro/service-desk/internal/application/message/dto"
	"github.com/esit-pro/service-desk/internal/domain/message"
	"github.com/esit-pro/service-desk/internal/shared/logger"
	"github.com/esit-pro/service-desk/internal/shared/utils"
)

type ListThreadsQuery struct {
	Page     int
	PageSize int
}

type ListThreadsUseCase struct {
	threads message.ThreadRepository
	logger  logger.Interface
}

func NewListThreadsUseCase(threads message.ThreadRepository, logger logger.Interface) *ListThreadsUseCase {
	return &ListThreadsUseCase{threads: threads, logger: logger}
}

func (uc *ListThreadsUseCase) Execute(ctx context.Context, query ListThreadsQuery) (*dto.ListThreadsResult, error) {
	p := utils.ValidatePagination(query.Page, query.PageSize)

	threads, total, err := uc.threads.List(ctx, p.Page, p.PageSize)
	if err != nil {
		uc.logger.Error("failed to list threads", "error", err)
		return nil, err
	}

	return &dto.ListThreadsResult{
		Items:   dto.ToThreadDTOs(threads),
		Total:   total,
		Page:    p.Page,
		HasMore: utils.HasMore(total, p.Page, p.PageSize),
	}, nil
}
