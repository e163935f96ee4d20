package usecases

import (
	"context"

	"github.com/esit-pro/service-desk/internal/application/servicerequest/dto"
	"github.com/esit-pro/service-desk/internal/domain/servicerequest"
	"github.com/esit-pro/service-desk/internal/shared/logger"
	"github.com/esit-pro/service-desk/internal/shared/utils"
)

type ListRequestsQuery struct {
	Page     int
	PageSize int
}

type ListRequestsUseCase struct {
	repo   servicerequest.Repository
	logger logger.Interface
}

func NewListRequestsUseCase(repo servicerequest.Repository, logger logger.Interface) *ListRequestsUseCase {
	return &ListRequestsUseCase{repo: repo, logger: logger}
}

func (uc *ListRequestsUseCase) Execute(ctx context.Context, query ListRequestsQuery) (*dto.ListServiceRequestsResult, error) {
	p := utils.ValidatePagination(query.Page, query.PageSize)

	requests, total, err := uc.repo.List(ctx, p.Page, p.PageSize)
	if err != nil {
		uc.logger.Error("failed to list service requests", "error", err)
		return nil, err
	}

	return &dto.ListServiceRequestsResult{
		Items:   dto.ToServiceRequestDTOs(requests),
		Total:   total,
		Page:    p.Page,
		HasMore: utils.HasMore(total, p.Page, p.PageSize),
	}, nil
}
