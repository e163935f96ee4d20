package usecases

import (
	"context"

	"github.com/esit-pro/service-desk/internal/application/message/dto"
	"github.com/esit-pro/service-desk/internal/domain/message"
	"github.com/esit-pro/service-desk/internal/shared/logger"
	"github.com/esit-pro/service-desk/internal/shared/utils"
)

type SearchMessagesQuery struct {
	Query    string
	Page     int
	PageSize int
}

type SearchMessagesUseCase struct {
	repo   message.Repository
	logger logger.Interface
}

func NewSearchMessagesUseCase(repo message.Repository, logger logger.Interface) *SearchMessagesUseCase {
	return &SearchMessagesUseCase{repo: repo, logger: logger}
}

func (uc *SearchMessagesUseCase) Execute(ctx context.Context, query SearchMessagesQuery) (*dto.ListMessagesResult, error) {
	p := utils.ValidatePagination(query.Page, query.PageSize)

	msgs, total, err := uc.repo.Search(ctx, query.Query, p.Page, p.PageSize)
	if err != nil {
		uc.logger.Error("message search failed", "query", query.Query, "error", err)
		return nil, err
	}

	return &dto.ListMessagesResult{
		Items:   dto.ToClientMessageDTOs(msgs),
		Total:   total,
		Page:    p.Page,
		HasMore: utils.HasMore(total, p.Page, p.PageSize),
	}, nil
}
