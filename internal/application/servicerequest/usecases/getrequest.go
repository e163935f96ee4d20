package usecases

import (
	"context"

	"github.com/esit-pro/service-desk/internal/application/servicerequest/dto"
	"github.com/esit-pro/service-desk/internal/domain/servicerequest"
	"github.com/esit-pro/service-desk/internal/shared/logger"
)

type GetRequestUseCase struct {
	repo   servicerequest.Repository
	logger logger.Interface
}

func NewGetRequestUseCase(repo servicerequest.Repository, logger logger.Interface) *GetRequestUseCase {
	return &GetRequestUseCase{repo: repo, logger: logger}
}

// Execute returns nil without error when the ID is unknown; the caller
// decides whether a miss is an error.
func (uc *GetRequestUseCase) Execute(ctx context.Context, id string) (*dto.ServiceRequestDTO, error) {
	sr, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Error("failed to get service request", "id", id, "error", err)
		return nil, err
	}
	return dto.ToServiceRequestDTO(sr), nil
}
