package usecases

import (
	"context"

	"github.com/esit-pro/service-desk/internal/application/servicerequest/dto"
	"github.com/esit-pro/service-desk/internal/domain/servicerequest"
	vo "github.com/esit-pro/service-desk/internal/domain/servicerequest/valueobjects"
	"github.com/esit-pro/service-desk/internal/shared/errors"
	"github.com/esit-pro/service-desk/internal/shared/logger"
)

type ChangePriorityCommand struct {
	RequestID string
	Priority  int
}

type ChangePriorityUseCase struct {
	repo   servicerequest.Repository
	logger logger.Interface
}

func NewChangePriorityUseCase(repo servicerequest.Repository, logger logger.Interface) *ChangePriorityUseCase {
	return &ChangePriorityUseCase{repo: repo, logger: logger}
}

func (uc *ChangePriorityUseCase) Execute(ctx context.Context, cmd ChangePriorityCommand) (*dto.ServiceRequestDTO, error) {
	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	sr, err := uc.repo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}
	if sr == nil {
		return nil, nil
	}

	if err := sr.UpdatePriority(priority); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	found, err := uc.repo.Update(ctx, sr)
	if err != nil {
		uc.logger.Error("failed to update service request priority", "id", cmd.RequestID, "error", err)
		return nil, err
	}
	if !found {
		return nil, nil
	}

	return dto.ToServiceRequestDTO(sr), nil
}
