package usecases

import (
	"context"

	"github.com/esit-pro/service-desk/internal/application/servicerequest/dto"
	"github.com/esit-pro/service-desk/internal/domain/servicerequest"
	vo "github.com/esit-pro/service-desk/internal/domain/servicerequest/valueobjects"
	"github.com/esit-pro/service-desk/internal/shared/errors"
	"github.com/esit-pro/service-desk/internal/shared/logger"
)

type ChangeStatusCommand struct {
	RequestID string
	Status    string
}

type ChangeStatusUseCase struct {
	repo   servicerequest.Repository
	logger logger.Interface
}

func NewChangeStatusUseCase(repo servicerequest.Repository, logger logger.Interface) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{repo: repo, logger: logger}
}

// Execute sets the workflow state. Any valid status is accepted from any
// other; a nil result without error means the request does not exist.
func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*dto.ServiceRequestDTO, error) {
	status, err := vo.NewStatus(cmd.Status)
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

	if err := sr.UpdateStatus(status); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	found, err := uc.repo.Update(ctx, sr)
	if err != nil {
		uc.logger.Error("failed to update service request status", "id", cmd.RequestID, "error", err)
		return nil, err
	}
	if !found {
		return nil, nil
	}

	uc.logger.Info("service request status changed", "id", sr.ID, "status", status.String())
	return dto.ToServiceRequestDTO(sr), nil
}
