package usecases

import (
	"context"

	"github.com/esit-pro/service-desk/internal/application/servicerequest/dto"
	"github.com/esit-pro/service-desk/internal/domain/servicerequest"
	"github.com/esit-pro/service-desk/internal/shared/logger"
)

type AssignRequestCommand struct {
	RequestID  string
	AssignedTo string
}

type AssignRequestUseCase struct {
	repo   servicerequest.Repository
	logger logger.Interface
}

func NewAssignRequestUseCase(repo servicerequest.Repository, logger logger.Interface) *AssignRequestUseCase {
	return &AssignRequestUseCase{repo: repo, logger: logger}
}

// Execute assigns the request. An empty assignee clears the assignment.
func (uc *AssignRequestUseCase) Execute(ctx context.Context, cmd AssignRequestCommand) (*dto.ServiceRequestDTO, error) {
	sr, err := uc.repo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}
	if sr == nil {
		return nil, nil
	}

	sr.Assign(cmd.AssignedTo)

	found, err := uc.repo.Update(ctx, sr)
	if err != nil {
		uc.logger.Error("failed to assign service request", "id", cmd.RequestID, "error", err)
		return nil, err
	}
	if !found {
		return nil, nil
	}

	return dto.ToServiceRequestDTO(sr), nil
}
