package usecases

import (
	"context"

	"github.com/esit-pro/service-desk/internal/application/servicerequest/dto"
	"github.com/esit-pro/service-desk/internal/domain/servicerequest"
	"github.com/esit-pro/service-desk/internal/shared/errors"
	"github.com/esit-pro/service-desk/internal/shared/logger"
)

type LogHoursCommand struct {
	RequestID string
	Hours     float64
}

type LogHoursUseCase struct {
	repo   servicerequest.Repository
	logger logger.Interface
}

func NewLogHoursUseCase(repo servicerequest.Repository, logger logger.Interface) *LogHoursUseCase {
	return &LogHoursUseCase{repo: repo, logger: logger}
}

func (uc *LogHoursUseCase) Execute(ctx context.Context, cmd LogHoursCommand) (*dto.ServiceRequestDTO, error) {
	sr, err := uc.repo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}
	if sr == nil {
		return nil, nil
	}

	if err := sr.LogHours(cmd.Hours); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	found, err := uc.repo.Update(ctx, sr)
	if err != nil {
		uc.logger.Error("failed to log hours", "id", cmd.RequestID, "error", err)
		return nil, err
	}
	if !found {
		return nil, nil
	}

	return dto.ToServiceRequestDTO(sr), nil
}
