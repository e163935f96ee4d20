package usecases

import (
	"context"

	"github.com/esit-pro/service-desk/internal/application/servicerequest/dto"
	"github.com/esit-pro/service-desk/internal/domain/servicerequest"
	vo "github.com/esit-pro/service-desk/internal/domain/servicerequest/valueobjects"
	"github.com/esit-pro/service-desk/internal/shared/errors"
	"github.com/esit-pro/service-desk/internal/shared/logger"
)

type CreateRequestCommand struct {
	Title       string
	Description string
	Category    string
	Priority    int
	ClientID    string
	ClientName  string
	ClientEmail string
	Tags        []string
}

type CreateRequestUseCase struct {
	repo   servicerequest.Repository
	logger logger.Interface
}

func NewCreateRequestUseCase(repo servicerequest.Repository, logger logger.Interface) *CreateRequestUseCase {
	return &CreateRequestUseCase{repo: repo, logger: logger}
}

func (uc *CreateRequestUseCase) Execute(ctx context.Context, cmd CreateRequestCommand) (*dto.ServiceRequestDTO, error) {
	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	sr, err := servicerequest.New(cmd.Title, cmd.Description, cmd.Category, priority)
	if err != nil {
		uc.logger.Error("failed to build service request", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}
	sr.ClientID = cmd.ClientID
	sr.ClientName = cmd.ClientName
	sr.ClientEmail = cmd.ClientEmail
	sr.Tags = cmd.Tags

	if err := uc.repo.Save(ctx, sr); err != nil {
		uc.logger.Error("failed to save service request", "error", err)
		return nil, err
	}

	uc.logger.Info("service request created", "id", sr.ID, "priority", sr.Priority.Int())
	return dto.ToServiceRequestDTO(sr), nil
}
