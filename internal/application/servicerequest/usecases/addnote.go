package usecases

import (
	"context"

	"github.com/esit-pro/service-desk/internal/application/servicerequest/dto"
	"github.com/esit-pro/service-desk/internal/domain/servicerequest"
	"github.com/esit-pro/service-desk/internal/shared/errors"
	"github.com/esit-pro/service-desk/internal/shared/logger"
)

type AddNoteCommand struct {
	RequestID string
	Note      string
}

type AddNoteUseCase struct {
	repo   servicerequest.Repository
	logger logger.Interface
}

func NewAddNoteUseCase(repo servicerequest.Repository, logger logger.Interface) *AddNoteUseCase {
	return &AddNoteUseCase{repo: repo, logger: logger}
}

func (uc *AddNoteUseCase) Execute(ctx context.Context, cmd AddNoteCommand) (*dto.ServiceRequestDTO, error) {
	if cmd.Note == "" {
		return nil, errors.NewValidationError("note is required")
	}

	sr, err := uc.repo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}
	if sr == nil {
		return nil, nil
	}

	sr.AddNote(cmd.Note)

	found, err := uc.repo.Update(ctx, sr)
	if err != nil {
		uc.logger.Error("failed to add note", "id", cmd.RequestID, "error", err)
		return nil, err
	}
	if !found {
		return nil, nil
	}

	return dto.ToServiceRequestDTO(sr), nil
}
