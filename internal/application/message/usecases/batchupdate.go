package usecases

import (
	"context"

	"github.com/esit-pro/service-desk/internal/domain/message"
	vo "github.com/esit-pro/service-desk/internal/domain/message/valueobjects"
	"github.com/esit-pro/service-desk/internal/shared/errors"
	"github.com/esit-pro/service-desk/internal/shared/logger"
)

type BatchUpdateCommand struct {
	MessageIDs []string
	Status     *string
	IsRead     *bool
	IsFlagged  *bool
	AssignedTo *string
}

type BatchUpdateResult struct {
	Success      bool  `json:"success"`
	UpdatedCount int64 `json:"updated_count"`
}

type BatchUpdateUseCase struct {
	repo   message.Repository
	logger logger.Interface
}

func NewBatchUpdateUseCase(repo message.Repository, logger logger.Interface) *BatchUpdateUseCase {
	return &BatchUpdateUseCase{repo: repo, logger: logger}
}

// Execute applies the same patch to every listed message. Unknown IDs are
// skipped and do not fail the batch; success means at least one record
// changed.
func (uc *BatchUpdateUseCase) Execute(ctx context.Context, cmd BatchUpdateCommand) (*BatchUpdateResult, error) {
	if len(cmd.MessageIDs) == 0 {
		return nil, errors.NewValidationError("message ids are required")
	}

	patch := message.Patch{
		IsRead:     cmd.IsRead,
		IsFlagged:  cmd.IsFlagged,
		AssignedTo: cmd.AssignedTo,
	}
	if cmd.Status != nil {
		st, err := vo.NewMessageStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		patch.Status = &st
	}
	if patch.IsEmpty() {
		return nil, errors.NewValidationError("no fields to update")
	}

	updated, err := uc.repo.BatchUpdate(ctx, cmd.MessageIDs, patch)
	if err != nil {
		uc.logger.Error("batch update failed", "ids", len(cmd.MessageIDs), "error", err)
		return nil, err
	}

	uc.logger.Info("batch update applied", "requested", len(cmd.MessageIDs), "updated", updated)
	return &BatchUpdateResult{Success: updated > 0, UpdatedCount: updated}, nil
}
