package usecases

import (
	"context"

	"github.com/esit-pro/service-desk/internal/domain/message"
	vo "github.com/esit-pro/service-desk/internal/domain/message/valueobjects"
	"github.com/esit-pro/service-desk/internal/shared/errors"
	"github.com/esit-pro/service-desk/internal/shared/logger"
)

// UpdateMessageUseCase carries the single-record patch mutations: mark
// read, flag/unflag, status change, assignment, and linking. Each returns
// false when the message does not exist.
type UpdateMessageUseCase struct {
	repo   message.Repository
	logger logger.Interface
}

func NewUpdateMessageUseCase(repo message.Repository, logger logger.Interface) *UpdateMessageUseCase {
	return &UpdateMessageUseCase{repo: repo, logger: logger}
}

// MarkRead is idempotent; marking an already-read message succeeds.
func (uc *UpdateMessageUseCase) MarkRead(ctx context.Context, id string) (bool, error) {
	read := true
	return uc.apply(ctx, id, message.Patch{IsRead: &read})
}

func (uc *UpdateMessageUseCase) SetFlag(ctx context.Context, id string, flagged bool) (bool, error) {
	return uc.apply(ctx, id, message.Patch{IsFlagged: &flagged})
}

// ChangeStatus covers archive and soft delete as well; both are plain
// status values, never a physical removal.
func (uc *UpdateMessageUseCase) ChangeStatus(ctx context.Context, id, status string) (bool, error) {
	st, err := vo.NewMessageStatus(status)
	if err != nil {
		return false, errors.NewValidationError(err.Error())
	}
	return uc.apply(ctx, id, message.Patch{Status: &st})
}

func (uc *UpdateMessageUseCase) Assign(ctx context.Context, id, assignedTo string) (bool, error) {
	return uc.apply(ctx, id, message.Patch{AssignedTo: &assignedTo})
}

func (uc *UpdateMessageUseCase) SetRelatedService(ctx context.Context, id, serviceRequestID string) (bool, error) {
	return uc.apply(ctx, id, message.Patch{RelatedServiceID: &serviceRequestID})
}

func (uc *UpdateMessageUseCase) apply(ctx context.Context, id string, patch message.Patch) (bool, error) {
	found, err := uc.repo.Update(ctx, id, patch)
	if err != nil {
		uc.logger.Error("failed to update message", "id", id, "error", err)
		return false, err
	}
	return found, nil
}
