package usecases

import (
	"context"

	"github.com/esit-pro/service-desk/internal/domain/message"
	"github.com/esit-pro/service-desk/internal/shared/logger"
)

// UpdateThreadUseCase handles archiving and service-request linking for
// threads.
type UpdateThreadUseCase struct {
	threads message.ThreadRepository
	logger  logger.Interface
}

func NewUpdateThreadUseCase(threads message.ThreadRepository, logger logger.Interface) *UpdateThreadUseCase {
	return &UpdateThreadUseCase{threads: threads, logger: logger}
}

func (uc *UpdateThreadUseCase) SetArchived(ctx context.Context, id string, archived bool) (bool, error) {
	return uc.apply(ctx, id, message.ThreadPatch{IsArchived: &archived})
}

func (uc *UpdateThreadUseCase) SetRelatedService(ctx context.Context, id, serviceRequestID string) (bool, error) {
	return uc.apply(ctx, id, message.ThreadPatch{ServiceRequestID: &serviceRequestID})
}

func (uc *UpdateThreadUseCase) apply(ctx context.Context, id string, patch message.ThreadPatch) (bool, error) {
	found, err := uc.threads.Update(ctx, id, patch)
	if err != nil {
		uc.logger.Error("failed to update thread", "id", id, "error", err)
		return false, err
	}
	return found, nil
}
