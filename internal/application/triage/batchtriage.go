package triage

import (
	"context"

	"github.com/esit-pro/service-desk/internal/domain/message"
	vo "github.com/esit-pro/service-desk/internal/domain/message/valueobjects"
	"github.com/esit-pro/service-desk/internal/shared/errors"
	"github.com/esit-pro/service-desk/internal/shared/logger"
)

// BatchTriageUseCase applies the common triage outcomes to many messages
// at once. Archive and delete are both status writes; nothing is removed.
type BatchTriageUseCase struct {
	messages message.Repository
	logger   logger.Interface
}

func NewBatchTriageUseCase(messages message.Repository, logger logger.Interface) *BatchTriageUseCase {
	return &BatchTriageUseCase{messages: messages, logger: logger}
}

func (uc *BatchTriageUseCase) Archive(ctx context.Context, ids []string) (int64, error) {
	return uc.setStatus(ctx, ids, vo.MessageStatusArchived)
}

func (uc *BatchTriageUseCase) Delete(ctx context.Context, ids []string) (int64, error) {
	return uc.setStatus(ctx, ids, vo.MessageStatusDeleted)
}

func (uc *BatchTriageUseCase) setStatus(ctx context.Context, ids []string, status vo.MessageStatus) (int64, error) {
	if len(ids) == 0 {
		return 0, errors.NewValidationError("message ids are required")
	}

	updated, err := uc.messages.BatchUpdate(ctx, ids, message.Patch{Status: &status})
	if err != nil {
		uc.logger.Error("batch triage failed", "status", status, "ids", len(ids), "error", err)
		return 0, err
	}

	uc.logger.Info("batch triage applied", "status", status, "requested", len(ids), "updated", updated)
	return updated, nil
}
