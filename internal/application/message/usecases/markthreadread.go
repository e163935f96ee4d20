package usecases

import (
	"context"

	"github.com/esit-pro/service-desk/internal/domain/message"
	"github.com/esit-pro/service-desk/internal/shared/logger"
)

type MarkThreadMessageReadUseCase struct {
	threads message.ThreadRepository
	logger  logger.Interface
}

func NewMarkThreadMessageReadUseCase(threads message.ThreadRepository, logger logger.Interface) *MarkThreadMessageReadUseCase {
	return &MarkThreadMessageReadUseCase{threads: threads, logger: logger}
}

// Execute marks one message inside a thread as read. Returns false when
// either the thread or the message within it is unknown.
func (uc *MarkThreadMessageReadUseCase) Execute(ctx context.Context, threadID, messageID string) (bool, error) {
	found, err := uc.threads.MarkMessageRead(ctx, threadID, messageID)
	if err != nil {
		uc.logger.Error("failed to mark thread message read", "thread_id", threadID, "message_id", messageID, "error", err)
		return false, err
	}
	return found, nil
}
