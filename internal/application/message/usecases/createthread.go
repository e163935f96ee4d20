package usecases

import (
	"context"
	"time"

	"github.com/esit-pro/service-desk/internal/application/message/dto"
	"github.com/esit-pro/service-desk/internal/domain/message"
	vo "github.com/esit-pro/service-desk/internal/domain/message/valueobjects"
	"github.com/esit-pro/service-desk/internal/shared/errors"
	"github.com/esit-pro/service-desk/internal/shared/logger"
)

type CreateThreadCommand struct {
	Sender           string
	SenderName       string
	Content          string
	Attachments      []string
	ServiceRequestID string
}

// CreateThreadUseCase opens a conversation from its first message. A
// thread is never empty.
type CreateThreadUseCase struct {
	threads message.ThreadRepository
	logger  logger.Interface
}

func NewCreateThreadUseCase(threads message.ThreadRepository, logger logger.Interface) *CreateThreadUseCase {
	return &CreateThreadUseCase{threads: threads, logger: logger}
}

func (uc *CreateThreadUseCase) Execute(ctx context.Context, cmd CreateThreadCommand) (*dto.ThreadDTO, error) {
	sender, err := vo.NewSender(cmd.Sender)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	initial := message.ThreadMessage{
		Sender:      sender,
		SenderName:  cmd.SenderName,
		Content:     cmd.Content,
		Timestamp:   time.Now(),
		Attachments: cmd.Attachments,
	}
	thread, err := message.NewThread(initial, cmd.ServiceRequestID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.threads.Create(ctx, thread); err != nil {
		uc.logger.Error("failed to create thread", "error", err)
		return nil, err
	}

	uc.logger.Info("thread created", "id", thread.ID, "service_request_id", thread.ServiceRequestID)
	return dto.ToThreadDTO(thread), nil
}
