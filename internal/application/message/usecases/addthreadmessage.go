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

type AddThreadMessageCommand struct {
	ThreadID    string
	Sender      string
	SenderName  string
	Content     string
	Attachments []string
}

type AddThreadMessageUseCase struct {
	threads message.ThreadRepository
	logger  logger.Interface
}

func NewAddThreadMessageUseCase(threads message.ThreadRepository, logger logger.Interface) *AddThreadMessageUseCase {
	return &AddThreadMessageUseCase{threads: threads, logger: logger}
}

// Execute appends a reply to an existing thread. Returns nil without
// error when the thread is unknown.
func (uc *AddThreadMessageUseCase) Execute(ctx context.Context, cmd AddThreadMessageCommand) (*dto.ThreadMessageDTO, error) {
	sender, err := vo.NewSender(cmd.Sender)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	tm := message.ThreadMessage{
		Sender:      sender,
		SenderName:  cmd.SenderName,
		Content:     cmd.Content,
		Timestamp:   time.Now(),
		Attachments: cmd.Attachments,
		IsRead:      sender == vo.SenderProvider,
	}

	stored, found, err := uc.threads.AppendMessage(ctx, cmd.ThreadID, tm)
	if err != nil {
		uc.logger.Error("failed to append thread message", "thread_id", cmd.ThreadID, "error", err)
		return nil, err
	}
	if !found {
		return nil, nil
	}

	out := dto.ToThreadMessageDTO(stored)
	return &out, nil
}
