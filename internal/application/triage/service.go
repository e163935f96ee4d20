package triage

import (
	"context"

	msgdto "github.com/esit-pro/service-desk/internal/application/message/dto"
	"github.com/esit-pro/service-desk/internal/domain/message"
	"github.com/esit-pro/service-desk/internal/domain/servicerequest"
	"github.com/esit-pro/service-desk/internal/shared/logger"
)

type Service struct {
	convert *ConvertMessageUseCase
	link    *LinkMessageUseCase
	batch   *BatchTriageUseCase
}

func NewService(messages message.Repository, requests servicerequest.Repository, logger logger.Interface) *Service {
	return &Service{
		convert: NewConvertMessageUseCase(messages, requests, logger),
		link:    NewLinkMessageUseCase(messages, requests, logger),
		batch:   NewBatchTriageUseCase(messages, logger),
	}
}

func (s *Service) Convert(ctx context.Context, cmd ConvertMessageCommand) (*ConvertMessageResult, error) {
	return s.convert.Execute(ctx, cmd)
}

func (s *Service) Link(ctx context.Context, cmd LinkMessageCommand) (*msgdto.ClientMessageDTO, error) {
	return s.link.Execute(ctx, cmd)
}

func (s *Service) Archive(ctx context.Context, ids []string) (int64, error) {
	return s.batch.Archive(ctx, ids)
}

func (s *Service) Delete(ctx context.Context, ids []string) (int64, error) {
	return s.batch.Delete(ctx, ids)
}
