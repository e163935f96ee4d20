package usecases

import (
	"context"

	"github.com/esit-pro/service-desk/internal/application/message/dto"
	"github.com/esit-pro/service-desk/internal/domain/message"
	"github.com/esit-pro/service-desk/internal/shared/logger"
)

// RelatedMessagesUseCase returns every message linked to a service
// request, unpaginated.
type RelatedMessagesUseCase struct {
	repo   message.Repository
	logger logger.Interface
}

func NewRelatedMessagesUseCase(repo message.Repository, logger logger.Interface) *RelatedMessagesUseCase {
	return &RelatedMessagesUseCase{repo: repo, logger: logger}
}

func (uc *RelatedMessagesUseCase) Execute(ctx context.Context, serviceRequestID string) ([]*dto.ClientMessageDTO, error) {
	msgs, err := uc.repo.ListByRelatedService(ctx, serviceRequestID)
	if err != nil {
		uc.logger.Error("failed to list related messages", "service_request_id", serviceRequestID, "error", err)
		return nil, err
	}
	return dto.ToClientMessageDTOs(msgs), nil
}
