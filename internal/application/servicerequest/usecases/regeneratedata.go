package usecases

import (
	"context"
	"fmt"

	"github.com/esit-pro/service-desk/internal/domain/servicerequest"
	"github.com/esit-pro/service-desk/internal/shared/constants"
	"github.com/esit-pro/service-desk/internal/shared/errors"
	"github.com/esit-pro/service-desk/internal/shared/logger"
)

// RequestGenerator produces synthetic service requests for demo resets.
type RequestGenerator interface {
	ServiceRequests(count int) ([]*servicerequest.ServiceRequest, error)
}

type RegenerateDataCommand struct {
	Count int
}

type RegenerateDataResult struct {
	Count int `json:"count"`
}

// RegenerateDataUseCase replaces the whole collection with freshly
// generated records. Demo/reset flows only.
type RegenerateDataUseCase struct {
	repo      servicerequest.Repository
	generator RequestGenerator
	logger    logger.Interface
}

func NewRegenerateDataUseCase(repo servicerequest.Repository, generator RequestGenerator, logger logger.Interface) *RegenerateDataUseCase {
	return &RegenerateDataUseCase{repo: repo, generator: generator, logger: logger}
}

func (uc *RegenerateDataUseCase) Execute(ctx context.Context, cmd RegenerateDataCommand) (*RegenerateDataResult, error) {
	if cmd.Count < 1 {
		return nil, errors.NewValidationError("count must be at least 1")
	}

	requests, err := uc.generator.ServiceRequests(cmd.Count)
	if err != nil {
		uc.logger.Error("generation failed", "count", cmd.Count, "error", err)
		return nil, errors.NewInternalError("data generation failed", err.Error())
	}

	// IDs follow the collection position after the priority sort.
	for i, sr := range requests {
		sr.ID = fmt.Sprintf("%s%d", constants.ServiceRequestIDPrefix, i+1)
	}

	if err := uc.repo.ReplaceAll(ctx, requests); err != nil {
		uc.logger.Error("failed to replace service requests", "error", err)
		return nil, err
	}

	uc.logger.Info("service request collection regenerated", "count", len(requests))
	return &RegenerateDataResult{Count: len(requests)}, nil
}
