package mockdata

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/esit-pro/service-desk/internal/domain/message"
	"github.com/esit-pro/service-desk/internal/domain/servicerequest"
	"github.com/esit-pro/service-desk/internal/shared/config"
	"github.com/esit-pro/service-desk/internal/shared/constants"
	"github.com/esit-pro/service-desk/internal/shared/logger"
)

// Seeder populates the repositories with a startup dataset: either the
// fixed demo set or generated records, per the seed configuration.
type Seeder struct {
	requests servicerequest.Repository
	messages message.Repository
	threads  message.ThreadRepository
	logger   logger.Interface
}

func NewSeeder(requests servicerequest.Repository, messages message.Repository, threads message.ThreadRepository, logger logger.Interface) *Seeder {
	return &Seeder{requests: requests, messages: messages, threads: threads, logger: logger}
}

// Seed replaces the contents of all three collections. Messages and
// threads always come from the fixed set; service requests are generated
// when the configured dataset is "generated".
func (s *Seeder) Seed(ctx context.Context, cfg config.SeedConfig) error {
	now := time.Now()

	requests, err := s.buildRequests(cfg, now)
	if err != nil {
		return err
	}

	if err := s.requests.ReplaceAll(ctx, requests); err != nil {
		return fmt.Errorf("failed to seed service requests: %w", err)
	}
	if err := s.messages.ReplaceAll(ctx, FixedClientMessages(now)); err != nil {
		return fmt.Errorf("failed to seed client messages: %w", err)
	}
	if err := s.threads.ReplaceAll(ctx, FixedThreads(now)); err != nil {
		return fmt.Errorf("failed to seed threads: %w", err)
	}

	s.logger.Info("dataset seeded", "dataset", cfg.Dataset, "requests", len(requests))
	return nil
}

func (s *Seeder) buildRequests(cfg config.SeedConfig, now time.Time) ([]*servicerequest.ServiceRequest, error) {
	if cfg.Dataset != "generated" {
		return FixedServiceRequests(now), nil
	}

	var rng *rand.Rand
	if cfg.RandomSeed != 0 {
		rng = rand.New(rand.NewSource(cfg.RandomSeed))
	}

	count := cfg.Count
	if count <= 0 {
		count = len(FixedServiceRequests(now))
	}

	generated, err := NewGenerator(rng).ServiceRequests(count)
	if err != nil {
		return nil, fmt.Errorf("failed to generate service requests: %w", err)
	}
	for i, sr := range generated {
		sr.ID = fmt.Sprintf("%s%d", constants.ServiceRequestIDPrefix, i+1)
	}
	return generated, nil
}
