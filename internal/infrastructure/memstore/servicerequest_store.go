package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/esit-pro/service-desk/internal/domain/servicerequest"
	"github.com/esit-pro/service-desk/internal/shared/config"
	"github.com/esit-pro/service-desk/internal/shared/constants"
	"github.com/esit-pro/service-desk/internal/shared/utils"
)

// ServiceRequestStore is the in-memory servicerequest.Repository. Records
// keep insertion order; all reads return deep copies so callers cannot
// mutate store-owned state.
type ServiceRequestStore struct {
	mu      sync.RWMutex
	records []*servicerequest.ServiceRequest
	lat     latency
}

var _ servicerequest.Repository = (*ServiceRequestStore)(nil)

func NewServiceRequestStore(latencyCfg config.LatencyConfig) *ServiceRequestStore {
	return &ServiceRequestStore{
		records: []*servicerequest.ServiceRequest{},
		lat:     latency{cfg: latencyCfg},
	}
}

func (s *ServiceRequestStore) List(ctx context.Context, page, pageSize int) ([]*servicerequest.ServiceRequest, int64, error) {
	if err := s.lat.list(ctx); err != nil {
		return nil, 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.records)
	start, end := utils.ApplyPagination(total, page, pageSize)

	out := make([]*servicerequest.ServiceRequest, 0, end-start)
	for _, sr := range s.records[start:end] {
		out = append(out, sr.Clone())
	}
	return out, int64(total), nil
}

func (s *ServiceRequestStore) GetByID(ctx context.Context, id string) (*servicerequest.ServiceRequest, error) {
	if err := s.lat.get(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sr := range s.records {
		if sr.ID == id {
			return sr.Clone(), nil
		}
	}
	return nil, nil
}

func (s *ServiceRequestStore) Save(ctx context.Context, sr *servicerequest.ServiceRequest) error {
	if err := s.lat.mutate(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if sr.ID == "" {
		sr.ID = fmt.Sprintf("%s%d", constants.ServiceRequestIDPrefix, len(s.records)+1)
	}
	if err := sr.Validate(); err != nil {
		return err
	}

	s.records = append(s.records, sr.Clone())
	return nil
}

func (s *ServiceRequestStore) Update(ctx context.Context, sr *servicerequest.ServiceRequest) (bool, error) {
	if err := s.lat.mutate(ctx); err != nil {
		return false, err
	}
	if err := sr.Validate(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.records {
		if existing.ID == sr.ID {
			s.records[i] = sr.Clone()
			return true, nil
		}
	}
	return false, nil
}

func (s *ServiceRequestStore) ReplaceAll(ctx context.Context, requests []*servicerequest.ServiceRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make([]*servicerequest.ServiceRequest, 0, len(requests))
	for _, sr := range requests {
		s.records = append(s.records, sr.Clone())
	}
	return nil
}

func (s *ServiceRequestStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.records)), nil
}
