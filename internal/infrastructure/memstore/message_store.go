package memstore

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/esit-pro/service-desk/internal/domain/message"
	"github.com/esit-pro/service-desk/internal/shared/config"
	"github.com/esit-pro/service-desk/internal/shared/constants"
	"github.com/esit-pro/service-desk/internal/shared/utils"
)

// MessageStore is the in-memory message.Repository. Messages keep
// insertion order; deletion is a status value, never a removal, so IDs
// derived from the collection length stay unique.
type MessageStore struct {
	mu      sync.RWMutex
	records []*message.ClientMessage
	lat     latency
}

var _ message.Repository = (*MessageStore)(nil)

func NewMessageStore(latencyCfg config.LatencyConfig) *MessageStore {
	return &MessageStore{
		records: []*message.ClientMessage{},
		lat:     latency{cfg: latencyCfg},
	}
}

func (s *MessageStore) List(ctx context.Context, filter message.Filter, page, pageSize int) ([]*message.ClientMessage, int64, error) {
	if err := s.lat.list(ctx); err != nil {
		return nil, 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*message.ClientMessage, 0, len(s.records))
	for _, m := range s.records {
		if filter.Matches(m) {
			matched = append(matched, m)
		}
	}

	total := len(matched)
	start, end := utils.ApplyPagination(total, page, pageSize)

	out := make([]*message.ClientMessage, 0, end-start)
	for _, m := range matched[start:end] {
		out = append(out, m.Clone())
	}
	return out, int64(total), nil
}

func (s *MessageStore) GetByID(ctx context.Context, id string) (*message.ClientMessage, error) {
	if err := s.lat.get(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if m := s.find(id); m != nil {
		return m.Clone(), nil
	}
	return nil, nil
}

func (s *MessageStore) Save(ctx context.Context, m *message.ClientMessage) error {
	if err := s.lat.mutate(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if m.ID == "" {
		m.ID = fmt.Sprintf("%s%d", constants.MessageIDPrefix, len(s.records)+1)
	}
	if err := m.Validate(); err != nil {
		return err
	}

	s.records = append(s.records, m.Clone())
	return nil
}

func (s *MessageStore) Update(ctx context.Context, id string, patch message.Patch) (bool, error) {
	if err := s.lat.mutate(ctx); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.find(id)
	if m == nil {
		return false, nil
	}
	if err := patch.Apply(m); err != nil {
		return false, err
	}
	return true, nil
}

func (s *MessageStore) BatchUpdate(ctx context.Context, ids []string, patch message.Patch) (int64, error) {
	if err := s.lat.batch(ctx); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var updated int64
	for _, id := range ids {
		m := s.find(id)
		if m == nil {
			continue
		}
		if err := patch.Apply(m); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}

func (s *MessageStore) Search(ctx context.Context, query string, page, pageSize int) ([]*message.ClientMessage, int64, error) {
	if err := s.lat.search(ctx); err != nil {
		return nil, 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	matched := make([]*message.ClientMessage, 0, len(s.records))
	for _, m := range s.records {
		if matchesQuery(m, q) {
			matched = append(matched, m)
		}
	}

	total := len(matched)
	start, end := utils.ApplyPagination(total, page, pageSize)

	out := make([]*message.ClientMessage, 0, end-start)
	for _, m := range matched[start:end] {
		out = append(out, m.Clone())
	}
	return out, int64(total), nil
}

// matchesQuery checks subject, content, client name, and client email.
// The query must already be lowercased.
func matchesQuery(m *message.ClientMessage, q string) bool {
	return strings.Contains(strings.ToLower(m.Subject), q) ||
		strings.Contains(strings.ToLower(m.Content), q) ||
		strings.Contains(strings.ToLower(m.ClientName), q) ||
		strings.Contains(strings.ToLower(m.ClientEmail), q)
}

func (s *MessageStore) CountUnread(ctx context.Context) (int64, error) {
	if err := s.lat.get(ctx); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, m := range s.records {
		if !m.IsRead {
			n++
		}
	}
	return n, nil
}

func (s *MessageStore) ListByRelatedService(ctx context.Context, serviceRequestID string) ([]*message.ClientMessage, error) {
	if err := s.lat.list(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*message.ClientMessage{}
	for _, m := range s.records {
		if m.RelatedServiceID == serviceRequestID {
			out = append(out, m.Clone())
		}
	}
	return out, nil
}

func (s *MessageStore) ReplaceAll(ctx context.Context, msgs []*message.ClientMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make([]*message.ClientMessage, 0, len(msgs))
	for _, m := range msgs {
		s.records = append(s.records, m.Clone())
	}
	return nil
}

func (s *MessageStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.records)), nil
}

// find returns the store-owned record, not a copy. Callers hold the lock.
func (s *MessageStore) find(id string) *message.ClientMessage {
	for _, m := range s.records {
		if m.ID == id {
			return m
		}
	}
	return nil
}
