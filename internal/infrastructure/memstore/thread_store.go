package memstore

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/esit-pro/service-desk/internal/domain/message"
	"github.com/esit-pro/service-desk/internal/shared/config"
	"github.com/esit-pro/service-desk/internal/shared/constants"
	"github.com/esit-pro/service-desk/internal/shared/utils"
)

// ThreadStore is the in-memory message.ThreadRepository. Thread and
// message IDs derive from running counts: "thread-{n}" for the thread,
// "{threadID}-msg-{n}" for its entries.
type ThreadStore struct {
	mu      sync.RWMutex
	records []*message.MessageThread
	lat     latency
}

var _ message.ThreadRepository = (*ThreadStore)(nil)

func NewThreadStore(latencyCfg config.LatencyConfig) *ThreadStore {
	return &ThreadStore{
		records: []*message.MessageThread{},
		lat:     latency{cfg: latencyCfg},
	}
}

func (s *ThreadStore) List(ctx context.Context, page, pageSize int) ([]*message.MessageThread, int64, error) {
	if err := s.lat.list(ctx); err != nil {
		return nil, 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.records)
	start, end := utils.ApplyPagination(total, page, pageSize)

	out := make([]*message.MessageThread, 0, end-start)
	for _, t := range s.records[start:end] {
		out = append(out, t.Clone())
	}
	return out, int64(total), nil
}

func (s *ThreadStore) GetByID(ctx context.Context, id string) (*message.MessageThread, error) {
	if err := s.lat.get(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if t := s.find(id); t != nil {
		return t.Clone(), nil
	}
	return nil, nil
}

func (s *ThreadStore) Create(ctx context.Context, t *message.MessageThread) error {
	if err := s.lat.mutate(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		t.ID = fmt.Sprintf("%s%d", constants.ThreadIDPrefix, len(s.records)+1)
	}
	for i := range t.Messages {
		if t.Messages[i].ID == "" {
			t.Messages[i].ID = fmt.Sprintf("%s-msg-%d", t.ID, i+1)
		}
		if t.Messages[i].Timestamp.IsZero() {
			t.Messages[i].Timestamp = time.Now()
		}
	}
	if err := t.Validate(); err != nil {
		return err
	}

	s.records = append(s.records, t.Clone())
	return nil
}

func (s *ThreadStore) AppendMessage(ctx context.Context, threadID string, tm message.ThreadMessage) (*message.ThreadMessage, bool, error) {
	if err := s.lat.mutate(ctx); err != nil {
		return nil, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.find(threadID)
	if t == nil {
		return nil, false, nil
	}

	tm.ID = t.NextMessageID()
	if tm.Timestamp.IsZero() {
		tm.Timestamp = time.Now()
	}
	if err := tm.Validate(); err != nil {
		return nil, true, err
	}

	stored := tm
	stored.Attachments = slices.Clone(tm.Attachments)
	t.Append(stored)

	out := tm
	out.Attachments = slices.Clone(tm.Attachments)
	return &out, true, nil
}

func (s *ThreadStore) Update(ctx context.Context, id string, patch message.ThreadPatch) (bool, error) {
	if err := s.lat.mutate(ctx); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.find(id)
	if t == nil {
		return false, nil
	}
	patch.Apply(t)
	return true, nil
}

func (s *ThreadStore) MarkMessageRead(ctx context.Context, threadID, messageID string) (bool, error) {
	if err := s.lat.mutate(ctx); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.find(threadID)
	if t == nil {
		return false, nil
	}
	return t.MarkMessageRead(messageID), nil
}

func (s *ThreadStore) ReplaceAll(ctx context.Context, threads []*message.MessageThread) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make([]*message.MessageThread, 0, len(threads))
	for _, t := range threads {
		s.records = append(s.records, t.Clone())
	}
	return nil
}

func (s *ThreadStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.records)), nil
}

// find returns the store-owned record, not a copy. Callers hold the lock.
func (s *ThreadStore) find(id string) *message.MessageThread {
	for _, t := range s.records {
		if t.ID == id {
			return t
		}
	}
	return nil
}
