package memstore

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esit-pro/service-desk/internal/domain/message"
	vo "github.com/esit-pro/service-desk/internal/domain/message/valueobjects"
	"github.com/esit-pro/service-desk/internal/shared/config"
)

// noLatency keeps store tests fast; the delay path is covered separately.
var noLatency = config.LatencyConfig{}

func seedMessages(t *testing.T, s *MessageStore, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		m, err := message.NewClientMessage(
			fmt.Sprintf("client-%d", i%3+1),
			"Sarah Johnson",
			"sarah@techcorp.example",
			fmt.Sprintf("Subject %d", i+1),
			fmt.Sprintf("Content body %d", i+1),
			vo.CategorySupport,
		)
		require.NoError(t, err)
		require.NoError(t, s.Save(context.Background(), m))
	}
}

func TestMessageStore_Save_AllocatesSequentialIDs(t *testing.T) {
	s := NewMessageStore(noLatency)
	seedMessages(t, s, 3)

	m, err := s.GetByID(context.Background(), "msg-3")
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "Subject 3", m.Subject)
}

func TestMessageStore_GetByID_MissingReturnsNilNil(t *testing.T) {
	s := NewMessageStore(noLatency)
	seedMessages(t, s, 1)

	m, err := s.GetByID(context.Background(), "msg-99")
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestMessageStore_List_Pagination(t *testing.T) {
	s := NewMessageStore(noLatency)
	seedMessages(t, s, 25)
	ctx := context.Background()

	page1, total, err := s.List(ctx, message.Filter{}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	require.Len(t, page1, 10)
	assert.Equal(t, "msg-1", page1[0].ID)

	page3, total, err := s.List(ctx, message.Filter{}, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Len(t, page3, 5)

	empty, total, err := s.List(ctx, message.Filter{}, 4, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Empty(t, empty, "out-of-range page yields an empty slice, not an error")
}

func TestMessageStore_List_FilterCountsFilteredTotal(t *testing.T) {
	s := NewMessageStore(noLatency)
	seedMessages(t, s, 10)
	ctx := context.Background()

	read := true
	_, err := s.BatchUpdate(ctx, []string{"msg-1", "msg-2", "msg-3"}, message.Patch{IsRead: &read})
	require.NoError(t, err)

	items, total, err := s.List(ctx, message.Filter{IsRead: &read}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total, "total reflects the filtered set")
	assert.Len(t, items, 3)
}

func TestMessageStore_Update_MissingReturnsFalse(t *testing.T) {
	s := NewMessageStore(noLatency)
	seedMessages(t, s, 1)

	read := true
	found, err := s.Update(context.Background(), "msg-99", message.Patch{IsRead: &read})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMessageStore_ReadsAreIdempotent(t *testing.T) {
	s := NewMessageStore(noLatency)
	seedMessages(t, s, 1)
	ctx := context.Background()

	read := true
	for i := 0; i < 3; i++ {
		found, err := s.Update(ctx, "msg-1", message.Patch{IsRead: &read})
		require.NoError(t, err)
		assert.True(t, found)
	}

	m, err := s.GetByID(ctx, "msg-1")
	require.NoError(t, err)
	assert.True(t, m.IsRead)
}

func TestMessageStore_CountUnread_TracksMarkRead(t *testing.T) {
	s := NewMessageStore(noLatency)
	seedMessages(t, s, 5)
	ctx := context.Background()

	before, err := s.CountUnread(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), before)

	read := true
	_, err = s.Update(ctx, "msg-2", message.Patch{IsRead: &read})
	require.NoError(t, err)

	after, err := s.CountUnread(ctx)
	require.NoError(t, err)
	assert.Equal(t, before-1, after, "marking one unread message read drops the count by exactly one")
}

func TestMessageStore_SoftDeleteKeepsRecordVisible(t *testing.T) {
	s := NewMessageStore(noLatency)
	seedMessages(t, s, 2)
	ctx := context.Background()

	deleted := vo.MessageStatusDeleted
	found, err := s.Update(ctx, "msg-1", message.Patch{Status: &deleted})
	require.NoError(t, err)
	require.True(t, found)

	m, err := s.GetByID(ctx, "msg-1")
	require.NoError(t, err)
	require.NotNil(t, m, "soft-deleted records stay retrievable")
	assert.Equal(t, vo.MessageStatusDeleted, m.Status)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestMessageStore_Search(t *testing.T) {
	s := NewMessageStore(noLatency)
	ctx := context.Background()

	m1, err := message.NewClientMessage("client-1", "Sarah Johnson", "sarah@techcorp.example", "Printer offline", "The office PRINTER stopped responding.", vo.CategorySupport)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, m1))

	m2, err := message.NewClientMessage("client-2", "Michael Chen", "michael@innovate.example", "Invoice question", "Please clarify line three.", vo.CategoryBilling)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, m2))

	t.Run("case insensitive across fields", func(t *testing.T) {
		items, total, err := s.Search(ctx, "printer", 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, items, 1)
		assert.Equal(t, m1.ID, items[0].ID)

		items, _, err = s.Search(ctx, "MICHAEL", 1, 10)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, m2.ID, items[0].ID)
	})

	t.Run("matches client email", func(t *testing.T) {
		items, _, err := s.Search(ctx, "innovate.example", 1, 10)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, m2.ID, items[0].ID)
	})

	t.Run("blank query matches everything", func(t *testing.T) {
		_, total, err := s.Search(ctx, "", 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("no hits", func(t *testing.T) {
		items, total, err := s.Search(ctx, "zzzz", 1, 10)
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, items)
	})
}

func TestMessageStore_BatchUpdate_SkipsUnknownIDs(t *testing.T) {
	s := NewMessageStore(noLatency)
	seedMessages(t, s, 3)
	ctx := context.Background()

	archived := vo.MessageStatusArchived
	updated, err := s.BatchUpdate(ctx, []string{"msg-1", "msg-99", "msg-3"}, message.Patch{Status: &archived})
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)

	m, err := s.GetByID(ctx, "msg-2")
	require.NoError(t, err)
	assert.Equal(t, vo.MessageStatusNew, m.Status, "unlisted records are untouched")
}

func TestMessageStore_ListByRelatedService(t *testing.T) {
	s := NewMessageStore(noLatency)
	seedMessages(t, s, 4)
	ctx := context.Background()

	serviceID := "ticket-7"
	for _, id := range []string{"msg-1", "msg-4"} {
		found, err := s.Update(ctx, id, message.Patch{RelatedServiceID: &serviceID})
		require.NoError(t, err)
		require.True(t, found)
	}

	linked, err := s.ListByRelatedService(ctx, serviceID)
	require.NoError(t, err)
	require.Len(t, linked, 2)
	assert.Equal(t, "msg-1", linked[0].ID)
	assert.Equal(t, "msg-4", linked[1].ID)
}

func TestMessageStore_ReturnsCopies(t *testing.T) {
	s := NewMessageStore(noLatency)
	seedMessages(t, s, 1)
	ctx := context.Background()

	m, err := s.GetByID(ctx, "msg-1")
	require.NoError(t, err)
	m.Subject = "mutated by caller"

	again, err := s.GetByID(ctx, "msg-1")
	require.NoError(t, err)
	assert.Equal(t, "Subject 1", again.Subject)
}

func TestMessageStore_LatencyHonorsCancellation(t *testing.T) {
	s := NewMessageStore(config.LatencyConfig{GetMillis: 5000})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.GetByID(ctx, "msg-1")
	assert.ErrorIs(t, err, context.Canceled)
}
