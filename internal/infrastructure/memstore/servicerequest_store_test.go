package memstore

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esit-pro/service-desk/internal/domain/servicerequest"
	vo "github.com/esit-pro/service-desk/internal/domain/servicerequest/valueobjects"
)

func seedRequests(t *testing.T, s *ServiceRequestStore, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		sr, err := servicerequest.New(
			fmt.Sprintf("Request %d", i+1),
			"Something needs fixing.",
			"Hardware",
			vo.Priority(i%5+1),
		)
		require.NoError(t, err)
		require.NoError(t, s.Save(context.Background(), sr))
	}
}

func TestServiceRequestStore_Save_AllocatesSequentialIDs(t *testing.T) {
	s := NewServiceRequestStore(noLatency)
	seedRequests(t, s, 2)

	sr, err := s.GetByID(context.Background(), "ticket-2")
	require.NoError(t, err)
	require.NotNil(t, sr)
	assert.Equal(t, "Request 2", sr.Title)
}

func TestServiceRequestStore_List_Pagination(t *testing.T) {
	s := NewServiceRequestStore(noLatency)
	seedRequests(t, s, 15)
	ctx := context.Background()

	page1, total, err := s.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(15), total)
	assert.Len(t, page1, 10)

	page2, total, err := s.List(ctx, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(15), total)
	assert.Len(t, page2, 5)
	assert.Equal(t, "ticket-11", page2[0].ID)

	empty, _, err := s.List(ctx, 3, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestServiceRequestStore_GetByID_MissingReturnsNilNil(t *testing.T) {
	s := NewServiceRequestStore(noLatency)
	seedRequests(t, s, 1)

	sr, err := s.GetByID(context.Background(), "ticket-99")
	require.NoError(t, err)
	assert.Nil(t, sr)
}

func TestServiceRequestStore_Update(t *testing.T) {
	s := NewServiceRequestStore(noLatency)
	seedRequests(t, s, 1)
	ctx := context.Background()

	sr, err := s.GetByID(ctx, "ticket-1")
	require.NoError(t, err)
	require.NoError(t, sr.UpdateStatus(vo.StatusInProgress))

	found, err := s.Update(ctx, sr)
	require.NoError(t, err)
	require.True(t, found)

	got, err := s.GetByID(ctx, "ticket-1")
	require.NoError(t, err)
	assert.Equal(t, vo.StatusInProgress, got.Status)
}

func TestServiceRequestStore_Update_MissingReturnsFalse(t *testing.T) {
	s := NewServiceRequestStore(noLatency)
	seedRequests(t, s, 1)

	sr, err := servicerequest.New("Ghost", "Not stored.", "Hardware", 3)
	require.NoError(t, err)
	sr.ID = "ticket-99"

	found, err := s.Update(context.Background(), sr)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestServiceRequestStore_ReplaceAll(t *testing.T) {
	s := NewServiceRequestStore(noLatency)
	seedRequests(t, s, 5)
	ctx := context.Background()

	sr, err := servicerequest.New("Seeded", "Replacement set.", "Network", 2)
	require.NoError(t, err)
	sr.ID = "ticket-1"

	require.NoError(t, s.ReplaceAll(ctx, []*servicerequest.ServiceRequest{sr}))

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestServiceRequestStore_ReturnsCopies(t *testing.T) {
	s := NewServiceRequestStore(noLatency)
	seedRequests(t, s, 1)
	ctx := context.Background()

	sr, err := s.GetByID(ctx, "ticket-1")
	require.NoError(t, err)
	sr.Title = "mutated by caller"

	again, err := s.GetByID(ctx, "ticket-1")
	require.NoError(t, err)
	assert.Equal(t, "Request 1", again.Title)
}
