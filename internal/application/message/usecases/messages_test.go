package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esit-pro/service-desk/internal/domain/message"
	vo "github.com/esit-pro/service-desk/internal/domain/message/valueobjects"
	"github.com/esit-pro/service-desk/internal/shared/errors"
)

func storedMessage(t *testing.T, id string) *message.ClientMessage {
	t.Helper()
	m, err := message.NewClientMessage("client-1", "Sarah Johnson", "sjohnson@acmecorp.com",
		"Printer offline", "The office printer stopped responding this morning.", vo.CategorySupport)
	require.NoError(t, err)
	m.ID = id
	return m
}

func TestListMessages_NormalizesPagination(t *testing.T) {
	repo := &mockMessageRepo{
		listFn: func(ctx context.Context, filter message.Filter, page, pageSize int) ([]*message.ClientMessage, int64, error) {
			assert.Equal(t, 1, page, "page below 1 falls back to the default")
			assert.Equal(t, 10, pageSize)
			return []*message.ClientMessage{storedMessage(t, "msg-1")}, 20, nil
		},
	}

	uc := NewListMessagesUseCase(repo, testLogger())
	result, err := uc.Execute(context.Background(), ListMessagesQuery{Page: 0, PageSize: 0})

	require.NoError(t, err)
	assert.Equal(t, int64(20), result.Total)
	assert.True(t, result.HasMore)
	require.Len(t, result.Items, 1)
}

func TestListMessages_PassesFilterThrough(t *testing.T) {
	unread := false
	repo := &mockMessageRepo{
		listFn: func(ctx context.Context, filter message.Filter, page, pageSize int) ([]*message.ClientMessage, int64, error) {
			require.NotNil(t, filter.IsRead)
			assert.False(t, *filter.IsRead)
			return nil, 0, nil
		},
	}

	uc := NewListMessagesUseCase(repo, testLogger())
	_, err := uc.Execute(context.Background(), ListMessagesQuery{
		Page: 1, PageSize: 10,
		Filter: message.Filter{IsRead: &unread},
	})

	require.NoError(t, err)
}

func TestGetMessage_MissIsNotAnError(t *testing.T) {
	repo := &mockMessageRepo{
		getByIDFn: func(ctx context.Context, id string) (*message.ClientMessage, error) {
			return nil, nil
		},
	}

	uc := NewGetMessageUseCase(repo, testLogger())
	result, err := uc.Execute(context.Background(), "msg-99")

	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestCreateMessage(t *testing.T) {
	var saved *message.ClientMessage
	repo := &mockMessageRepo{
		saveFn: func(ctx context.Context, m *message.ClientMessage) error {
			m.ID = "msg-21"
			saved = m
			return nil
		},
	}

	uc := NewCreateMessageUseCase(repo, testLogger())
	result, err := uc.Execute(context.Background(), CreateMessageCommand{
		ClientID:    "client-7",
		ClientName:  "Emily Rodriguez",
		ClientEmail: "erodriguez@acmecorp.com",
		Subject:     "VPN keeps dropping",
		Content:     "My VPN connection drops every ten minutes while working remotely.",
		Category:    "support",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "msg-21", result.ID)
	assert.Equal(t, "new", result.Status)
	assert.False(t, result.IsRead)
}

func TestCreateMessage_InvalidCategory(t *testing.T) {
	uc := NewCreateMessageUseCase(&mockMessageRepo{}, testLogger())

	_, err := uc.Execute(context.Background(), CreateMessageCommand{
		ClientID:    "client-7",
		ClientName:  "Emily Rodriguez",
		ClientEmail: "erodriguez@acmecorp.com",
		Subject:     "Subject",
		Content:     "Content",
		Category:    "Gardening",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateMessage_MarkReadReportsMiss(t *testing.T) {
	repo := &mockMessageRepo{
		updateFn: func(ctx context.Context, id string, patch message.Patch) (bool, error) {
			require.NotNil(t, patch.IsRead)
			assert.True(t, *patch.IsRead)
			return false, nil
		},
	}

	uc := NewUpdateMessageUseCase(repo, testLogger())
	found, err := uc.MarkRead(context.Background(), "msg-99")

	require.NoError(t, err)
	assert.False(t, found)
}

func TestUpdateMessage_ChangeStatusRejectsUnknown(t *testing.T) {
	uc := NewUpdateMessageUseCase(&mockMessageRepo{}, testLogger())

	_, err := uc.ChangeStatus(context.Background(), "msg-1", "purged")

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateMessage_SoftDeleteIsAStatusChange(t *testing.T) {
	var applied message.Patch
	repo := &mockMessageRepo{
		updateFn: func(ctx context.Context, id string, patch message.Patch) (bool, error) {
			applied = patch
			return true, nil
		},
	}

	uc := NewUpdateMessageUseCase(repo, testLogger())
	found, err := uc.ChangeStatus(context.Background(), "msg-1", "deleted")

	require.NoError(t, err)
	assert.True(t, found)
	require.NotNil(t, applied.Status)
	assert.Equal(t, vo.MessageStatusDeleted, *applied.Status)
}

func TestBatchUpdate_SkipsUnknownIDs(t *testing.T) {
	repo := &mockMessageRepo{
		batchUpdateFn: func(ctx context.Context, ids []string, patch message.Patch) (int64, error) {
			assert.Len(t, ids, 3)
			return 2, nil
		},
	}

	read := true
	uc := NewBatchUpdateUseCase(repo, testLogger())
	result, err := uc.Execute(context.Background(), BatchUpdateCommand{
		MessageIDs: []string{"msg-1", "msg-2", "msg-99"},
		IsRead:     &read,
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, int64(2), result.UpdatedCount)
}

func TestBatchUpdate_RequiresIDs(t *testing.T) {
	uc := NewBatchUpdateUseCase(&mockMessageRepo{}, testLogger())

	read := true
	_, err := uc.Execute(context.Background(), BatchUpdateCommand{IsRead: &read})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestBatchUpdate_RequiresFields(t *testing.T) {
	uc := NewBatchUpdateUseCase(&mockMessageRepo{}, testLogger())

	_, err := uc.Execute(context.Background(), BatchUpdateCommand{MessageIDs: []string{"msg-1"}})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestSearchMessages(t *testing.T) {
	repo := &mockMessageRepo{
		searchFn: func(ctx context.Context, query string, page, pageSize int) ([]*message.ClientMessage, int64, error) {
			assert.Equal(t, "printer", query)
			return []*message.ClientMessage{storedMessage(t, "msg-1")}, 1, nil
		},
	}

	uc := NewSearchMessagesUseCase(repo, testLogger())
	result, err := uc.Execute(context.Background(), SearchMessagesQuery{Query: "printer", Page: 1, PageSize: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)
	assert.False(t, result.HasMore)
}

func TestUnreadCount(t *testing.T) {
	repo := &mockMessageRepo{
		countUnreadFn: func(ctx context.Context) (int64, error) {
			return 6, nil
		},
	}

	uc := NewUnreadCountUseCase(repo, testLogger())
	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(6), result.Count)
}

func TestRelatedMessages(t *testing.T) {
	repo := &mockMessageRepo{
		byServiceFn: func(ctx context.Context, serviceRequestID string) ([]*message.ClientMessage, error) {
			assert.Equal(t, "ticket-3", serviceRequestID)
			return []*message.ClientMessage{storedMessage(t, "msg-5")}, nil
		},
	}

	uc := NewRelatedMessagesUseCase(repo, testLogger())
	result, err := uc.Execute(context.Background(), "ticket-3")

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "msg-5", result[0].ID)
}
