package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esit-pro/service-desk/internal/domain/servicerequest"
	vo "github.com/esit-pro/service-desk/internal/domain/servicerequest/valueobjects"
	"github.com/esit-pro/service-desk/internal/shared/errors"
)

func storedRequest(t *testing.T, id string) *servicerequest.ServiceRequest {
	t.Helper()
	sr, err := servicerequest.New("Printer offline", "The office printer stopped responding.", "Hardware", 3)
	require.NoError(t, err)
	sr.ID = id
	return sr
}

func TestListRequests_NormalizesPagination(t *testing.T) {
	repo := &mockRequestRepo{
		listFn: func(ctx context.Context, page, pageSize int) ([]*servicerequest.ServiceRequest, int64, error) {
			assert.Equal(t, 1, page, "page below 1 falls back to the default")
			assert.Equal(t, 10, pageSize)
			return []*servicerequest.ServiceRequest{storedRequest(t, "ticket-1")}, 15, nil
		},
	}

	uc := NewListRequestsUseCase(repo, testLogger())
	result, err := uc.Execute(context.Background(), ListRequestsQuery{Page: 0, PageSize: 0})

	require.NoError(t, err)
	assert.Equal(t, int64(15), result.Total)
	assert.True(t, result.HasMore)
	require.Len(t, result.Items, 1)
}

func TestListRequests_LastPageHasNoMore(t *testing.T) {
	repo := &mockRequestRepo{
		listFn: func(ctx context.Context, page, pageSize int) ([]*servicerequest.ServiceRequest, int64, error) {
			return []*servicerequest.ServiceRequest{storedRequest(t, "ticket-15")}, 15, nil
		},
	}

	uc := NewListRequestsUseCase(repo, testLogger())
	result, err := uc.Execute(context.Background(), ListRequestsQuery{Page: 2, PageSize: 10})

	require.NoError(t, err)
	assert.False(t, result.HasMore)
}

func TestGetRequest_MissIsNotAnError(t *testing.T) {
	repo := &mockRequestRepo{
		getByIDFn: func(ctx context.Context, id string) (*servicerequest.ServiceRequest, error) {
			return nil, nil
		},
	}

	uc := NewGetRequestUseCase(repo, testLogger())
	result, err := uc.Execute(context.Background(), "ticket-99")

	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestCreateRequest(t *testing.T) {
	var saved *servicerequest.ServiceRequest
	repo := &mockRequestRepo{
		saveFn: func(ctx context.Context, sr *servicerequest.ServiceRequest) error {
			sr.ID = "ticket-16"
			saved = sr
			return nil
		},
	}

	uc := NewCreateRequestUseCase(repo, testLogger())
	result, err := uc.Execute(context.Background(), CreateRequestCommand{
		Title:       "Monitor flickering",
		Description: "The second display flickers every few minutes.",
		Category:    "Hardware",
		Priority:    2,
		ClientName:  "Sarah Johnson",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "ticket-16", result.ID)
	assert.Equal(t, "New", result.Status)
	assert.Equal(t, 2, result.Priority)
}

func TestCreateRequest_InvalidPriority(t *testing.T) {
	uc := NewCreateRequestUseCase(&mockRequestRepo{}, testLogger())

	_, err := uc.Execute(context.Background(), CreateRequestCommand{
		Title:       "Title",
		Description: "Description",
		Category:    "Hardware",
		Priority:    6,
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestChangeStatus_AcceptsAnyValidTransition(t *testing.T) {
	sr := storedRequest(t, "ticket-1")
	require.NoError(t, sr.UpdateStatus(vo.StatusResolved))

	repo := &mockRequestRepo{
		getByIDFn: func(ctx context.Context, id string) (*servicerequest.ServiceRequest, error) {
			return sr, nil
		},
		updateFn: func(ctx context.Context, got *servicerequest.ServiceRequest) (bool, error) {
			return true, nil
		},
	}

	uc := NewChangeStatusUseCase(repo, testLogger())
	result, err := uc.Execute(context.Background(), ChangeStatusCommand{RequestID: "ticket-1", Status: "New"})

	require.NoError(t, err)
	assert.Equal(t, "New", result.Status, "resolved back to new is allowed")
}

func TestChangeStatus_RejectsUnknownStatus(t *testing.T) {
	uc := NewChangeStatusUseCase(&mockRequestRepo{}, testLogger())

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{RequestID: "ticket-1", Status: "Closed"})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestChangeStatus_MissingRequest(t *testing.T) {
	repo := &mockRequestRepo{
		getByIDFn: func(ctx context.Context, id string) (*servicerequest.ServiceRequest, error) {
			return nil, nil
		},
	}

	uc := NewChangeStatusUseCase(repo, testLogger())
	result, err := uc.Execute(context.Background(), ChangeStatusCommand{RequestID: "ticket-99", Status: "New"})

	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestLogHours_RejectsNegative(t *testing.T) {
	repo := &mockRequestRepo{
		getByIDFn: func(ctx context.Context, id string) (*servicerequest.ServiceRequest, error) {
			return storedRequest(t, id), nil
		},
	}

	uc := NewLogHoursUseCase(repo, testLogger())
	_, err := uc.Execute(context.Background(), LogHoursCommand{RequestID: "ticket-1", Hours: -2})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestRegenerateData_AssignsPositionalIDs(t *testing.T) {
	var replaced []*servicerequest.ServiceRequest
	repo := &mockRequestRepo{
		replaceAllFn: func(ctx context.Context, requests []*servicerequest.ServiceRequest) error {
			replaced = requests
			return nil
		},
	}
	gen := &mockGenerator{
		serviceRequestsFn: func(count int) ([]*servicerequest.ServiceRequest, error) {
			out := make([]*servicerequest.ServiceRequest, count)
			for i := range out {
				out[i] = storedRequest(t, "")
			}
			return out, nil
		},
	}

	uc := NewRegenerateDataUseCase(repo, gen, testLogger())
	result, err := uc.Execute(context.Background(), RegenerateDataCommand{Count: 3})

	require.NoError(t, err)
	assert.Equal(t, 3, result.Count)
	require.Len(t, replaced, 3)
	for i, sr := range replaced {
		assert.Equal(t, fmt.Sprintf("ticket-%d", i+1), sr.ID)
	}
}

func TestRegenerateData_RejectsZeroCount(t *testing.T) {
	uc := NewRegenerateDataUseCase(&mockRequestRepo{}, &mockGenerator{}, testLogger())

	_, err := uc.Execute(context.Background(), RegenerateDataCommand{Count: 0})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
