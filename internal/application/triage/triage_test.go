package triage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esit-pro/service-desk/internal/domain/message"
	msgvo "github.com/esit-pro/service-desk/internal/domain/message/valueobjects"
	"github.com/esit-pro/service-desk/internal/domain/servicerequest"
	"github.com/esit-pro/service-desk/internal/shared/errors"
	"github.com/esit-pro/service-desk/internal/shared/logger"
)

type stubMessageRepo struct {
	message.Repository

	getByIDFn     func(ctx context.Context, id string) (*message.ClientMessage, error)
	updateFn      func(ctx context.Context, id string, patch message.Patch) (bool, error)
	batchUpdateFn func(ctx context.Context, ids []string, patch message.Patch) (int64, error)
}

func (s *stubMessageRepo) GetByID(ctx context.Context, id string) (*message.ClientMessage, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubMessageRepo) Update(ctx context.Context, id string, patch message.Patch) (bool, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubMessageRepo) BatchUpdate(ctx context.Context, ids []string, patch message.Patch) (int64, error) {
	return s.batchUpdateFn(ctx, ids, patch)
}

type stubRequestRepo struct {
	servicerequest.Repository

	getByIDFn func(ctx context.Context, id string) (*servicerequest.ServiceRequest, error)
	saveFn    func(ctx context.Context, sr *servicerequest.ServiceRequest) error
	updateFn  func(ctx context.Context, sr *servicerequest.ServiceRequest) (bool, error)
}

func (s *stubRequestRepo) GetByID(ctx context.Context, id string) (*servicerequest.ServiceRequest, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubRequestRepo) Save(ctx context.Context, sr *servicerequest.ServiceRequest) error {
	return s.saveFn(ctx, sr)
}

func (s *stubRequestRepo) Update(ctx context.Context, sr *servicerequest.ServiceRequest) (bool, error) {
	return s.updateFn(ctx, sr)
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}

func inboundMessage(t *testing.T, id string) *message.ClientMessage {
	t.Helper()
	m, err := message.NewClientMessage("client-1", "Sarah Johnson", "sjohnson@acmecorp.com",
		"Printer offline", "The office printer stopped responding this morning.", msgvo.Category("support"))
	require.NoError(t, err)
	m.ID = id
	return m
}

func TestConvertMessage(t *testing.T) {
	var savedRequest *servicerequest.ServiceRequest
	var appliedPatch message.Patch

	messages := &stubMessageRepo{
		getByIDFn: func(ctx context.Context, id string) (*message.ClientMessage, error) {
			return inboundMessage(t, id), nil
		},
		updateFn: func(ctx context.Context, id string, patch message.Patch) (bool, error) {
			appliedPatch = patch
			return true, nil
		},
	}
	requests := &stubRequestRepo{
		saveFn: func(ctx context.Context, sr *servicerequest.ServiceRequest) error {
			sr.ID = "ticket-16"
			savedRequest = sr
			return nil
		},
	}

	uc := NewConvertMessageUseCase(messages, requests, testLogger())
	result, err := uc.Execute(context.Background(), ConvertMessageCommand{
		MessageID: "msg-3",
		Category:  "Hardware",
		Priority:  4,
	})

	require.NoError(t, err)
	require.NotNil(t, savedRequest)
	assert.Equal(t, "Printer offline", savedRequest.Title)
	assert.Equal(t, "The office printer stopped responding this morning.", savedRequest.Description)
	assert.Equal(t, []string{"msg-3"}, savedRequest.SourceMessageIDs)
	assert.Equal(t, []string{"support"}, savedRequest.Tags, "message category becomes a tag")

	require.NotNil(t, appliedPatch.Status)
	assert.Equal(t, msgvo.MessageStatusConverted, *appliedPatch.Status)
	require.NotNil(t, appliedPatch.RelatedServiceID)
	assert.Equal(t, "ticket-16", *appliedPatch.RelatedServiceID)

	assert.Equal(t, "ticket-16", result.Request.ID)
	assert.Equal(t, "converted", result.Message.Status)
	assert.Equal(t, "ticket-16", result.Message.RelatedServiceID)
}

func TestConvertMessage_MissingMessage(t *testing.T) {
	messages := &stubMessageRepo{
		getByIDFn: func(ctx context.Context, id string) (*message.ClientMessage, error) {
			return nil, nil
		},
	}

	uc := NewConvertMessageUseCase(messages, &stubRequestRepo{}, testLogger())
	result, err := uc.Execute(context.Background(), ConvertMessageCommand{
		MessageID: "msg-99",
		Category:  "Hardware",
		Priority:  3,
	})

	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestConvertMessage_InvalidPriority(t *testing.T) {
	uc := NewConvertMessageUseCase(&stubMessageRepo{}, &stubRequestRepo{}, testLogger())

	_, err := uc.Execute(context.Background(), ConvertMessageCommand{
		MessageID: "msg-1",
		Category:  "Hardware",
		Priority:  9,
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestLinkMessage(t *testing.T) {
	sr, err := servicerequest.New("Printer offline", "The office printer stopped responding.", "Hardware", 3)
	require.NoError(t, err)
	sr.ID = "ticket-2"

	var updatedRequest *servicerequest.ServiceRequest
	messages := &stubMessageRepo{
		getByIDFn: func(ctx context.Context, id string) (*message.ClientMessage, error) {
			return inboundMessage(t, id), nil
		},
		updateFn: func(ctx context.Context, id string, patch message.Patch) (bool, error) {
			require.NotNil(t, patch.RelatedServiceID)
			assert.Equal(t, "ticket-2", *patch.RelatedServiceID)
			return true, nil
		},
	}
	requests := &stubRequestRepo{
		getByIDFn: func(ctx context.Context, id string) (*servicerequest.ServiceRequest, error) {
			return sr, nil
		},
		updateFn: func(ctx context.Context, got *servicerequest.ServiceRequest) (bool, error) {
			updatedRequest = got
			return true, nil
		},
	}

	uc := NewLinkMessageUseCase(messages, requests, testLogger())
	result, err := uc.Execute(context.Background(), LinkMessageCommand{MessageID: "msg-7", RequestID: "ticket-2"})

	require.NoError(t, err)
	require.NotNil(t, updatedRequest)
	assert.Equal(t, []string{"msg-7"}, updatedRequest.SourceMessageIDs)
	assert.Equal(t, "ticket-2", result.RelatedServiceID)
}

func TestLinkMessage_DuplicateLinkIsIdempotent(t *testing.T) {
	sr, err := servicerequest.New("Printer offline", "The office printer stopped responding.", "Hardware", 3)
	require.NoError(t, err)
	sr.ID = "ticket-2"
	sr.LinkSourceMessage("msg-7")

	messages := &stubMessageRepo{
		getByIDFn: func(ctx context.Context, id string) (*message.ClientMessage, error) {
			return inboundMessage(t, id), nil
		},
		updateFn: func(ctx context.Context, id string, patch message.Patch) (bool, error) {
			return true, nil
		},
	}
	requests := &stubRequestRepo{
		getByIDFn: func(ctx context.Context, id string) (*servicerequest.ServiceRequest, error) {
			return sr, nil
		},
		updateFn: func(ctx context.Context, got *servicerequest.ServiceRequest) (bool, error) {
			return true, nil
		},
	}

	uc := NewLinkMessageUseCase(messages, requests, testLogger())
	_, err = uc.Execute(context.Background(), LinkMessageCommand{MessageID: "msg-7", RequestID: "ticket-2"})

	require.NoError(t, err)
	assert.Equal(t, []string{"msg-7"}, sr.SourceMessageIDs, "second link does not duplicate the source")
}

func TestLinkMessage_MissingRequest(t *testing.T) {
	messages := &stubMessageRepo{
		getByIDFn: func(ctx context.Context, id string) (*message.ClientMessage, error) {
			return inboundMessage(t, id), nil
		},
	}
	requests := &stubRequestRepo{
		getByIDFn: func(ctx context.Context, id string) (*servicerequest.ServiceRequest, error) {
			return nil, nil
		},
	}

	uc := NewLinkMessageUseCase(messages, requests, testLogger())
	result, err := uc.Execute(context.Background(), LinkMessageCommand{MessageID: "msg-7", RequestID: "ticket-99"})

	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestBatchTriage_Archive(t *testing.T) {
	messages := &stubMessageRepo{
		batchUpdateFn: func(ctx context.Context, ids []string, patch message.Patch) (int64, error) {
			require.NotNil(t, patch.Status)
			assert.Equal(t, msgvo.MessageStatusArchived, *patch.Status)
			return int64(len(ids)), nil
		},
	}

	uc := NewBatchTriageUseCase(messages, testLogger())
	updated, err := uc.Archive(context.Background(), []string{"msg-1", "msg-2"})

	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)
}

func TestBatchTriage_DeleteRequiresIDs(t *testing.T) {
	uc := NewBatchTriageUseCase(&stubMessageRepo{}, testLogger())

	_, err := uc.Delete(context.Background(), nil)

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
