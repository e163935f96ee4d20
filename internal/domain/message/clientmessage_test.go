package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/esit-pro/service-desk/internal/domain/message/valueobjects"
)

func TestNewClientMessage_Valid(t *testing.T) {
	m, err := NewClientMessage("client-1", "Sarah Johnson", "sarah@techcorp.example", "Printer offline", "The office printer stopped responding.", vo.CategorySupport)
	require.NoError(t, err)

	assert.Empty(t, m.ID)
	assert.Equal(t, vo.MessageStatusNew, m.Status)
	assert.False(t, m.IsRead)
	assert.False(t, m.Received.IsZero())
}

func TestNewClientMessage_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		clientEmail string
		subject     string
		content     string
	}{
		{"bad email", "not-an-email", "Subject", "Content"},
		{"empty subject", "sarah@techcorp.example", "", "Content"},
		{"empty content", "sarah@techcorp.example", "Subject", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClientMessage("client-1", "Sarah Johnson", tt.clientEmail, tt.subject, tt.content, vo.CategorySupport)
			assert.Error(t, err)
		})
	}
}

func TestNewClientMessage_AllowsUncategorized(t *testing.T) {
	m, err := NewClientMessage("client-1", "Sarah Johnson", "sarah@techcorp.example", "Subject", "Content", "")
	require.NoError(t, err)
	assert.True(t, m.Category.IsZero())
}

func TestPatch_Apply(t *testing.T) {
	m := newTestMessage(t)

	read := true
	status := vo.MessageStatusInTriage
	assignee := "David Miller"
	err := Patch{IsRead: &read, Status: &status, AssignedTo: &assignee}.Apply(m)

	require.NoError(t, err)
	assert.True(t, m.IsRead)
	assert.Equal(t, vo.MessageStatusInTriage, m.Status)
	assert.Equal(t, "David Miller", m.AssignedTo)
	assert.False(t, m.IsFlagged, "unset fields stay untouched")
}

func TestPatch_Apply_RejectsInvalidStatus(t *testing.T) {
	m := newTestMessage(t)
	before := m.Status

	bad := vo.MessageStatus("bogus")
	err := Patch{Status: &bad}.Apply(m)

	assert.Error(t, err)
	assert.Equal(t, before, m.Status)
}

func TestPatch_IsEmpty(t *testing.T) {
	assert.True(t, Patch{}.IsEmpty())

	flagged := true
	assert.False(t, Patch{IsFlagged: &flagged}.IsEmpty())
}

func TestFilter_Matches(t *testing.T) {
	m := newTestMessage(t)
	m.Status = vo.MessageStatusInTriage
	m.IsRead = true

	clientID := "client-1"
	status := vo.MessageStatusInTriage
	otherStatus := vo.MessageStatusArchived
	read := true

	assert.True(t, Filter{}.Matches(m), "empty filter matches everything")
	assert.True(t, Filter{ClientID: &clientID, Status: &status, IsRead: &read}.Matches(m))
	assert.False(t, Filter{Status: &otherStatus}.Matches(m), "one mismatched field fails the whole filter")
}

func TestClientMessage_Clone_IsDeepCopy(t *testing.T) {
	m := newTestMessage(t)
	m.Attachments = []string{"invoice.pdf"}

	dup := m.Clone()
	dup.Attachments[0] = "changed.pdf"
	dup.Subject = "changed"

	assert.Equal(t, "invoice.pdf", m.Attachments[0])
	assert.NotEqual(t, dup.Subject, m.Subject)
}

func newTestMessage(t *testing.T) *ClientMessage {
	t.Helper()
	m, err := NewClientMessage("client-1", "Sarah Johnson", "sarah@techcorp.example", "Printer offline", "The office printer stopped responding.", vo.CategorySupport)
	require.NoError(t, err)
	m.ID = "msg-1"
	return m
}
