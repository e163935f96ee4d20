package servicerequest

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/esit-pro/service-desk/internal/domain/servicerequest/valueobjects"
)

func TestNew_Valid(t *testing.T) {
	sr, err := New("Printer offline", "Conference room printer shows offline.", "Hardware", 4)
	require.NoError(t, err)

	assert.Empty(t, sr.ID)
	assert.Equal(t, vo.StatusNew, sr.Status)
	assert.Equal(t, vo.Priority(4), sr.Priority)
	assert.NotNil(t, sr.SourceMessageIDs)
	assert.Empty(t, sr.SourceMessageIDs)
	assert.False(t, sr.UpdatedAt.Before(sr.CreatedAt))
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		category    string
		priority    vo.Priority
	}{
		{"empty title", "", "desc", "Hardware", 3},
		{"empty description", "title", "", "Hardware", 3},
		{"empty category", "title", "desc", "", 3},
		{"priority too low", "title", "desc", "Hardware", 0},
		{"priority too high", "title", "desc", "Hardware", 6},
		{"title too long", strings.Repeat("x", 201), "desc", "Hardware", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.title, tt.description, tt.category, tt.priority)
			assert.Error(t, err)
		})
	}
}

func TestUpdateStatus_AnyTransitionAccepted(t *testing.T) {
	sr, err := New("title", "desc", "Network", 3)
	require.NoError(t, err)

	// The workflow is permissive: every (from, to) pair is legal,
	// including backwards moves like Resolved -> New.
	for _, from := range vo.AllStatuses() {
		for _, to := range vo.AllStatuses() {
			sr.Status = from
			require.NoError(t, sr.UpdateStatus(to))
			assert.Equal(t, to, sr.Status)
		}
	}
}

func TestUpdateStatus_RejectsUnknownValue(t *testing.T) {
	sr, err := New("title", "desc", "Network", 3)
	require.NoError(t, err)

	assert.Error(t, sr.UpdateStatus(vo.Status("Closed")))
	assert.Equal(t, vo.StatusNew, sr.Status)
}

func TestUpdateStatus_BumpsUpdatedAt(t *testing.T) {
	sr, err := New("title", "desc", "Network", 3)
	require.NoError(t, err)

	sr.UpdatedAt = sr.UpdatedAt.Add(-time.Hour)
	before := sr.UpdatedAt

	require.NoError(t, sr.UpdateStatus(vo.StatusInProgress))
	assert.True(t, sr.UpdatedAt.After(before))
}

func TestLogHours(t *testing.T) {
	sr, err := New("title", "desc", "Software", 2)
	require.NoError(t, err)

	require.NoError(t, sr.LogHours(1.5))
	require.NoError(t, sr.LogHours(2))
	assert.InDelta(t, 3.5, sr.ActualHours, 0.0001)

	assert.Error(t, sr.LogHours(-1))
	assert.InDelta(t, 3.5, sr.ActualHours, 0.0001)
}

func TestAddNote_AppendsWithTimestamp(t *testing.T) {
	sr, err := New("title", "desc", "Software", 2)
	require.NoError(t, err)

	sr.AddNote("first note")
	assert.Contains(t, sr.Notes, "first note")

	sr.AddNote("second note")
	assert.Contains(t, sr.Notes, "first note")
	assert.Contains(t, sr.Notes, "second note")
	assert.Equal(t, 2, strings.Count(sr.Notes, ": "))
}

func TestLinkSourceMessage_Deduplicates(t *testing.T) {
	sr, err := New("title", "desc", "Network", 3)
	require.NoError(t, err)

	sr.LinkSourceMessage("msg-1")
	sr.LinkSourceMessage("msg-2")
	sr.LinkSourceMessage("msg-1")

	assert.Equal(t, []string{"msg-1", "msg-2"}, sr.SourceMessageIDs)
}

func TestClone_IsDeepCopy(t *testing.T) {
	sr, err := New("title", "desc", "Network", 3)
	require.NoError(t, err)
	sr.ID = "ticket-1"
	sr.Tags = []string{"outage"}
	sr.LinkSourceMessage("msg-1")
	due := time.Now().Add(24 * time.Hour)
	sr.DueDate = &due

	dup := sr.Clone()
	require.Equal(t, sr, dup)

	dup.Tags[0] = "changed"
	dup.SourceMessageIDs = append(dup.SourceMessageIDs, "msg-9")
	*dup.DueDate = dup.DueDate.Add(time.Hour)

	assert.Equal(t, "outage", sr.Tags[0])
	assert.Equal(t, []string{"msg-1"}, sr.SourceMessageIDs)
	assert.Equal(t, due.Unix(), sr.DueDate.Unix())
}

func TestValidate_UpdatedAtBeforeCreatedAt(t *testing.T) {
	sr, err := New("title", "desc", "Network", 3)
	require.NoError(t, err)
	sr.ID = "ticket-1"
	sr.UpdatedAt = sr.CreatedAt.Add(-time.Minute)

	assert.Error(t, sr.Validate())
}
