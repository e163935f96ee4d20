package mockdata

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_ServiceRequests_AllValid(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(42)))

	requests, err := g.ServiceRequests(1000)
	require.NoError(t, err)
	require.Len(t, requests, 1000)

	for _, sr := range requests {
		probe := *sr
		probe.ID = "unassigned"
		assert.NoError(t, probe.Validate())
		assert.NotEmpty(t, sr.Tags)
		assert.LessOrEqual(t, len(sr.Tags), 5)
		assert.False(t, sr.CreatedAt.After(g.now))
	}
}

func TestGenerator_ServiceRequests_SortedByPriorityThenRecency(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(7)))

	requests, err := g.ServiceRequests(200)
	require.NoError(t, err)

	for i := 1; i < len(requests); i++ {
		prev, cur := requests[i-1], requests[i]
		if prev.Priority == cur.Priority {
			assert.False(t, cur.CreatedAt.After(prev.CreatedAt),
				"within a priority band newer records come first")
		} else {
			assert.Greater(t, int(prev.Priority), int(cur.Priority))
		}
	}
}

func TestGenerator_DeterministicUnderFixedSeed(t *testing.T) {
	a := NewGenerator(rand.New(rand.NewSource(99)))
	b := NewGenerator(rand.New(rand.NewSource(99)))

	ra, err := a.ServiceRequests(50)
	require.NoError(t, err)
	rb, err := b.ServiceRequests(50)
	require.NoError(t, err)

	require.Len(t, rb, len(ra))
	for i := range ra {
		assert.Equal(t, ra[i].Title, rb[i].Title)
		assert.Equal(t, ra[i].Priority, rb[i].Priority)
		assert.Equal(t, ra[i].Status, rb[i].Status)
		assert.Equal(t, ra[i].Tags, rb[i].Tags)
	}
}

func TestGenerator_TagsStayInVocabulary(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(3)))

	requests, err := g.ServiceRequests(300)
	require.NoError(t, err)

	for _, sr := range requests {
		vocab := categoryTags[sr.Category]
		require.NotEmpty(t, vocab, "unknown category %q", sr.Category)
		for _, tag := range sr.Tags {
			if tag == "urgent" || tag == "critical" {
				assert.True(t, sr.Priority.IsUrgent(), "escalation tags only on urgent records")
				continue
			}
			assert.Contains(t, vocab, tag)
		}
	}
}

func TestFixedServiceRequests(t *testing.T) {
	now := time.Now()
	requests := FixedServiceRequests(now)

	require.Len(t, requests, 15)
	assert.Equal(t, "ticket-1", requests[0].ID)
	assert.Equal(t, "ticket-15", requests[14].ID)

	for _, sr := range requests {
		assert.NoError(t, sr.Validate(), "fixture %s must validate", sr.ID)
	}
}

func TestFixedClientMessages(t *testing.T) {
	now := time.Now()
	msgs := FixedClientMessages(now)

	require.Len(t, msgs, 20)
	for _, m := range msgs {
		assert.NoError(t, m.Validate(), "fixture %s must validate", m.ID)
	}

	var unread int
	for _, m := range msgs {
		if !m.IsRead {
			unread++
		}
	}
	assert.Equal(t, 6, unread)
}

func TestFixedThreads(t *testing.T) {
	now := time.Now()
	threads := FixedThreads(now)

	require.Len(t, threads, 5)
	for _, th := range threads {
		assert.NoError(t, th.Validate(), "fixture %s must validate", th.ID)
	}

	assert.Equal(t, "ticket-1", threads[0].ServiceRequestID)
	assert.Len(t, threads[0].Messages, 5)
	assert.Empty(t, threads[3].ServiceRequestID)
	assert.Equal(t, "thread-1-msg-2", threads[0].Messages[1].ID)
}
