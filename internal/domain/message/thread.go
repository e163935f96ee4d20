package message

import (
	"fmt"
	"slices"
	"time"

	vo "github.com/esit-pro/service-desk/internal/domain/message/valueobjects"
	"github.com/esit-pro/service-desk/internal/shared/validation"
)

// ThreadMessage is one entry in a conversation thread. It is exclusively
// owned by its parent thread and never shared.
type ThreadMessage struct {
	ID          string    `json:"id" validate:"required"`
	Sender      vo.Sender `json:"sender" validate:"required"`
	SenderName  string    `json:"sender_name" validate:"required"`
	Content     string    `json:"content" validate:"required"`
	Timestamp   time.Time `json:"timestamp"`
	Attachments []string  `json:"attachments,omitempty"`
	IsRead      bool      `json:"is_read"`
}

func (tm *ThreadMessage) Validate() error {
	if err := validation.Struct(tm); err != nil {
		return err
	}
	if !tm.Sender.IsValid() {
		return fmt.Errorf("invalid sender: %q", tm.Sender)
	}
	return nil
}

func (tm *ThreadMessage) clone() ThreadMessage {
	dup := *tm
	dup.Attachments = slices.Clone(tm.Attachments)
	return dup
}

// MessageThread is an ordered conversation. Message order is insertion
// order, which is chronological order; a thread always holds at least its
// initial message.
type MessageThread struct {
	ID               string          `json:"id" validate:"required"`
	Messages         []ThreadMessage `json:"messages" validate:"min=1"`
	ServiceRequestID string          `json:"service_request_id,omitempty"`
	IsArchived       bool            `json:"is_archived"`
}

// NewThread builds a thread around its initial message. The thread ID and
// the initial message ID are assigned by the repository on creation.
func NewThread(initial ThreadMessage, serviceRequestID string) (*MessageThread, error) {
	probe := initial
	if probe.ID == "" {
		probe.ID = "unassigned"
	}
	if err := probe.Validate(); err != nil {
		return nil, err
	}

	return &MessageThread{
		Messages:         []ThreadMessage{initial},
		ServiceRequestID: serviceRequestID,
		IsArchived:       false,
	}, nil
}

func (t *MessageThread) Validate() error {
	if err := validation.Struct(t); err != nil {
		return err
	}
	for i := range t.Messages {
		if err := t.Messages[i].Validate(); err != nil {
			return fmt.Errorf("message %d: %w", i, err)
		}
	}
	return nil
}

// NextMessageID derives the ID for the next appended message from the
// thread ID and the running count: "{threadID}-msg-{n+1}".
func (t *MessageThread) NextMessageID() string {
	return fmt.Sprintf("%s-msg-%d", t.ID, len(t.Messages)+1)
}

// Append adds a message to the end of the conversation, preserving
// arrival order.
func (t *MessageThread) Append(tm ThreadMessage) {
	t.Messages = append(t.Messages, tm)
}

// MarkMessageRead flags the identified entry as read. Returns false when
// the entry is absent.
func (t *MessageThread) MarkMessageRead(messageID string) bool {
	for i := range t.Messages {
		if t.Messages[i].ID == messageID {
			t.Messages[i].IsRead = true
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the thread.
func (t *MessageThread) Clone() *MessageThread {
	dup := *t
	dup.Messages = make([]ThreadMessage, len(t.Messages))
	for i := range t.Messages {
		dup.Messages[i] = t.Messages[i].clone()
	}
	return &dup
}

// ThreadPatch is a partial update for thread-level fields; nil fields are
// left untouched.
type ThreadPatch struct {
	ServiceRequestID *string
	IsArchived       *bool
}

// Apply merges the patch into the thread.
func (p ThreadPatch) Apply(t *MessageThread) {
	if p.ServiceRequestID != nil {
		t.ServiceRequestID = *p.ServiceRequestID
	}
	if p.IsArchived != nil {
		t.IsArchived = *p.IsArchived
	}
}
