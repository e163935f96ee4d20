package valueobjects

import "fmt"

// MessageStatus tracks a client message through triage. "deleted" is a
// soft state; records are never physically removed. Mutators accept any
// valid status from any other, mirroring the permissive request workflow.
type MessageStatus string

const (
	MessageStatusNew       MessageStatus = "new"
	MessageStatusInTriage  MessageStatus = "in-triage"
	MessageStatusConverted MessageStatus = "converted"
	MessageStatusArchived  MessageStatus = "archived"
	MessageStatusDeleted   MessageStatus = "deleted"
)

var validMessageStatuses = map[MessageStatus]bool{
	MessageStatusNew:       true,
	MessageStatusInTriage:  true,
	MessageStatusConverted: true,
	MessageStatusArchived:  true,
	MessageStatusDeleted:   true,
}

func (s MessageStatus) String() string {
	return string(s)
}

func (s MessageStatus) IsValid() bool {
	return validMessageStatuses[s]
}

func (s MessageStatus) IsConverted() bool {
	return s == MessageStatusConverted
}

func NewMessageStatus(s string) (MessageStatus, error) {
	ms := MessageStatus(s)
	if !ms.IsValid() {
		return "", fmt.Errorf("invalid message status: %s", s)
	}
	return ms, nil
}
