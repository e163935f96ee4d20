package message

import (
	"fmt"
	"slices"
	"time"

	vo "github.com/esit-pro/service-desk/internal/domain/message/valueobjects"
	"github.com/esit-pro/service-desk/internal/shared/validation"
)

// ClientMessage is an inbound communication from a client, independent of
// any service request until converted or linked.
type ClientMessage struct {
	ID               string           `json:"id" validate:"required"`
	ClientID         string           `json:"client_id" validate:"required"`
	ClientName       string           `json:"client_name" validate:"required"`
	ClientEmail      string           `json:"client_email" validate:"required,email"`
	Subject          string           `json:"subject" validate:"required"`
	Content          string           `json:"content" validate:"required"`
	Attachments      []string         `json:"attachments,omitempty"`
	Received         time.Time        `json:"received"`
	IsRead           bool             `json:"is_read"`
	IsFlagged        bool             `json:"is_flagged,omitempty"`
	Category         vo.Category      `json:"category,omitempty"`
	Status           vo.MessageStatus `json:"status" validate:"required"`
	AssignedTo       string           `json:"assigned_to,omitempty"`
	RelatedServiceID string           `json:"related_service_id,omitempty"`
}

// NewClientMessage constructs a validated unread message with status new
// and Received set to now. The ID is left for the repository to allocate.
func NewClientMessage(clientID, clientName, clientEmail, subject, content string, category vo.Category) (*ClientMessage, error) {
	m := &ClientMessage{
		ClientID:    clientID,
		ClientName:  clientName,
		ClientEmail: clientEmail,
		Subject:     subject,
		Content:     content,
		Category:    category,
		Status:      vo.MessageStatusNew,
		Received:    time.Now(),
	}

	probe := *m
	probe.ID = "unassigned"
	if err := probe.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *ClientMessage) Validate() error {
	if err := validation.Struct(m); err != nil {
		return err
	}
	if !m.Status.IsValid() {
		return fmt.Errorf("invalid status: %q", m.Status)
	}
	if !m.Category.IsZero() && !m.Category.IsValid() {
		return fmt.Errorf("invalid category: %q", m.Category)
	}
	return nil
}

// Clone returns a deep copy for handing out without exposing store-owned
// state.
func (m *ClientMessage) Clone() *ClientMessage {
	dup := *m
	dup.Attachments = slices.Clone(m.Attachments)
	return &dup
}

// Patch is a partial update applied to a message; nil fields are left
// untouched. Status and category values are validated by Apply.
type Patch struct {
	IsRead           *bool
	IsFlagged        *bool
	Status           *vo.MessageStatus
	Category         *vo.Category
	AssignedTo       *string
	RelatedServiceID *string
}

// Apply merges the patch into the message.
func (p Patch) Apply(m *ClientMessage) error {
	if p.Status != nil && !p.Status.IsValid() {
		return fmt.Errorf("invalid status: %q", *p.Status)
	}
	if p.Category != nil && !p.Category.IsZero() && !p.Category.IsValid() {
		return fmt.Errorf("invalid category: %q", *p.Category)
	}

	if p.IsRead != nil {
		m.IsRead = *p.IsRead
	}
	if p.IsFlagged != nil {
		m.IsFlagged = *p.IsFlagged
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
	if p.Category != nil {
		m.Category = *p.Category
	}
	if p.AssignedTo != nil {
		m.AssignedTo = *p.AssignedTo
	}
	if p.RelatedServiceID != nil {
		m.RelatedServiceID = *p.RelatedServiceID
	}
	return nil
}

// IsEmpty reports whether the patch would change nothing.
func (p Patch) IsEmpty() bool {
	return p.IsRead == nil && p.IsFlagged == nil && p.Status == nil &&
		p.Category == nil && p.AssignedTo == nil && p.RelatedServiceID == nil
}

// Filter is a partial-field equality match: every set field must equal
// the corresponding field on the message for it to pass.
type Filter struct {
	ClientID         *string
	Status           *vo.MessageStatus
	Category         *vo.Category
	IsRead           *bool
	IsFlagged        *bool
	AssignedTo       *string
	RelatedServiceID *string
}

// Matches reports whether the message satisfies every set filter field.
func (f Filter) Matches(m *ClientMessage) bool {
	if f.ClientID != nil && m.ClientID != *f.ClientID {
		return false
	}
	if f.Status != nil && m.Status != *f.Status {
		return false
	}
	if f.Category != nil && m.Category != *f.Category {
		return false
	}
	if f.IsRead != nil && m.IsRead != *f.IsRead {
		return false
	}
	if f.IsFlagged != nil && m.IsFlagged != *f.IsFlagged {
		return false
	}
	if f.AssignedTo != nil && m.AssignedTo != *f.AssignedTo {
		return false
	}
	if f.RelatedServiceID != nil && m.RelatedServiceID != *f.RelatedServiceID {
		return false
	}
	return true
}
