package servicerequest

import (
	"fmt"
	"slices"
	"time"

	vo "github.com/esit-pro/service-desk/internal/domain/servicerequest/valueobjects"
	"github.com/esit-pro/service-desk/internal/shared/validation"
)

// ServiceRequest is a trackable unit of support work. Records are mutated
// through the methods below so UpdatedAt stays consistent; they are never
// physically deleted.
type ServiceRequest struct {
	ID               string      `json:"id" validate:"required"`
	Title            string      `json:"title" validate:"required,max=200"`
	Description      string      `json:"description" validate:"required,max=5000"`
	ClientID         string      `json:"client_id,omitempty"`
	ClientName       string      `json:"client_name,omitempty"`
	ClientEmail      string      `json:"client_email,omitempty" validate:"omitempty,email"`
	Category         string      `json:"category" validate:"required"`
	Priority         vo.Priority `json:"priority" validate:"gte=1,lte=5"`
	Status           vo.Status   `json:"status" validate:"required"`
	AssignedTo       string      `json:"assigned_to,omitempty"`
	DueDate          *time.Time  `json:"due_date,omitempty"`
	EstimatedHours   float64     `json:"estimated_hours,omitempty" validate:"gte=0"`
	ActualHours      float64     `json:"actual_hours,omitempty" validate:"gte=0"`
	IsInvoiced       bool        `json:"is_invoiced,omitempty"`
	SourceMessageIDs []string    `json:"source_message_ids"`
	Tags             []string    `json:"tags,omitempty"`
	Notes            string      `json:"notes,omitempty"`
	Attachments      []string    `json:"attachments,omitempty"`
	ImageURL         string      `json:"image_url,omitempty" validate:"omitempty,url"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// New constructs a validated service request with status New and both
// timestamps set to now. The ID is left empty for the repository to
// allocate on save.
func New(title, description, category string, priority vo.Priority) (*ServiceRequest, error) {
	now := time.Now()
	sr := &ServiceRequest{
		Title:            title,
		Description:      description,
		Category:         category,
		Priority:         priority,
		Status:           vo.StatusNew,
		SourceMessageIDs: []string{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := sr.validateFields(); err != nil {
		return nil, err
	}
	return sr, nil
}

// Validate checks the record against the schema. Construction-time
// failures are fatal to the creating call; they are never stored.
func (sr *ServiceRequest) Validate() error {
	if err := validation.Struct(sr); err != nil {
		return err
	}
	if !sr.Status.IsValid() {
		return fmt.Errorf("invalid status: %q", sr.Status)
	}
	if !sr.Priority.IsValid() {
		return fmt.Errorf("invalid priority: %d", sr.Priority)
	}
	if sr.UpdatedAt.Before(sr.CreatedAt) {
		return fmt.Errorf("updated_at precedes created_at")
	}
	return nil
}

// validateFields is Validate minus the ID requirement, for records whose
// ID has not been allocated yet.
func (sr *ServiceRequest) validateFields() error {
	probe := *sr
	if probe.ID == "" {
		probe.ID = "unassigned"
	}
	return probe.Validate()
}

// UpdateStatus assigns the given status. Transitions are not restricted;
// any valid status may replace any other.
func (sr *ServiceRequest) UpdateStatus(status vo.Status) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %q", status)
	}
	sr.Status = status
	sr.touch()
	return nil
}

func (sr *ServiceRequest) UpdatePriority(priority vo.Priority) error {
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority: %d", priority)
	}
	sr.Priority = priority
	sr.touch()
	return nil
}

func (sr *ServiceRequest) Assign(assignedTo string) {
	sr.AssignedTo = assignedTo
	sr.touch()
}

// LogHours adds to the actual hours worked. Negative amounts are rejected
// so the running total never decreases.
func (sr *ServiceRequest) LogHours(additional float64) error {
	if additional < 0 {
		return fmt.Errorf("additional hours must be non-negative")
	}
	sr.ActualHours += additional
	sr.touch()
	return nil
}

// AddNote appends a timestamped note to the running notes field.
func (sr *ServiceRequest) AddNote(note string) {
	stamped := fmt.Sprintf("%s: %s", time.Now().Format(time.DateTime), note)
	if sr.Notes == "" {
		sr.Notes = stamped
	} else {
		sr.Notes = sr.Notes + "\n\n" + stamped
	}
	sr.touch()
}

// LinkSourceMessage records a message as a source of this request.
// Repeated links of the same message are deduplicated.
func (sr *ServiceRequest) LinkSourceMessage(messageID string) {
	if slices.Contains(sr.SourceMessageIDs, messageID) {
		return
	}
	sr.SourceMessageIDs = append(sr.SourceMessageIDs, messageID)
	sr.touch()
}

func (sr *ServiceRequest) touch() {
	sr.UpdatedAt = time.Now()
}

// Clone returns a deep copy so callers can hand out records without
// exposing store-owned state.
func (sr *ServiceRequest) Clone() *ServiceRequest {
	dup := *sr
	dup.SourceMessageIDs = slices.Clone(sr.SourceMessageIDs)
	dup.Tags = slices.Clone(sr.Tags)
	dup.Attachments = slices.Clone(sr.Attachments)
	if sr.DueDate != nil {
		d := *sr.DueDate
		dup.DueDate = &d
	}
	return &dup
}
