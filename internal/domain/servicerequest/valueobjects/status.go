package valueobjects

import "fmt"

// Status is the workflow state of a service request. The workflow is
// deliberately permissive: any status may be assigned from any other, so
// there is no transition table here.
type Status string

const (
	StatusNew             Status = "New"
	StatusInProgress      Status = "In Progress"
	StatusWaitingOnClient Status = "Waiting on Client"
	StatusResolved        Status = "Resolved"
)

var validStatuses = map[Status]bool{
	StatusNew:             true,
	StatusInProgress:      true,
	StatusWaitingOnClient: true,
	StatusResolved:        true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsResolved() bool {
	return s == StatusResolved
}

// AllStatuses returns the workflow states in board-column order.
func AllStatuses() []Status {
	return []Status{StatusNew, StatusInProgress, StatusWaitingOnClient, StatusResolved}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid service request status: %s", s)
	}
	return st, nil
}
