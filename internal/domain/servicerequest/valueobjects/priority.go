package valueobjects

import "fmt"

// Priority is a 1-5 scale, 5 being highest.
type Priority int

const (
	PriorityMin Priority = 1
	PriorityMax Priority = 5
)

func (p Priority) IsValid() bool {
	return p >= PriorityMin && p <= PriorityMax
}

func (p Priority) Int() int {
	return int(p)
}

// Label returns the human-readable name shown next to the numeric scale.
func (p Priority) Label() string {
	switch p {
	case 1:
		return "Minimal"
	case 2:
		return "Low"
	case 3:
		return "Medium"
	case 4:
		return "High"
	case 5:
		return "Critical"
	default:
		return "Unknown"
	}
}

// IsUrgent reports whether the priority is high enough to warrant urgency
// tagging by the generator and board highlighting in consumers.
func (p Priority) IsUrgent() bool {
	return p >= 4
}

func NewPriority(n int) (Priority, error) {
	p := Priority(n)
	if !p.IsValid() {
		return 0, fmt.Errorf("invalid priority %d: must be between %d and %d", n, PriorityMin, PriorityMax)
	}
	return p, nil
}
