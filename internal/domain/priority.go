package domain

import (
	"fmt"
	"strings"
)

// Priority is the optional urgency label of a task.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// IsValid reports whether p is one of the three known labels.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ParsePriority maps a label to a Priority, ignoring case. Unknown labels,
// including ones padded with whitespace, return ErrInvalidPriority.
func ParsePriority(label string) (Priority, error) {
	p := Priority(strings.ToUpper(label))
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, label)
	}
	return p, nil
}
