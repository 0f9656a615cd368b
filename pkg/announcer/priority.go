package announcer

import (
	"errors"
	"fmt"
	"strings"
)

// Priority selects the live region channel an announcement is written to.
type Priority uint8

const (
	// Polite announcements wait until the screen reader is idle (role="status").
	Polite Priority = iota
	// Assertive announcements interrupt the screen reader (role="alert").
	Assertive
)

// Priorities lists every channel in render order.
var Priorities = [...]Priority{Polite, Assertive}

// String returns the ARIA politeness value of the channel.
func (p Priority) String() string {
	switch p {
	case Assertive:
		return "assertive"
	default:
		return "polite"
	}
}

// Role returns the ARIA role used by regions of this channel.
func (p Priority) Role() string {
	if p == Assertive {
		return "alert"
	}
	return "status"
}

func (p Priority) valid() bool {
	return p == Polite || p == Assertive
}

// ParsePriority converts a user supplied name into a Priority.
// An empty name resolves to Polite.
func ParsePriority(name string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "polite", "normal":
		return Polite, nil
	case "assertive", "urgent":
		return Assertive, nil
	default:
		return Polite, errors.Join(ErrInvalidPriority, fmt.Errorf("unknown priority %q", name))
	}
}
