package announcer

import (
	"context"
	"sync"
)

// LiveMessage is the declarative form of an announcement. The owner re-submits
// it whenever its state changes.
type LiveMessage struct {
	Message  string
	Priority Priority
	ID       string

	// ClearOnRemove clears every region when the owner is removed.
	ClearOnRemove bool
}

// Live announces a LiveMessage when it changes between updates.
//
// It is the lifecycle side of the announcer: NewLive corresponds to the owner
// being created, Update to each state change and Remove to its destruction.
// Live is safe for concurrent use.
type Live struct {
	controls *Controls

	mu            sync.Mutex
	prevMessage   string
	prevID        string
	clearOnRemove bool
	removed       bool
}

// NewLive binds a Live to the store in ctx and evaluates the initial message.
// It returns ErrNoScope when ctx carries no store.
func NewLive(ctx context.Context, initial LiveMessage) (*Live, error) {
	controls, err := ControlsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	l := &Live{controls: controls}
	l.Update(initial)
	return l, nil
}

// Update announces m when its message is non-empty and either the message or
// the identifier differs from the previous update.
// Concurrent updates are serialized, so the last committed message is also the
// last one announced.
func (l *Live) Update(m LiveMessage) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.removed {
		return
	}
	changed := m.Message != l.prevMessage || m.ID != l.prevID
	l.prevMessage = m.Message
	l.prevID = m.ID
	l.clearOnRemove = m.ClearOnRemove

	if m.Message != "" && changed {
		l.controls.Announce(m.Message, WithPriority(m.Priority), WithID(m.ID))
	}
}

// Remove detaches the Live. When the last update asked for it, all regions
// are cleared. Only the first call has an effect.
func (l *Live) Remove() {
	l.mu.Lock()
	if l.removed {
		l.mu.Unlock()
		return
	}
	l.removed = true
	clearOnRemove := l.clearOnRemove
	l.mu.Unlock()

	if clearOnRemove {
		l.controls.ClearAnnouncements()
	}
}
