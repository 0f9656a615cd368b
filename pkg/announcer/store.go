package announcer

import (
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Regions is a snapshot of the four live region slots.
type Regions struct {
	Polite    [2]string
	Assertive [2]string
}

// Slot returns the text of slot index (0 or 1) of the given channel.
func (r Regions) Slot(p Priority, index int) string {
	if index < 0 || index > 1 {
		return ""
	}
	if p == Assertive {
		return r.Assertive[index]
	}
	return r.Polite[index]
}

// Active returns the index of the non-empty slot of the channel, or -1 when
// both slots are empty.
func (r Regions) Active(p Priority) int {
	for i := range 2 {
		if r.Slot(p, i) != "" {
			return i
		}
	}
	return -1
}

// IsEmpty reports whether every slot is empty.
func (r Regions) IsEmpty() bool {
	return r == Regions{}
}

// channel is the per-priority rotation state.
type channel struct {
	slots       [2]string
	cursor      int
	lastMessage string
	lastID      string
}

// write stores message in the slot under the cursor, empties the other slot
// and flips the cursor.
func (c *channel) write(message, id string) {
	c.slots[c.cursor] = message
	c.slots[1-c.cursor] = ""
	c.cursor = 1 - c.cursor
	c.lastMessage = message
	c.lastID = id
}

func (c *channel) reset() {
	c.slots = [2]string{}
	c.lastMessage = ""
	c.lastID = ""
}

// Store holds the text of the polite and assertive live regions.
//
// Each channel alternates between two slots and empties the unused one on
// every accepted write, so the screen reader observes a mutation even when
// the same text is announced twice in a row.
//
// All methods are safe for concurrent use. The auto-clear timer runs on its
// own goroutine and is serialized with the other entry points.
type Store struct {
	mu       sync.Mutex
	channels [2]channel
	delay    time.Duration
	clock    clockwork.Clock
	newID    func() string
	logger   *slog.Logger

	timer      clockwork.Timer
	generation uint64
	closed     bool

	watchers map[*Watcher]struct{}
	controls *Controls
}

// New creates a Store. Call Close when the owning scope ends.
func New(opts ...Option) *Store {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	s := &Store{
		delay:    cfg.clearDelay,
		clock:    cfg.clock,
		newID:    cfg.newID,
		logger:   cfg.logger,
		watchers: make(map[*Watcher]struct{}),
	}
	s.controls = newControls(s)
	return s
}

// Announce writes message to the live regions of the selected channel
// (Polite by default).
//
// The call is a no-op when an explicit identifier is given and both the
// identifier and the message equal the channel's previous announcement.
// Announcements without an identifier are never suppressed.
func (s *Store) Announce(message string, opts ...MessageOption) {
	m := messageOptions{priority: Polite}
	for _, opt := range opts {
		opt(&m)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		s.logger.Debug("announcer: announce after close ignored", slog.String("priority", m.priority.String()))
		return
	}

	ch := &s.channels[m.priority]
	id := m.id
	if id == "" {
		id = s.newID()
	} else if id == ch.lastID && message == ch.lastMessage {
		s.logger.Debug("announcer: duplicate suppressed",
			slog.String("priority", m.priority.String()),
			slog.String("id", id),
		)
		return
	}

	slot := ch.cursor
	ch.write(message, id)
	s.armLocked()
	s.publishLocked()

	s.logger.Debug("announcer: announced",
		slog.String("priority", m.priority.String()),
		slog.String("id", id),
		slog.Int("slot", slot),
	)
}

// AnnouncePolite announces message on the polite channel. Pass an empty id to
// announce without an identifier.
func (s *Store) AnnouncePolite(message, id string) {
	s.Announce(message, WithPriority(Polite), WithID(id))
}

// AnnounceAssertive announces message on the assertive channel. Pass an empty
// id to announce without an identifier.
func (s *Store) AnnounceAssertive(message, id string) {
	s.Announce(message, WithPriority(Assertive), WithID(id))
}

// Clear empties all four slots and forgets the last announcement of both
// channels. A pending auto-clear timer is left alone; firing it afterwards
// performs the same reset.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.clearLocked()
}

// Regions returns the current slot contents.
func (s *Store) Regions() Regions {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// ClearDelay returns the configured auto-clear delay.
func (s *Store) ClearDelay() time.Duration {
	return s.delay
}

// Controls returns the operations bound to this store. The same pointer is
// returned for the whole lifetime of the store.
func (s *Store) Controls() *Controls {
	return s.controls
}

// Close cancels the pending auto-clear timer and closes every watcher.
// Operations on a closed store are ignored. Close is idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.generation++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	watchers := make([]*Watcher, 0, len(s.watchers))
	for w := range s.watchers {
		watchers = append(watchers, w)
	}
	clear(s.watchers)
	s.mu.Unlock()

	for _, w := range watchers {
		w.shutdown()
	}
	return nil
}

// armLocked replaces any pending auto-clear timer with a fresh one.
func (s *Store) armLocked() {
	// A callback that already fired and waits on the lock sees a newer
	// generation and does nothing.
	s.generation++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.delay <= 0 {
		return
	}
	gen := s.generation
	s.timer = s.clock.AfterFunc(s.delay, func() { s.expire(gen) })
}

func (s *Store) expire(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || gen != s.generation {
		return
	}
	s.timer = nil
	s.clearLocked()
	s.logger.Debug("announcer: auto-cleared", slog.Duration("delay", s.delay))
}

func (s *Store) clearLocked() {
	for i := range s.channels {
		s.channels[i].reset()
	}
	s.publishLocked()
}

func (s *Store) snapshotLocked() Regions {
	return Regions{
		Polite:    s.channels[Polite].slots,
		Assertive: s.channels[Assertive].slots,
	}
}

func (s *Store) publishLocked() {
	if len(s.watchers) == 0 {
		return
	}
	snap := s.snapshotLocked()
	for w := range s.watchers {
		w.send(snap)
	}
}
