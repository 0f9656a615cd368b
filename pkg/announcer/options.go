package announcer

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// DefaultClearDelay is how long announcements stay in the regions before the
// store empties them.
const DefaultClearDelay = 7 * time.Second

type config struct {
	clearDelay time.Duration
	clock      clockwork.Clock
	newID      func() string
	logger     *slog.Logger
}

func defaultConfig() *config {
	return &config{
		clearDelay: DefaultClearDelay,
		clock:      clockwork.NewRealClock(),
		newID:      newAnnouncementID,
		logger:     slog.New(slog.DiscardHandler),
	}
}

// Option configures a Store.
type Option func(*config)

// WithClearDelay sets the auto-clear delay. Zero or a negative value disables
// auto-clear.
func WithClearDelay(d time.Duration) Option {
	return func(c *config) {
		c.clearDelay = max(d, 0)
	}
}

// WithClock replaces the clock used to schedule auto-clear, typically with a
// clockwork fake clock in tests. Nil is ignored.
func WithClock(clock clockwork.Clock) Option {
	return func(c *config) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithIDGenerator replaces the generator used for announcements submitted
// without an identifier. The generator must never repeat a value.
func WithIDGenerator(fn func() string) Option {
	return func(c *config) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// MessageOption configures a single announcement.
type MessageOption func(*messageOptions)

type messageOptions struct {
	priority Priority
	id       string
}

// WithPriority selects the channel. Unknown values fall back to Polite.
func WithPriority(p Priority) MessageOption {
	return func(m *messageOptions) {
		if p.valid() {
			m.priority = p
		}
	}
}

// WithID tags the announcement with an explicit identifier. Repeating the same
// message with the same identifier is suppressed. An empty id is the same as
// omitting it.
func WithID(id string) MessageOption {
	return func(m *messageOptions) {
		m.id = id
	}
}

// newAnnouncementID returns a time-ordered identifier with a random suffix.
func newAnnouncementID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
