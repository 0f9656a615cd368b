package liveregion

import (
	"log/slog"
	"testing"
)

// DefaultContainerID is the id of the element wrapping the four regions.
const DefaultContainerID = "announcer"

type config struct {
	disabled    bool
	containerID string
	class       string
	logger      *slog.Logger
}

func newConfig(opts []Option) *config {
	cfg := &config{
		// Markup is left out of test binaries so test output only contains
		// what the test renders on purpose.
		disabled:    testing.Testing(),
		containerID: DefaultContainerID,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Option configures rendering.
type Option func(*config)

// WithDisabled turns rendering off (or back on). Disabled components render
// nothing and Stream answers 204 No Content.
func WithDisabled(disabled bool) Option {
	return func(c *config) {
		c.disabled = disabled
	}
}

// WithContainerID overrides DefaultContainerID. Region ids are prefixed with it.
func WithContainerID(id string) Option {
	return func(c *config) {
		if id != "" {
			c.containerID = id
		}
	}
}

// WithClass sets the class attribute of the container, typically a
// visually-hidden utility class.
func WithClass(class string) Option {
	return func(c *config) {
		c.class = class
	}
}

// WithLogger sets the logger used by Stream. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
