package announcer_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/liveannouncer/pkg/announcer"
)

// recordingClock keeps every scheduled callback so tests can replay one that
// was superseded.
type recordingClock struct {
	*clockwork.FakeClock

	mu        sync.Mutex
	callbacks []func()
}

func (c *recordingClock) AfterFunc(d time.Duration, f func()) clockwork.Timer {
	c.mu.Lock()
	c.callbacks = append(c.callbacks, f)
	c.mu.Unlock()
	return c.FakeClock.AfterFunc(d, f)
}

func (c *recordingClock) callback(i int) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.callbacks[i]
}

// requirePending fails unless exactly n timers are waiting on the clock.
func requirePending(t *testing.T, clock *clockwork.FakeClock, n int) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(ctx, n), "expected %d pending timers", n)
}

// requireCleared waits for the auto-clear callback, which the fake clock may
// run on its own goroutine.
func requireCleared(t *testing.T, s *announcer.Store) {
	t.Helper()
	require.Eventually(t, func() bool { return s.Regions().IsEmpty() }, time.Second, 5*time.Millisecond)
}
