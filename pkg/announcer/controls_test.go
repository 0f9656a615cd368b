package announcer_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/liveannouncer/pkg/announcer"
)

func TestControls(t *testing.T) {
	t.Parallel()

	t.Run("pointer is stable", func(t *testing.T) {
		t.Parallel()
		s, _ := newTestStore(t)

		first := s.Controls()
		s.AnnouncePolite("Saved", "")
		s.Clear()
		assert.Same(t, first, s.Controls())

		ctx := announcer.WithStore(context.Background(), s)
		fromCtx, err := announcer.ControlsFromContext(ctx)
		require.NoError(t, err)
		assert.Same(t, first, fromCtx)
	})

	t.Run("operations reach the store", func(t *testing.T) {
		t.Parallel()
		s, _ := newTestStore(t)
		c := s.Controls()

		c.AnnouncePolite("Saved", "")
		c.AnnounceAssertive("Error", "")
		c.Announce("Again", announcer.WithPriority(announcer.Assertive), announcer.WithID("a"))

		r := s.Regions()
		assert.Equal(t, "Saved", r.Slot(announcer.Polite, 0))
		assert.Equal(t, "Again", r.Slot(announcer.Assertive, 1))

		c.ClearAnnouncements()
		assert.True(t, s.Regions().IsEmpty())
	})
}

func TestControlsFromContext(t *testing.T) {
	t.Parallel()

	t.Run("missing scope", func(t *testing.T) {
		t.Parallel()

		c, err := announcer.ControlsFromContext(context.Background())
		require.ErrorIs(t, err, announcer.ErrNoScope)
		assert.Nil(t, c)
	})

	t.Run("nil store is treated as missing", func(t *testing.T) {
		t.Parallel()

		ctx := announcer.WithStore(context.Background(), nil)
		_, err := announcer.ControlsFromContext(ctx)
		require.ErrorIs(t, err, announcer.ErrNoScope)
	})

	t.Run("must panics without scope", func(t *testing.T) {
		t.Parallel()

		assert.PanicsWithError(t, announcer.ErrNoScope.Error(), func() {
			announcer.MustControls(context.Background())
		})
	})
}

func TestNewScope(t *testing.T) {
	t.Parallel()

	t.Run("cancel closes the store", func(t *testing.T) {
		t.Parallel()
		clock := clockwork.NewFakeClock()

		ctx, s, cancel := announcer.NewScope(context.Background(),
			announcer.WithClock(clock),
			announcer.WithClearDelay(time.Second),
		)
		found, ok := announcer.FromContext(ctx)
		require.True(t, ok)
		assert.Same(t, s, found)

		announcer.MustControls(ctx).AnnouncePolite("Saved", "")
		requirePending(t, clock, 1)

		cancel()
		requirePending(t, clock, 0)
		cancel()
	})

	t.Run("parent cancellation closes the store", func(t *testing.T) {
		t.Parallel()
		clock := clockwork.NewFakeClock()

		parent, cancelParent := context.WithCancel(context.Background())
		_, s, cancel := announcer.NewScope(parent, announcer.WithClock(clock))
		defer cancel()

		s.AnnouncePolite("Saved", "")
		cancelParent()

		requirePending(t, clock, 0)
	})
}

func TestMiddleware(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)

	var got *announcer.Controls
	h := announcer.Middleware(s)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = announcer.MustControls(r.Context())
		got.AnnouncePolite("From handler", "")
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Same(t, s.Controls(), got)
	assert.Equal(t, "From handler", s.Regions().Slot(announcer.Polite, 0))
}
