package announcer

import (
	"context"
	"net/http"
)

// Controls exposes the announcer operations as plain functions, suitable for
// handing to code that must not depend on *Store.
//
// A store creates its Controls once; every lookup returns the same pointer, so
// callers may cache it or compare it by identity.
type Controls struct {
	Announce           func(message string, opts ...MessageOption)
	AnnouncePolite     func(message, id string)
	AnnounceAssertive  func(message, id string)
	ClearAnnouncements func()
}

func newControls(s *Store) *Controls {
	return &Controls{
		Announce:           s.Announce,
		AnnouncePolite:     s.AnnouncePolite,
		AnnounceAssertive:  s.AnnounceAssertive,
		ClearAnnouncements: s.Clear,
	}
}

type contextKey struct{}

// WithStore returns a copy of ctx that carries the store.
func WithStore(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the store carried by ctx.
func FromContext(ctx context.Context) (*Store, bool) {
	s, ok := ctx.Value(contextKey{}).(*Store)
	return s, ok && s != nil
}

// ControlsFromContext returns the controls of the store carried by ctx, or
// ErrNoScope when there is none.
func ControlsFromContext(ctx context.Context) (*Controls, error) {
	s, ok := FromContext(ctx)
	if !ok {
		return nil, ErrNoScope
	}
	return s.Controls(), nil
}

// MustControls is like ControlsFromContext but panics without a store.
// A missing store is a wiring mistake, not a runtime condition.
func MustControls(ctx context.Context) *Controls {
	c, err := ControlsFromContext(ctx)
	if err != nil {
		panic(err)
	}
	return c
}

// NewScope creates a store bound to a context derived from parent. The store
// is closed when cancel is called or when parent is done, whichever comes
// first.
func NewScope(parent context.Context, opts ...Option) (context.Context, *Store, context.CancelFunc) {
	s := New(opts...)
	ctx, cancel := context.WithCancel(WithStore(parent, s))
	stop := context.AfterFunc(ctx, func() { _ = s.Close() })

	return ctx, s, func() {
		stop()
		cancel()
		_ = s.Close()
	}
}

// Middleware injects the store into every request context.
func Middleware(s *Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithStore(r.Context(), s)))
		})
	}
}
