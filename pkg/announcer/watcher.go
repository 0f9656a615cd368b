package announcer

import (
	"context"
	"sync"
)

// Watcher receives region snapshots from a Store.
//
// Only the most recent snapshot is kept: a slow reader skips intermediate
// states instead of blocking the store.
type Watcher struct {
	ch     chan Regions
	done   chan struct{}
	mu     sync.Mutex
	closed bool
	once   sync.Once
	store  *Store
}

// Watch subscribes to region changes. The returned channel initially holds the
// current snapshot. The watcher is closed when ctx is cancelled, when Close is
// called or when the store is closed.
func (s *Store) Watch(ctx context.Context) *Watcher {
	w := &Watcher{
		ch:    make(chan Regions, 1),
		done:  make(chan struct{}),
		store: s,
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		w.shutdown()
		return w
	}
	s.watchers[w] = struct{}{}
	w.send(s.snapshotLocked())
	s.mu.Unlock()

	if ctx.Done() != nil {
		go func() {
			select {
			case <-ctx.Done():
				_ = w.Close()
			case <-w.done:
			}
		}()
	}

	return w
}

// C returns the snapshot channel. It is closed when the watcher closes.
func (w *Watcher) C() <-chan Regions {
	return w.ch
}

// Close unsubscribes the watcher. It is safe to call multiple times.
func (w *Watcher) Close() error {
	w.store.mu.Lock()
	delete(w.store.watchers, w)
	w.store.mu.Unlock()

	w.shutdown()
	return nil
}

func (w *Watcher) shutdown() {
	w.once.Do(func() {
		w.mu.Lock()
		w.closed = true
		close(w.ch)
		w.mu.Unlock()
		close(w.done)
	})
}

// send replaces any unread snapshot with r. Callers are serialized by the
// store lock, so the buffered send never blocks.
func (w *Watcher) send(r Regions) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	select {
	case <-w.ch:
	default:
	}
	w.ch <- r
}
