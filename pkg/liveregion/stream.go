package liveregion

import (
	"log/slog"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/liveannouncer/pkg/announcer"
)

// Stream returns a datastar SSE endpoint that keeps the client's regions in
// sync with the store. The current regions are sent right away; afterwards the
// container is morphed on every change until the client disconnects or the
// store is closed.
func Stream(store *announcer.Store, opts ...Option) http.Handler {
	cfg := newConfig(opts)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cfg.disabled {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		ctx := r.Context()
		watcher := store.Watch(ctx)
		defer watcher.Close()

		sse := datastar.NewSSE(w, r)
		for {
			select {
			case <-ctx.Done():
				return
			case regions, ok := <-watcher.C():
				if !ok {
					return
				}
				if err := sse.PatchElementTempl(Regions(regions, opts...)); err != nil {
					cfg.logger.DebugContext(ctx, "liveregion: patch failed", slog.Any("error", err))
					return
				}
			}
		}
	})
}
