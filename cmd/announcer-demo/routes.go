package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/liveannouncer/pkg/announcer"
	"github.com/dmitrymomot/liveannouncer/pkg/config"
	"github.com/dmitrymomot/liveannouncer/pkg/httpserver"
	"github.com/dmitrymomot/liveannouncer/pkg/liveregion"
	"github.com/dmitrymomot/liveannouncer/pkg/logger"
)

// announceSignals mirrors the datastar signals bound by the demo form.
type announceSignals struct {
	Message  string `json:"message"`
	Priority string `json:"priority"`
	ID       string `json:"id"`
}

func requestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id := middleware.GetReqID(ctx); id != "" {
		return slog.String("request_id", id), true
	}
	return slog.Attr{}, false
}

func newRouter(ctx context.Context, cfg config.Config, store *announcer.Store, log *slog.Logger) http.Handler {
	regionOpts := []liveregion.Option{
		liveregion.WithDisabled(cfg.Announcer.RenderDisabled),
		liveregion.WithContainerID(cfg.Announcer.ContainerID),
		liveregion.WithClass("sr-only"),
		liveregion.WithLogger(log),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(announcer.Middleware(store))

	r.Get("/health", httpserver.HealthCheckHandler())
	r.Get("/", pageHandler(store, regionOpts, log))
	r.Get("/announcer/stream", liveregion.Stream(store, regionOpts...).ServeHTTP)
	r.Post("/announce", announceHandler(log))
	r.Post("/clear", clearHandler())
	r.Post("/jobs", jobHandler(ctx, store, log))

	return r
}

func pageHandler(store *announcer.Store, opts []liveregion.Option, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := page(store.Regions(), opts...).Render(r.Context(), w); err != nil {
			log.ErrorContext(r.Context(), "render page", logger.Error(err))
		}
	}
}

func announceHandler(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		controls, err := announcer.ControlsFromContext(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		var signals announceSignals
		if err := datastar.ReadSignals(r, &signals); err != nil {
			http.Error(w, "invalid signals", http.StatusBadRequest)
			return
		}
		priority, err := announcer.ParsePriority(signals.Priority)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		controls.Announce(signals.Message, announcer.WithPriority(priority), announcer.WithID(signals.ID))
		log.DebugContext(r.Context(), "announce requested",
			logger.Priority(priority),
			logger.AnnouncementID(signals.ID),
		)
		w.WriteHeader(http.StatusNoContent)
	}
}

func clearHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		announcer.MustControls(r.Context()).ClearAnnouncements()
		w.WriteHeader(http.StatusNoContent)
	}
}

// jobHandler starts a simulated background job whose progress is reported
// through a Live message. The regions are cleared when the job finishes. Jobs
// outlive their request and stop when appCtx is cancelled.
func jobHandler(appCtx context.Context, store *announcer.Store, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := announcer.WithStore(appCtx, store)
		live, err := announcer.NewLive(ctx, announcer.LiveMessage{Message: "Job started", ClearOnRemove: true})
		if err != nil {
			log.ErrorContext(r.Context(), "start job", logger.Error(err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		go runJob(ctx, live, 4, 500*time.Millisecond)
		w.WriteHeader(http.StatusAccepted)
	}
}

func runJob(ctx context.Context, live *announcer.Live, steps int, interval time.Duration) {
	defer live.Remove()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// The extra tick keeps the final message readable before the regions clear.
	for step := 1; step <= steps+1; step++ {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		if step > steps {
			return
		}

		msg := "Job " + progress(step, steps) + " done"
		if step == steps {
			msg = "Job complete"
		}
		live.Update(announcer.LiveMessage{Message: msg, ClearOnRemove: true})
	}
}

func progress(step, steps int) string {
	return fmt.Sprintf("%d%%", step*100/steps)
}
