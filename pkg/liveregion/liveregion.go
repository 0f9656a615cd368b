package liveregion

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/liveannouncer/pkg/announcer"
)

// RegionID returns the element id of one slot.
func RegionID(containerID string, p announcer.Priority, index int) string {
	return fmt.Sprintf("%s-%s-%d", containerID, p, index)
}

// Regions renders the container with all four live regions.
func Regions(r announcer.Regions, opts ...Option) templ.Component {
	cfg := newConfig(opts)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if cfg.disabled {
			return nil
		}

		var b strings.Builder
		b.WriteString(`<div id="`)
		b.WriteString(templ.EscapeString(cfg.containerID))
		b.WriteString(`"`)
		if cfg.class != "" {
			b.WriteString(` class="`)
			b.WriteString(templ.EscapeString(cfg.class))
			b.WriteString(`"`)
		}
		b.WriteString(`>`)
		for _, p := range announcer.Priorities {
			for i := range 2 {
				writeRegion(&b, cfg.containerID, p, i, r.Slot(p, i))
			}
		}
		b.WriteString(`</div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Region renders a single slot. It is useful for targeted patches.
func Region(p announcer.Priority, index int, text string, opts ...Option) templ.Component {
	cfg := newConfig(opts)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if cfg.disabled {
			return nil
		}
		var b strings.Builder
		writeRegion(&b, cfg.containerID, p, index, text)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeRegion(b *strings.Builder, containerID string, p announcer.Priority, index int, text string) {
	fmt.Fprintf(b, `<div id="%s" role="%s" aria-live="%s" aria-atomic="true">%s</div>`,
		templ.EscapeString(RegionID(containerID, p, index)),
		p.Role(),
		p.String(),
		templ.EscapeString(text),
	)
}
