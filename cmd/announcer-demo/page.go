package main

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/liveannouncer/pkg/announcer"
	"github.com/dmitrymomot/liveannouncer/pkg/liveregion"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0-RC.5/bundles/datastar.js"

const pageHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Live announcer</title>
<script type="module" src="` + datastarScript + `"></script>
<style>.sr-only{position:absolute;width:1px;height:1px;overflow:hidden;clip:rect(0 0 0 0);white-space:nowrap}</style>
</head>
<body data-signals="{message: '', priority: 'polite', id: ''}">
<main>
<h1>Live announcer</h1>
<div data-on-load="@get('/announcer/stream')"></div>
<label>Message <input data-bind-message></label>
<label>Priority
<select data-bind-priority>
<option value="polite">Polite</option>
<option value="assertive">Assertive</option>
</select>
</label>
<label>Identifier <input data-bind-id></label>
<button data-on-click="@post('/announce')">Announce</button>
<button data-on-click="@post('/clear')">Clear</button>
<button data-on-click="@post('/jobs')">Start job</button>
</main>
`

const pageFoot = `
</body>
</html>
`

// page renders the demo document with the live regions inlined, so the first
// paint already matches the store.
func page(regions announcer.Regions, opts ...liveregion.Option) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, pageHead); err != nil {
			return err
		}
		if err := liveregion.Regions(regions, opts...).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, pageFoot)
		return err
	})
}
