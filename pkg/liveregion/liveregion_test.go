package liveregion_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/liveannouncer/pkg/announcer"
	"github.com/dmitrymomot/liveannouncer/pkg/liveregion"
)

func TestRegions(t *testing.T) {
	t.Parallel()

	regions := announcer.Regions{
		Polite:    [2]string{"", "Saved"},
		Assertive: [2]string{"<b>Error</b>", ""},
	}

	var b strings.Builder
	err := liveregion.Regions(regions, liveregion.WithDisabled(false), liveregion.WithClass("sr-only")).
		Render(context.Background(), &b)
	require.NoError(t, err)
	html := b.String()

	assert.True(t, strings.HasPrefix(html, `<div id="announcer" class="sr-only">`))
	assert.Contains(t, html, `<div id="announcer-polite-0" role="status" aria-live="polite" aria-atomic="true"></div>`)
	assert.Contains(t, html, `<div id="announcer-polite-1" role="status" aria-live="polite" aria-atomic="true">Saved</div>`)
	assert.Contains(t, html, `<div id="announcer-assertive-0" role="alert" aria-live="assertive" aria-atomic="true">&lt;b&gt;Error&lt;/b&gt;</div>`)
	assert.Contains(t, html, `<div id="announcer-assertive-1" role="alert" aria-live="assertive" aria-atomic="true"></div>`)
	assert.Equal(t, 2, strings.Count(html, `role="status"`))
	assert.Equal(t, 2, strings.Count(html, `role="alert"`))
}

func TestRegions_ContainerID(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	err := liveregion.Regions(announcer.Regions{}, liveregion.WithDisabled(false), liveregion.WithContainerID("sr")).
		Render(context.Background(), &b)
	require.NoError(t, err)

	assert.Contains(t, b.String(), `<div id="sr">`)
	assert.Contains(t, b.String(), `id="sr-assertive-1"`)
	assert.Equal(t, "sr-polite-0", liveregion.RegionID("sr", announcer.Polite, 0))
}

func TestRegions_DisabledInTests(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	err := liveregion.Regions(announcer.Regions{Polite: [2]string{"Saved", ""}}).Render(context.Background(), &b)
	require.NoError(t, err)
	assert.Empty(t, b.String())

	err = liveregion.Region(announcer.Polite, 0, "Saved").Render(context.Background(), &b)
	require.NoError(t, err)
	assert.Empty(t, b.String())
}

func TestRegion(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	err := liveregion.Region(announcer.Assertive, 1, "Oops", liveregion.WithDisabled(false)).
		Render(context.Background(), &b)
	require.NoError(t, err)
	assert.Equal(t, `<div id="announcer-assertive-1" role="alert" aria-live="assertive" aria-atomic="true">Oops</div>`, b.String())
}
