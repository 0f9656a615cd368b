// Package liveregion renders announcer regions as HTML and keeps them current
// over datastar server-sent events.
//
// Place Regions once in the page layout, then let the browser subscribe to
// Stream:
//
//	<div data-on-load="@get('/announcer/stream')"></div>
//	@liveregion.Regions(store.Regions(), liveregion.WithClass("sr-only"))
//
// Two regions carry role="status" and aria-live="polite", the other two carry
// role="alert" and aria-live="assertive". All of them are aria-atomic.
//
// Rendering is disabled inside test binaries (testing.Testing) so incidental
// markup stays out of test output. WithDisabled overrides the default.
package liveregion
