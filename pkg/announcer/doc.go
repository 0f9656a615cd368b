// Package announcer manages the text of hidden ARIA live regions that screen
// readers watch for spoken notifications.
//
// Screen readers often skip an announcement when a live region receives the
// same text twice, or when its content changes too quickly. The Store works
// around this by giving each channel (polite and assertive) two slots. Every
// accepted announcement is written to the slot under the channel's rotation
// cursor, the other slot is emptied and the cursor flips, so each call
// produces an observable mutation even when the text repeats.
//
// # Usage
//
//	store := announcer.New(announcer.WithClearDelay(5 * time.Second))
//	defer store.Close()
//
//	store.AnnouncePolite("Saved", "")
//	store.AnnounceAssertive("Error: invalid email", "")
//	store.Announce("Upload complete",
//		announcer.WithPriority(announcer.Polite),
//		announcer.WithID("upload-42"),
//	)
//
// Announcements carrying an explicit identifier are suppressed when both the
// identifier and the message equal the channel's previous announcement.
// Announcements without an identifier always go through.
//
// # Auto-clear
//
// After every accepted announcement the store (re)arms a single timer. When it
// fires, all four slots are emptied. The default delay is DefaultClearDelay;
// WithClearDelay(0) disables it. Close cancels the timer.
//
// # Scoping
//
// The store is passed explicitly or through a context. WithStore and
// Middleware attach it; ControlsFromContext returns its Controls or
// ErrNoScope when no store was attached. Controls are created once per store,
// so the returned pointer is stable for the store's lifetime.
//
// Live implements the declarative form: the owner calls Update whenever its
// state changes and Remove when it goes away.
//
//	live, err := announcer.NewLive(ctx, announcer.LiveMessage{
//		Message:       "Syncing",
//		ClearOnRemove: true,
//	})
//	if err != nil {
//		return err
//	}
//	defer live.Remove()
//	live.Update(announcer.LiveMessage{Message: "Sync complete", ClearOnRemove: true})
//
// # Rendering
//
// Watch streams Regions snapshots to renderers such as package liveregion.
package announcer
