package logger

import (
	"fmt"
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Priority records an announcement channel under the key "priority".
func Priority(p fmt.Stringer) slog.Attr {
	return slog.String("priority", p.String())
}

// AnnouncementID records an announcement identifier under the key
// "announcement_id". An empty id returns an empty Attr.
func AnnouncementID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("announcement_id", id)
}
