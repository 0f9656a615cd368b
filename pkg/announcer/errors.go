package announcer

import "errors"

var (
	// ErrNoScope is returned when announcer operations are requested from a
	// context that carries no store.
	ErrNoScope = errors.New("announcer: operations requested outside an initialized scope")

	// ErrInvalidPriority is returned by ParsePriority for unknown priority names.
	ErrInvalidPriority = errors.New("announcer: invalid priority")
)
