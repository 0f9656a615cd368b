package httpserver

import "errors"

var (
	// ErrStart indicates that the server failed to start or stopped unexpectedly.
	ErrStart = errors.New("failed to start HTTP server")
	// ErrShutdown indicates that a shutdown hook or connection draining failed.
	ErrShutdown = errors.New("failed to shutdown HTTP server gracefully")
)
