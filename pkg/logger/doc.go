// Package logger builds *slog.Logger instances with functional options.
//
// New picks slog.NewJSONHandler or slog.NewTextHandler from the configured
// Format, attaches static attributes and, when ContextExtractor callbacks are
// registered, wraps the handler so each record receives attributes pulled
// from its context (a request id, for example).
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
//	    logger.WithLevel(cfg.LogLevel),
//	    logger.WithContextExtractors(requestIDExtractor),
//	)
//	logger.SetAsDefault(log)
//
// Helpers in attr.go keep attribute keys consistent across the codebase.
package logger
