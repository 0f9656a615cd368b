// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run blocks until the context is cancelled or the process receives SIGINT or
// SIGTERM. Shutdown hooks run before connections are drained, which lets
// long-lived event streams end instead of holding shutdown until the timeout:
//
//	srv := httpserver.New(
//	    httpserver.WithAddr(cfg.HTTPAddr),
//	    httpserver.WithLogger(log),
//	    httpserver.WithShutdownHook(func(context.Context) error { return store.Close() }),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
package httpserver
