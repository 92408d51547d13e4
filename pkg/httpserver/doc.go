// Package httpserver runs the validation service's http.Server with graceful
// shutdown on context cancellation or SIGINT/SIGTERM.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler serves liveness ("ALIVE") and readiness ("READY" or
// "NOT_READY") probes.
package httpserver
