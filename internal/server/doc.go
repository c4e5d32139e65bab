// Package server provides the HTTP server of dexkeeper.
//
// The server uses the Gin web framework. In production mode Gin runs in
// release mode; otherwise it runs in debug mode. TLS is expected to be
// terminated in front of the service.
//
// # Routes
//
//	/health     → {"status": "ok", "timestamp": ...}
//	/metrics    → prometheus exposition of the given gatherer
//	/api/v1/*   → handlers registered through the callback
//	anything    → 404 {"error": "route not found"}
//
// # Middleware
//
// Logger (middlewares.Logger) logs request start and end with the "http"
// zap logger. Recovery (ginzap.RecoveryWithZap) turns handler panics into
// 500 responses and logs the stack.
//
// Auth (middlewares.Auth) is not installed globally. When authentication is
// enabled the caller wraps it with middlewares.BearerScoped and passes it to
// the handler registration. The generated wrapper marks the operations the
// OpenAPI document declares bearer-secured, so only the mutating routes
// require an HS256 bearer token.
//
// # Lifecycle
//
//	srv, err := server.NewServer(cfg, registry, func(router *gin.RouterGroup) {
//	    h.Register(router, guards...)
//	})
//
//	go func() {
//	    if err := srv.Start(ctx); !errors.Is(err, http.ErrServerClosed) {
//	        zap.S().Errorw("server error", "error", err)
//	    }
//	}()
//
//	<-ctx.Done()
//	srv.Stop(shutdownCtx)
//
// Stop performs a graceful shutdown, waiting for in-flight requests.
package server
