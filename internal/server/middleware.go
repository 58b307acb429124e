package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/rafbgarcia/mvcpath"
)

// Middleware is a standard Go HTTP middleware.
// It is a type alias so any func(http.Handler) http.Handler is compatible
// without casting.
type Middleware = func(http.Handler) http.Handler

// LogRequests logs one line per request with its status and duration.
// Health checks are logged at debug level.
func LogRequests(log *mvcpath.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, req)

			args := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", ww.Status(),
				"took", time.Since(start),
			}
			if req.URL.Path == "/healthz" {
				log.Debug("request", args...)
				return
			}
			log.Info("request", args...)
		})
	}
}
