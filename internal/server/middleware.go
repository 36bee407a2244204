package server

import (
	"net/http"
	"runtime"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"labforge/internal/logging"
)

// PanicHandler captures panics from endpoint handlers, logs the stack
// trace and answers with the standard error envelope.
func PanicHandler() mux.MiddlewareFunc {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					buf := make([]byte, 1<<16)
					n := runtime.Stack(buf, false)
					logging.Logger().Error("panic in request handler",
						zap.Any("panic", err),
						zap.String("stack", logging.Truncate(string(buf[:n]))))
					writeErrorJSON(w, http.StatusInternalServerError, "Unknown error occurred")
				}
			}()

			h.ServeHTTP(w, r)
		})
	}
}

// RequestIDHandler tags every request with an id, echoed in the
// X-Request-Id response header and attached to log lines.
func RequestIDHandler() mux.MiddlewareFunc {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-Id")
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set("X-Request-Id", id)
			h.ServeHTTP(w, r)
		})
	}
}
