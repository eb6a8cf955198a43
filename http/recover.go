package http

import (
	"log/slog"
	"net/http"
)

// RecoverMiddleware turns a panic in a handler into a generic 500.
func RecoverMiddleware(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("Panic while handling request", "path", r.URL.Path, "panic", rec)
				http.Error(w, calculationErrorMessage, http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
