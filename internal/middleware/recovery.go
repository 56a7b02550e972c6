package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// RecoveryMiddleware turns a handler panic into a 500 response.
// Browsers get a plain text body, API clients a JSON error.
func RecoveryMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error("panic recovered",
					zap.String("request_id", GetRequestID(r.Context())),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Any("panic", rec),
					zap.Stack("stack"),
				)

				if strings.Contains(r.Header.Get("Accept"), "text/html") {
					http.Error(w, "Something went wrong", http.StatusInternalServerError)
					return
				}
				writeJSONError(w, http.StatusInternalServerError, "internal server error")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
