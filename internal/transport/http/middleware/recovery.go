package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// Recover converts panics into a 500 JSON response so clients never see a
// plain-text error page or a stack trace.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic recovered",
					"method", r.Method,
					"path", r.URL.Path,
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				writeJSONError(w, http.StatusInternalServerError, "Internal server error. Please try again later.")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
