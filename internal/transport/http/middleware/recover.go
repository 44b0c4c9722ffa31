package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"sipeka/internal/platform/observability"
	"sipeka/internal/transport/http/api"
)

func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic recovered", "panic", rec, "stack", string(debug.Stack()))
				if err, ok := rec.(error); ok {
					observability.CaptureErr(err)
				}
				api.Fail(w, http.StatusInternalServerError, "internal_error", "internal error", GetRequestID(r.Context()))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
