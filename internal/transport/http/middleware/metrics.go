package middleware

import (
	"net/http"
	"time"

	"sipeka/internal/platform/metrics"
)

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		metrics.ObserveRequest(r.Method, recorder.status, time.Since(start))
	})
}
