package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/ad-control-api/internal/telemetry"
)

// Metrics registra contagem e duração por rota. O rótulo path é o padrão da rota, não a URL.
func Metrics(pattern string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			lrw := newLoggingResponseWriter(w)

			next.ServeHTTP(lrw, r)

			telemetry.HTTPRequestsTotal.WithLabelValues(r.Method, pattern, strconv.Itoa(lrw.statusCode)).Inc()
			telemetry.HTTPRequestDuration.WithLabelValues(r.Method, pattern).Observe(time.Since(started).Seconds())
		})
	}
}
