package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/merolaashraf15-source/MED/internal/app/metrics"
)

type statusResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusResponseWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

// MetricsMiddleware records a request counter and a latency histogram,
// labelled with the chi route pattern rather than the raw URL so that
// /api/orders/{id} stays a single series.
func MetricsMiddleware(serverMetrics *metrics.ServerMetrics) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		metricsFn := func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			writer := statusResponseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}
			h.ServeHTTP(&writer, r)

			path := chi.RouteContext(r.Context()).RoutePattern()
			if path == "" {
				path = r.URL.Path
			}

			serverMetrics.Requests.WithLabelValues(r.Method, path, strconv.Itoa(writer.statusCode)).Inc()
			serverMetrics.Duration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
		}

		return http.HandlerFunc(metricsFn)
	}
}
