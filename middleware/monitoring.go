package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"path", "method", "status"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)
	authRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_rejections_total",
			Help: "Total number of rejected requests to protected endpoints",
		},
		[]string{"reason"},
	)
	rateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Requests rejected by the per-IP rate limiter",
		},
	)
)

// InitPrometheus registers the HTTP metrics plus any extra collectors. Call once from main.
func InitPrometheus(extra ...prometheus.Collector) {
	prometheus.MustRegister(httpRequestsTotal, httpRequestDuration, authRejections, rateLimited)
	prometheus.MustRegister(extra...)
}

// MonitorMiddleware records request counts and latency per route template
// and logs each request at debug level.
func MonitorMiddleware(logger *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Initialize with 200 OK in case WriteHeader isn't called explicitly
			ww := &responseWriter{w, http.StatusOK}

			next.ServeHTTP(ww, r)

			duration := time.Since(start)
			path := routeTemplate(r)

			httpRequestsTotal.WithLabelValues(path, r.Method, strconv.Itoa(ww.statusCode)).Inc()
			httpRequestDuration.WithLabelValues(path, r.Method).Observe(duration.Seconds())

			switch ww.statusCode {
			case http.StatusUnauthorized:
				authRejections.WithLabelValues("401_unauthorized").Inc()
			case http.StatusForbidden:
				authRejections.WithLabelValues("403_forbidden").Inc()
			}

			logger.Debug("HTTP request",
				zap.String("method", r.Method),
				zap.String("path", path),
				zap.Int("status", ww.statusCode),
				zap.Duration("duration", duration),
			)
		})
	}
}

// routeTemplate keeps ids out of metric labels. Unmatched requests share one label.
func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
