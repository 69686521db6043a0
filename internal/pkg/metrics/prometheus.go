package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ecotourisme",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ecotourisme",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "ecotourisme",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		},
	)

	// Recommendation engine metrics
	recommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ecotourisme",
			Subsystem: "engine",
			Name:      "recommendations_total",
			Help:      "Total number of generated recommendations",
		},
		[]string{"profile"},
	)

	tripPackagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ecotourisme",
			Subsystem: "engine",
			Name:      "trip_packages_total",
			Help:      "Total number of generated trip packages",
		},
		[]string{"outcome"},
	)

	// Knowledge store metrics
	storeQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ecotourisme",
			Subsystem: "store",
			Name:      "queries_total",
			Help:      "Total number of SPARQL queries by result",
		},
		[]string{"kind", "result"},
	)

	storeAvailable = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "ecotourisme",
			Subsystem: "store",
			Name:      "available",
			Help:      "Whether the knowledge store answered the last health probe (1/0)",
		},
	)
)

// RecordRecommendation increments the recommendation counter for a profile
func RecordRecommendation(profile string) {
	recommendationsTotal.WithLabelValues(profile).Inc()
}

// RecordTripPackage increments the trip package counter
func RecordTripPackage(outcome string) {
	tripPackagesTotal.WithLabelValues(outcome).Inc()
}

// RecordStoreQuery increments the store query counter
func RecordStoreQuery(kind, result string) {
	storeQueriesTotal.WithLabelValues(kind, result).Inc()
}

// SetStoreAvailable records the result of the latest store health probe
func SetStoreAvailable(up bool) {
	if up {
		storeAvailable.Set(1)
	} else {
		storeAvailable.Set(0)
	}
}

// Handler returns the prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware returns an HTTP middleware that records request metrics
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)

		// Use the chi route pattern to keep label cardinality bounded.
		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}

		status := strconv.Itoa(ww.status)
		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
