package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	contentUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_updates_total",
			Help: "Total number of site content updates",
		},
		[]string{"section"},
	)

	prospectsEnriched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "prospects_enriched_total",
			Help: "Total number of prospects enriched",
		},
	)

	probeAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enrichment_probes_total",
			Help: "Total number of enrichment HEAD probes",
		},
		[]string{"outcome"},
	)

	campaignMails = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "campaign_mails_sent_total",
			Help: "Total number of campaign outreach mails sent",
		},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordContentUpdate(section string) {
	if section == "" {
		section = "_root"
	}
	contentUpdates.WithLabelValues(section).Inc()
}

func RecordProspectsEnriched(count int) {
	prospectsEnriched.Add(float64(count))
}

func RecordProbe(outcome string) {
	probeAttempts.WithLabelValues(outcome).Inc()
}

func RecordCampaignMails(count int) {
	campaignMails.Add(float64(count))
}
