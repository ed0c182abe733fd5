// Package metrics exposes the prometheus collectors of the service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

const namespace = "yourfuture"

// Metrics holds the collectors. A nil *Metrics records nothing.
type Metrics struct {
	requestDuration *prometheus.HistogramVec
	moderations     *prometheus.CounterVec
	submissions     *prometheus.CounterVec
	applications    prometheus.Counter
	notifications   prometheus.Counter
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency of HTTP requests by route and status code.",
			Buckets:   DefaultBuckets,
		}, []string{"method", "route", "status_code"}),
		moderations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moderation_decisions_total",
			Help:      "Moderation decisions by entity kind and outcome.",
		}, []string{"kind", "decision"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Entities submitted for moderation by kind.",
		}, []string{"kind"}),
		applications: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vacancy_applications_total",
			Help:      "Applications appended to vacancies.",
		}),
		notifications: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_sent_total",
			Help:      "Notifications sent by admins.",
		}),
	}
	reg.MustRegister(m.requestDuration, m.moderations, m.submissions, m.applications, m.notifications)

	return m
}

// Middleware observes the latency of every request. Unmatched routes are
// grouped under one label to keep cardinality bounded.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if m == nil {
			return
		}
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// Moderated counts an approve or reject on kind.
func (m *Metrics) Moderated(kind, decision string) {
	if m == nil {
		return
	}
	m.moderations.WithLabelValues(kind, decision).Inc()
}

// Submitted counts a new pending entity of kind.
func (m *Metrics) Submitted(kind string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(kind).Inc()
}

func (m *Metrics) Applied() {
	if m == nil {
		return
	}
	m.applications.Inc()
}

func (m *Metrics) NotificationSent() {
	if m == nil {
		return
	}
	m.notifications.Inc()
}
