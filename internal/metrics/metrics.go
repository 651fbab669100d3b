// Package metrics holds the prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics groups the collectors registered for one process
type Metrics struct {
	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
	MediaUploads    *prometheus.CounterVec
	LinkReconciles  *prometheus.CounterVec
	StagedSwept     prometheus.Counter
	StagedSweepErrs prometheus.Counter
}

// New creates the collectors and registers them on reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		MediaUploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "media_uploads_total",
			Help: "Files sent to the media host by resource type and outcome.",
		}, []string{"resource_type", "outcome"}),
		LinkReconciles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "brand_link_reconcile_total",
			Help: "Campaign to brand link attempts by outcome.",
		}, []string{"outcome"}),
		StagedSwept: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "media_staged_swept_total",
			Help: "Orphaned staged media objects destroyed by the sweeper.",
		}),
		StagedSweepErrs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "media_staged_sweep_errors_total",
			Help: "Staged media objects the sweeper failed to destroy.",
		}),
	}
	reg.MustRegister(m.HTTPRequests, m.HTTPDuration, m.MediaUploads, m.LinkReconciles, m.StagedSwept, m.StagedSweepErrs)
	return m
}

// Upload counts one media upload
func (m *Metrics) Upload(resourceType string, err error) {
	if m == nil {
		return
	}
	m.MediaUploads.WithLabelValues(resourceType, outcome(err)).Inc()
}

// Reconcile counts one brand link attempt
func (m *Metrics) Reconcile(err error) {
	if m == nil {
		return
	}
	m.LinkReconciles.WithLabelValues(outcome(err)).Inc()
}

// Swept counts one staged object handled by the sweeper
func (m *Metrics) Swept(err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.StagedSweepErrs.Inc()
		return
	}
	m.StagedSwept.Inc()
}

func outcome(err error) string {
	if err != nil {
		return OutcomeFailure
	}
	return OutcomeSuccess
}
