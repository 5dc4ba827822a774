package metrics

import "github.com/prometheus/client_golang/prometheus"

// FormMetrics exposes counters/histograms for the form submission flows.
type FormMetrics struct {
	submissionsTotal *prometheus.CounterVec
	submitLatency    *prometheus.HistogramVec
}

func NewFormMetrics(reg prometheus.Registerer) *FormMetrics {
	m := &FormMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "monteverde",
			Subsystem: "forms",
			Name:      "submissions_total",
			Help:      "Total form submissions by form and outcome",
		}, []string{"form", "outcome"}),
		submitLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "monteverde",
			Subsystem: "forms",
			Name:      "submission_duration_seconds",
			Help:      "Latency of form submission handling",
			Buckets:   prometheus.DefBuckets,
		}, []string{"form"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.submitLatency)
	return m
}

// Submission outcomes.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

func (m *FormMetrics) ObserveSubmission(form, outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(form, outcome).Inc()
}

func (m *FormMetrics) ObserveLatency(form string, seconds float64) {
	if m == nil {
		return
	}
	m.submitLatency.WithLabelValues(form).Observe(seconds)
}
