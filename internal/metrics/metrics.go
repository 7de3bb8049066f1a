// Package metrics exposes Prometheus counters for the site's two logic
// paths: estimates and lead submissions.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	estimatesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "delstarford_estimates_total",
		Help: "Total price estimates computed",
	})

	leadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "delstarford_leads_total",
		Help: "Total lead submissions by outcome",
	}, []string{"outcome"})

	emailsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "delstarford_emails_total",
		Help: "Total notification emails by kind and outcome",
	}, []string{"kind", "outcome"})
)

// RecordEstimate counts one computed estimate.
func RecordEstimate() {
	estimatesTotal.Inc()
}

// RecordLead counts one lead submission with its outcome
// ("ok", "error", "invalid", "fault").
func RecordLead(outcome string) {
	leadsTotal.WithLabelValues(outcome).Inc()
}

// RecordEmail counts one email send attempt by kind
// ("operator", "requester") and outcome ("ok", "error").
func RecordEmail(kind, outcome string) {
	emailsTotal.WithLabelValues(kind, outcome).Inc()
}
