// Package metrics exposes Prometheus collectors for the ledger service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/ledgerwise/internal/ledger"
)

// Outcome label for entries that passed validation.
const outcomeAccepted = "accepted"

// Metrics holds the collectors recorded by the service and its interceptors.
type Metrics struct {
	admissions  *prometheus.CounterVec
	rpcDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		admissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ledgerwise",
			Name:      "entry_admissions_total",
			Help:      "Ledger entries checked for admission, by outcome.",
		}, []string{"outcome"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ledgerwise",
			Name:      "rpc_duration_seconds",
			Help:      "Duration of RPC calls, by procedure and status code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure", "code"}),
	}
	reg.MustRegister(m.admissions, m.rpcDuration)
	return m
}

// ObserveAdmission counts one admission attempt. A nil err counts as
// accepted; otherwise the validation kind is used as the outcome.
func (m *Metrics) ObserveAdmission(err error) {
	m.admissions.WithLabelValues(Outcome(err)).Inc()
}

// ObserveBatch counts a batch admission: accepted entries passed, and err is
// the failure that stopped the batch, if any.
func (m *Metrics) ObserveBatch(accepted int, err error) {
	m.admissions.WithLabelValues(outcomeAccepted).Add(float64(accepted))
	if err != nil {
		m.ObserveAdmission(err)
	}
}

// ObserveRPC records the duration of one RPC call.
func (m *Metrics) ObserveRPC(procedure, code string, d time.Duration) {
	m.rpcDuration.WithLabelValues(procedure, code).Observe(d.Seconds())
}

// Outcome maps an admission error to its label value.
func Outcome(err error) string {
	if err == nil {
		return outcomeAccepted
	}
	if kind := ledger.KindOf(err); kind != "" {
		return kind
	}
	return "error"
}
