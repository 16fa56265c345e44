package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the dispute module.
// Tracks filing and resolution counts, score impact and critical path durations.
type Metrics struct {
	DisputesFiled       prometheus.Counter
	DisputesDeleted     prometheus.Counter
	Resolutions         *prometheus.CounterVec
	ResolveDuration     prometheus.Histogram
	ScoreDelta          prometheus.Histogram
	CorroborationChecks *prometheus.CounterVec
	ResolutionGuardHeld prometheus.Counter
}

// New creates a new Metrics instance with all dispute module metrics registered.
func New() *Metrics {
	return &Metrics{
		DisputesFiled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "billsplit_disputes_filed_total",
			Help: "Total number of bill-split disputes filed",
		}),
		DisputesDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "billsplit_disputes_deleted_total",
			Help: "Total number of disputes removed without scoring",
		}),
		Resolutions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "billsplit_dispute_resolutions_total",
			Help: "Total number of resolution attempts by outcome (resolved or an error code)",
		}, []string{"outcome"}),
		ResolveDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "billsplit_resolve_dispute_duration_seconds",
			Help:    "Duration of ResolveDispute operations including the write transaction",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		ScoreDelta: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "billsplit_credit_score_delta",
			Help:    "Magnitude of credit score reductions applied by resolutions",
			Buckets: []float64{0, 1, 2, 5, 10, 15, 20, 25},
		}),
		CorroborationChecks: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "billsplit_corroboration_checks_total",
			Help: "Total number of corroborating payment checks by result",
		}, []string{"corroborated"}),
		ResolutionGuardHeld: promauto.NewCounter(prometheus.CounterOpts{
			Name: "billsplit_resolution_guard_conflicts_total",
			Help: "Total number of resolutions rejected because the dispute was already being resolved",
		}),
	}
}

func (m *Metrics) IncrementFiled() {
	if m != nil {
		m.DisputesFiled.Inc()
	}
}

func (m *Metrics) IncrementDeleted() {
	if m != nil {
		m.DisputesDeleted.Inc()
	}
}

// RecordResolution records the outcome of a resolution attempt.
// Call with time.Now() at the start of the operation.
func (m *Metrics) RecordResolution(start time.Time, outcome string) {
	if m == nil {
		return
	}
	m.Resolutions.WithLabelValues(outcome).Inc()
	m.ResolveDuration.Observe(time.Since(start).Seconds())
}

// ObserveScoreDelta records how far a resolution lowered a score.
func (m *Metrics) ObserveScoreDelta(delta int) {
	if m != nil {
		m.ScoreDelta.Observe(float64(-delta))
	}
}

func (m *Metrics) IncrementCorroborationCheck(corroborated bool) {
	if m == nil {
		return
	}
	if corroborated {
		m.CorroborationChecks.WithLabelValues("true").Inc()
	} else {
		m.CorroborationChecks.WithLabelValues("false").Inc()
	}
}

func (m *Metrics) IncrementGuardHeld() {
	if m != nil {
		m.ResolutionGuardHeld.Inc()
	}
}
