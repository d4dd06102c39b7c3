package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the process-wide counters. Broadcast and notification
// failures are telemetry only; they never change an operation's outcome.
// All record methods tolerate a nil receiver so tests can pass nil.
type Metrics struct {
	VoteActions         *prometheus.CounterVec
	BroadcastFailures   prometheus.Counter
	SweepRemovals       prometheus.Counter
	ClassifierFallbacks prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		VoteActions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "campusvoice_vote_actions_total",
			Help: "Total vote ledger mutations by resulting action",
		}, []string{"action"}),
		BroadcastFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "campusvoice_broadcast_failures_total",
			Help: "Total realtime event deliveries that failed and dropped a subscriber",
		}),
		SweepRemovals: promauto.NewCounter(prometheus.CounterOpts{
			Name: "campusvoice_sweep_removals_total",
			Help: "Total subscribers removed by the periodic liveness sweep",
		}),
		ClassifierFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "campusvoice_classifier_fallbacks_total",
			Help: "Total classifications resolved by the fixed fallback record",
		}),
	}
}

func (m *Metrics) ObserveVoteAction(action string) {
	if m == nil {
		return
	}
	m.VoteActions.WithLabelValues(action).Inc()
}

func (m *Metrics) IncBroadcastFailure() {
	if m == nil {
		return
	}
	m.BroadcastFailures.Inc()
}

func (m *Metrics) IncSweepRemoval() {
	if m == nil {
		return
	}
	m.SweepRemovals.Inc()
}

func (m *Metrics) IncClassifierFallback() {
	if m == nil {
		return
	}
	m.ClassifierFallbacks.Inc()
}
