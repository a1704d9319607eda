package metrics

import "github.com/prometheus/client_golang/prometheus"

// ConversationMetrics exposes counters/histograms for the conversation loop.
type ConversationMetrics struct {
	modelCallsTotal *prometheus.CounterVec
	dispatchTotal   *prometheus.CounterVec
	turnLatency     prometheus.Histogram
}

func NewConversationMetrics(reg prometheus.Registerer) *ConversationMetrics {
	m := &ConversationMetrics{
		modelCallsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "orderbot",
			Subsystem: "conversation",
			Name:      "model_calls_total",
			Help:      "Total chat completion calls",
		}, []string{"status"}),
		dispatchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "orderbot",
			Subsystem: "actions",
			Name:      "dispatch_total",
			Help:      "Total action dispatches",
		}, []string{"action", "outcome"}),
		turnLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "orderbot",
			Subsystem: "conversation",
			Name:      "turn_latency_seconds",
			Help:      "Latency of handling one user message",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.modelCallsTotal, m.dispatchTotal, m.turnLatency)
	return m
}

func (m *ConversationMetrics) ObserveModelCall(status string) {
	if m == nil {
		return
	}
	m.modelCallsTotal.WithLabelValues(status).Inc()
}

func (m *ConversationMetrics) ObserveDispatch(action, outcome string) {
	if m == nil {
		return
	}
	m.dispatchTotal.WithLabelValues(action, outcome).Inc()
}

func (m *ConversationMetrics) ObserveTurnLatency(seconds float64) {
	if m == nil {
		return
	}
	m.turnLatency.Observe(seconds)
}
