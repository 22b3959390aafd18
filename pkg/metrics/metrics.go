package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for gopace components.
type Registry struct {
	// Pacing Metrics
	PaceCalls              *prometheus.CounterVec
	PaceScheduled          *prometheus.CounterVec
	PaceCoalesced          *prometheus.CounterVec
	PaceInvocations        *prometheus.CounterVec
	PaceInvocationDuration *prometheus.HistogramVec
	PacePending            *prometheus.GaugeVec

	// Distributed Gate Metrics
	GateRequests   *prometheus.CounterVec
	GateAcquired   *prometheus.CounterVec
	GateSuppressed *prometheus.CounterVec
	GateErrors     *prometheus.CounterVec
}

// DefaultRegistry is the default metrics registry used by gopace components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		// Pacing Metrics
		PaceCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopace",
				Subsystem: "pace",
				Name:      "calls_total",
				Help:      "Total number of calls made through a pacing wrapper",
			},
			[]string{"strategy", "name"},
		),

		PaceScheduled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopace",
				Subsystem: "pace",
				Name:      "scheduled_total",
				Help:      "Total number of calls that scheduled a new deferred invocation",
			},
			[]string{"strategy", "name"},
		),

		PaceCoalesced: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopace",
				Subsystem: "pace",
				Name:      "coalesced_total",
				Help:      "Total number of calls absorbed into an already-pending window",
			},
			[]string{"strategy", "name"},
		),

		PaceInvocations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopace",
				Subsystem: "pace",
				Name:      "invocations_total",
				Help:      "Total number of deferred invocations of wrapped functions",
			},
			[]string{"strategy", "name"},
		),

		PaceInvocationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "gopace",
				Subsystem: "pace",
				Name:      "invocation_duration_seconds",
				Help:      "Time spent executing wrapped functions",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"strategy", "name"},
		),

		PacePending: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "gopace",
				Subsystem: "pace",
				Name:      "pending",
				Help:      "Whether a deferred invocation is currently scheduled (0 or 1)",
			},
			[]string{"strategy", "name"},
		),

		// Distributed Gate Metrics
		GateRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopace",
				Subsystem: "gate",
				Name:      "requests_total",
				Help:      "Total number of suppression window claim attempts",
			},
			[]string{"name"},
		),

		GateAcquired: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopace",
				Subsystem: "gate",
				Name:      "acquired_total",
				Help:      "Total number of successful suppression window claims",
			},
			[]string{"name"},
		),

		GateSuppressed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopace",
				Subsystem: "gate",
				Name:      "suppressed_total",
				Help:      "Total number of claim attempts suppressed by an active window",
			},
			[]string{"name"},
		),

		GateErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopace",
				Subsystem: "gate",
				Name:      "errors_total",
				Help:      "Total number of coordination failures",
			},
			[]string{"name"},
		),
	}
}
