package throttle

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vnykmshr/gopace/pkg/metrics"
	"github.com/vnykmshr/gopace/pkg/pace"
)

const strategyLabel = "throttle"

// MetricsLimiter wraps a Limiter with Prometheus metrics collection.
type MetricsLimiter struct {
	limiter  Limiter
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewWithMetrics creates a throttled wrapper with metrics enabled.
func NewWithMetrics(fn pace.Func, wait time.Duration, name string) Limiter {
	// Use a separate registry for each metrics-enabled component to avoid conflicts
	registry := prometheus.NewRegistry()
	config := metrics.Config{
		Enabled:  true,
		Registry: registry,
	}

	return NewWithConfigAndMetrics(Config{
		Fn:   fn,
		Wait: wait,
	}, name, config)
}

// NewWithConfigAndMetrics creates a throttled wrapper with custom config and metrics.
func NewWithConfigAndMetrics(config Config, name string, metricsConfig metrics.Config) Limiter {
	if !metricsConfig.Enabled {
		return NewWithConfig(config)
	}

	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	ml := &MetricsLimiter{
		name:     name,
		registry: registry,
		enabled:  true,
	}

	// Instrument the wrapped function so deferred invocations are observed
	// no matter which call scheduled them.
	inner := config.Fn
	config.Fn = func(contextVal any, args ...any) any {
		start := time.Now()
		result := inner(contextVal, args...)

		if ml.enabled {
			ml.registry.PaceInvocations.WithLabelValues(strategyLabel, ml.name).Inc()
			ml.registry.PaceInvocationDuration.WithLabelValues(strategyLabel, ml.name).
				Observe(time.Since(start).Seconds())
			ml.registry.PacePending.WithLabelValues(strategyLabel, ml.name).Set(0)
		}
		return result
	}

	ml.limiter = NewWithConfig(config)
	return ml
}

// Call records a call with a nil context value.
func (ml *MetricsLimiter) Call(args ...any) any {
	return ml.CallWith(nil, args...)
}

// CallWith records a call with an explicit per-call context value.
func (ml *MetricsLimiter) CallWith(contextVal any, args ...any) any {
	if ml.enabled {
		ml.registry.PaceCalls.WithLabelValues(strategyLabel, ml.name).Inc()
		if ml.limiter.Pending() {
			ml.registry.PaceCoalesced.WithLabelValues(strategyLabel, ml.name).Inc()
		} else {
			ml.registry.PaceScheduled.WithLabelValues(strategyLabel, ml.name).Inc()
		}
	}

	result := ml.limiter.CallWith(contextVal, args...)

	if ml.enabled && ml.limiter.Pending() {
		ml.registry.PacePending.WithLabelValues(strategyLabel, ml.name).Set(1)
	}

	return result
}

// Pending reports whether a deferred invocation is currently scheduled.
func (ml *MetricsLimiter) Pending() bool {
	return ml.limiter.Pending()
}

// Stop cancels any pending deferred invocation.
func (ml *MetricsLimiter) Stop() bool {
	stopped := ml.limiter.Stop()

	if ml.enabled && stopped {
		ml.registry.PacePending.WithLabelValues(strategyLabel, ml.name).Set(0)
	}

	return stopped
}

// Last returns the result of the most recently completed invocation.
func (ml *MetricsLimiter) Last() any {
	return ml.limiter.Last()
}

// Wait returns the configured cooldown window.
func (ml *MetricsLimiter) Wait() time.Duration {
	return ml.limiter.Wait()
}

// EnableMetrics enables metrics collection.
func (ml *MetricsLimiter) EnableMetrics(config metrics.Config) error {
	ml.enabled = config.Enabled

	if config.Registry != nil {
		ml.registry = metrics.NewRegistry(config.Registry)
	}

	return nil
}

// DisableMetrics disables metrics collection.
func (ml *MetricsLimiter) DisableMetrics() {
	ml.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (ml *MetricsLimiter) MetricsEnabled() bool {
	return ml.enabled
}
