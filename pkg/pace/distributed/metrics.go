package distributed

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vnykmshr/gopace/pkg/metrics"
)

// MetricsGate wraps a Gate with Prometheus metrics collection.
type MetricsGate struct {
	gate     Gate
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewGateWithMetrics creates a Gate with metrics enabled.
func NewGateWithMetrics(config Config, name string) (Gate, error) {
	// Use a separate registry for each metrics-enabled component to avoid conflicts
	registry := prometheus.NewRegistry()
	return NewGateWithConfigAndMetrics(config, name, metrics.Config{
		Enabled:  true,
		Registry: registry,
	})
}

// NewGateWithConfigAndMetrics creates a Gate with custom metrics configuration.
func NewGateWithConfigAndMetrics(config Config, name string, metricsConfig metrics.Config) (Gate, error) {
	base, err := NewGateSafe(config)
	if err != nil {
		return nil, err
	}

	if !metricsConfig.Enabled {
		return base, nil
	}

	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	return &MetricsGate{
		gate:     base,
		name:     name,
		registry: registry,
		enabled:  true,
	}, nil
}

// Try claims the suppression window for key.
func (mg *MetricsGate) Try(ctx context.Context, key string) (bool, error) {
	if mg.enabled {
		mg.registry.GateRequests.WithLabelValues(mg.name).Inc()
	}

	claimed, err := mg.gate.Try(ctx, key)

	if mg.enabled {
		switch {
		case err != nil:
			mg.registry.GateErrors.WithLabelValues(mg.name).Inc()
		case claimed:
			mg.registry.GateAcquired.WithLabelValues(mg.name).Inc()
		default:
			mg.registry.GateSuppressed.WithLabelValues(mg.name).Inc()
		}
	}

	return claimed, err
}

// Hold re-opens the window for key, postponing its expiry.
func (mg *MetricsGate) Hold(ctx context.Context, key string) error {
	err := mg.gate.Hold(ctx, key)

	if mg.enabled && err != nil {
		mg.registry.GateErrors.WithLabelValues(mg.name).Inc()
	}

	return err
}

// Remaining returns the time left in the window for key.
func (mg *MetricsGate) Remaining(ctx context.Context, key string) (time.Duration, error) {
	return mg.gate.Remaining(ctx, key)
}

// Holder returns the instance ID holding the window for key.
func (mg *MetricsGate) Holder(ctx context.Context, key string) (string, error) {
	return mg.gate.Holder(ctx, key)
}

// Clear releases the window for key immediately.
func (mg *MetricsGate) Clear(ctx context.Context, key string) error {
	return mg.gate.Clear(ctx, key)
}

// Close releases gate resources.
func (mg *MetricsGate) Close() error {
	return mg.gate.Close()
}

// EnableMetrics enables metrics collection.
func (mg *MetricsGate) EnableMetrics(config metrics.Config) error {
	mg.enabled = config.Enabled

	if config.Registry != nil {
		mg.registry = metrics.NewRegistry(config.Registry)
	}

	return nil
}

// DisableMetrics disables metrics collection.
func (mg *MetricsGate) DisableMetrics() {
	mg.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (mg *MetricsGate) MetricsEnabled() bool {
	return mg.enabled
}
