// Package metrics provides Prometheus instrumentation for gopace components.
//
// # Quick Start
//
// Enable metrics by using the metrics-enabled constructors:
//
//	// Throttled function with metrics
//	render := throttle.NewWithMetrics(repaint, 50*time.Millisecond, "repaint")
//
//	// Debounced function with metrics
//	save := debounce.NewWithMetrics(persist, 200*time.Millisecond, "persist")
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Available Metrics
//
// Pacing metrics (labels: strategy, name):
//
//   - gopace_pace_calls_total: Total calls made through a wrapper
//   - gopace_pace_scheduled_total: Calls that scheduled a new deferred invocation
//   - gopace_pace_coalesced_total: Calls absorbed into an already-pending window
//   - gopace_pace_invocations_total: Deferred invocations of the wrapped function
//   - gopace_pace_invocation_duration_seconds: Time spent in the wrapped function
//   - gopace_pace_pending: Whether a deferred invocation is currently scheduled
//
// Distributed gate metrics (label: name):
//
//   - gopace_gate_requests_total: Window claim attempts
//   - gopace_gate_acquired_total: Successful window claims
//   - gopace_gate_suppressed_total: Attempts suppressed by an active window
//   - gopace_gate_errors_total: Redis coordination failures
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	config := metrics.Config{Enabled: true, Registry: registry}
//	render := throttle.NewWithConfigAndMetrics(cfg, "repaint", config)
package metrics
