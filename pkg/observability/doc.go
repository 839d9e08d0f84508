// Package observability exports evaluation metrics.
//
// Metrics plugs into a character through domain.LifecycleHooks, so the core
// packages never import Prometheus.
package observability
