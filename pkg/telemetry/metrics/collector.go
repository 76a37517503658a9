package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Toluwaa-o/string-analyzer/pkg/config"
)

// Collector is the orchestrator for all Prometheus metrics in the
// service. It manages metric registration and provides a unified
// interface for recording across components.
type Collector struct {
	config   config.MetricsConfig
	registry *prometheus.Registry

	request  *RequestMetrics
	analysis *AnalysisMetrics
}

// NewCollector creates a metrics collector with the given configuration
// and registry. If registry is nil a fresh registry is used, keeping the
// service's metrics separate from the default global registry.
func NewCollector(cfg config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if cfg.Namespace == "" {
		cfg.Namespace = config.DefaultMetricsNamespace
	}

	return &Collector{
		config:   cfg,
		registry: registry,
		request:  NewRequestMetrics(cfg, registry),
		analysis: NewAnalysisMetrics(cfg, registry),
	}
}

// Registry returns the underlying Prometheus registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Request returns the HTTP request metrics.
func (c *Collector) Request() *RequestMetrics {
	return c.request
}

// Analysis returns the analysis metrics.
func (c *Collector) Analysis() *AnalysisMetrics {
	return c.analysis
}
