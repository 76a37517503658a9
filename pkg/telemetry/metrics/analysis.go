package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Toluwaa-o/string-analyzer/pkg/config"
)

// Outcome labels for the natural-language query counter.
const (
	OutcomeParsed     = "parsed"
	OutcomeUnparsable = "unparsable"
)

// AnalysisMetrics tracks the string analysis domain.
//
// Metrics:
//   - <ns>_strings_analyzed_total: successful create operations
//   - <ns>_records_stored: records currently in the store (GaugeFunc)
//   - <ns>_nl_queries_total: natural-language queries by outcome
type AnalysisMetrics struct {
	cfg      config.MetricsConfig
	registry *prometheus.Registry

	stringsAnalyzed prometheus.Counter
	nlQueries       *prometheus.CounterVec
}

// NewAnalysisMetrics creates and registers the analysis metrics with the
// provided registry. The records-stored gauge is registered separately
// via SetRecordCountFunc once a store exists.
func NewAnalysisMetrics(cfg config.MetricsConfig, registry *prometheus.Registry) *AnalysisMetrics {
	am := &AnalysisMetrics{
		cfg:      cfg,
		registry: registry,

		stringsAnalyzed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "strings_analyzed_total",
				Help:      "Total number of strings analyzed and stored",
			},
		),

		nlQueries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "nl_queries_total",
				Help:      "Total number of natural-language filter queries by outcome",
			},
			[]string{"outcome"},
		),
	}

	registry.MustRegister(am.stringsAnalyzed, am.nlQueries)
	return am
}

// SetRecordCountFunc registers a gauge that reports the current record
// count by calling fn on every scrape.
func (am *AnalysisMetrics) SetRecordCountFunc(fn func() int) {
	am.registry.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: am.cfg.Namespace,
			Name:      "records_stored",
			Help:      "Number of string records currently stored",
		},
		func() float64 { return float64(fn()) },
	))
}

// SetValueBytesFunc registers a gauge that reports the total stored
// value bytes by calling fn on every scrape.
func (am *AnalysisMetrics) SetValueBytesFunc(fn func() int64) {
	am.registry.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: am.cfg.Namespace,
			Name:      "value_bytes_stored",
			Help:      "Total size in bytes of all stored string values",
		},
		func() float64 { return float64(fn()) },
	))
}

// StringAnalyzed records one successful create operation.
func (am *AnalysisMetrics) StringAnalyzed() {
	am.stringsAnalyzed.Inc()
}

// NLQuery records one natural-language query with the given outcome.
func (am *AnalysisMetrics) NLQuery(outcome string) {
	am.nlQueries.WithLabelValues(outcome).Inc()
}
