// Package metrics provides Prometheus metrics for the string analyzer.
//
// A Collector owns its own registry and groups the metric families:
// HTTP request counts and latencies, recorded by the metrics middleware,
// and analysis metrics (strings analyzed, records currently stored,
// natural-language query outcomes), recorded by the handlers. The
// records-stored gauge reads the store lazily on scrape via a GaugeFunc
// rather than being pushed on every mutation.
package metrics
