// Package report runs the periodic store usage report.
package report

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"
)

// StoreStats is the slice of the store the reporter reads.
type StoreStats interface {
	Len() int
	ValueBytes() int64
}

// Reporter logs a store usage summary on a cron schedule. It exists so
// long-running deployments leave a periodic size trace in the logs even
// when nobody is scraping metrics.
type Reporter struct {
	schedule string
	stats    StoreStats
	cron     *cron.Cron
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
}

// NewReporter creates a reporter for the given cron schedule. An empty
// schedule yields a reporter whose Start is a no-op.
func NewReporter(schedule string, stats StoreStats) *Reporter {
	return &Reporter{
		schedule: schedule,
		stats:    stats,
		cron:     cron.New(),
		logger:   slog.Default().With("component", "telemetry.report"),
	}
}

// Start begins scheduled reporting. The schedule uses standard cron
// syntax, e.g. "*/15 * * * *" for every fifteen minutes.
func (r *Reporter) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.schedule == "" {
		r.logger.Debug("report schedule not configured, skipping reporter")
		return nil
	}

	if _, err := cron.ParseStandard(r.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", r.schedule, err)
	}

	if _, err := r.cron.AddFunc(r.schedule, r.report); err != nil {
		return fmt.Errorf("failed to schedule store report: %w", err)
	}

	r.cron.Start()
	r.running = true

	r.logger.Info("store usage reporter started", "schedule", r.schedule)
	return nil
}

// report emits one usage summary.
func (r *Reporter) report() {
	r.logger.Info("store usage report",
		"records_stored", r.stats.Len(),
		"value_bytes", r.stats.ValueBytes(),
	)
}

// Stop stops the scheduler and waits for a running report to finish.
func (r *Reporter) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		return
	}
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.running = false
	r.logger.Info("store usage reporter stopped")
}
