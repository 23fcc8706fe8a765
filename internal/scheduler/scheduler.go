// Package scheduler runs the opt-in background jobs.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/dukerupert/tenancy/internal/telemetry"
	"github.com/getsentry/sentry-go"
	"github.com/robfig/cron/v3"
)

// OverdueMarker persists pending -> overdue for invoices past due.
type OverdueMarker interface {
	MarkInvoicesOverdue(ctx context.Context, now time.Time) (int64, error)
}

// Config holds cron expressions. An empty expression disables the job.
type Config struct {
	// OverdueSweep uses the standard five-field syntax or a descriptor
	// such as "@daily".
	OverdueSweep string
}

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron     *cron.Cron
	invoices OverdueMarker
	metrics  *telemetry.BusinessMetrics
	logger   *slog.Logger
	now      func() time.Time
	timeout  time.Duration
}

// New creates a scheduler and registers the configured jobs. It returns an
// error for an invalid cron expression.
func New(cfg Config, invoices OverdueMarker, metrics *telemetry.BusinessMetrics, logger *slog.Logger) (*Scheduler, error) {
	logger = logger.With("component", "scheduler")
	cl := cronLogger{logger}

	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		invoices: invoices,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
		timeout:  5 * time.Minute,
	}

	if cfg.OverdueSweep != "" {
		if _, err := s.cron.AddFunc(cfg.OverdueSweep, func() { s.SweepOverdue(context.Background()) }); err != nil {
			return nil, err
		}
		logger.Info("registered job", "job", "overdue_sweep", "schedule", cfg.OverdueSweep)
	}

	return s, nil
}

// Enabled reports whether any job is registered.
func (s *Scheduler) Enabled() bool {
	return len(s.cron.Entries()) > 0
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	if !s.Enabled() {
		s.logger.Info("no jobs configured, scheduler idle")
		return
	}
	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
}

// Stop waits for running jobs to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("scheduler stopped")
	case <-ctx.Done():
		s.logger.Warn("scheduler stop timed out")
	}
}

// SweepOverdue marks past-due pending invoices overdue. It returns the
// number of invoices changed.
func (s *Scheduler) SweepOverdue(ctx context.Context) int64 {
	const job = "overdue_sweep"

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	n, err := s.invoices.MarkInvoicesOverdue(ctx, s.now())
	s.observe(job, start, err)

	if err != nil {
		s.logger.Error("overdue sweep failed", "error", err)
		telemetry.CaptureMessage("overdue sweep failed", sentry.LevelError, map[string]interface{}{"error": err.Error()})
		return 0
	}

	s.metrics.InvoicesMarkedOverdue(int(n))
	s.logger.Info("overdue sweep finished", "marked", n, "duration", time.Since(start))
	return n
}

func (s *Scheduler) observe(job string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	s.metrics.JobRuns.WithLabelValues(job, result).Inc()
	s.metrics.JobDuration.WithLabelValues(job).Observe(time.Since(start).Seconds())
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	l *slog.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debug(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Error(msg, append(keysAndValues, "error", err)...)
}
