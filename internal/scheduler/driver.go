package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/BruksfildServices01/booking-api/internal/logger"
)

const DefaultSpec = "@daily"

// Job is invoked once per tick. Its result is only logged.
type Job func(ctx context.Context) error

// Driver fires a job on a cron schedule. Missed ticks are not replayed and
// failed runs are not retried.
type Driver struct {
	log  logger.Logger
	spec string
	job  Job
	loc  *time.Location

	mu     sync.Mutex
	cron   *cron.Cron
	runCtx context.Context
	cancel context.CancelFunc
}

// NewDriver builds a driver whose spec is evaluated in loc, the same zone
// the generator uses for "today". A nil loc means time.Local.
func NewDriver(log logger.Logger, spec string, loc *time.Location, job Job) *Driver {
	if loc == nil {
		loc = time.Local
	}
	return &Driver{log: log, spec: spec, loc: loc, job: job}
}

// Start schedules the job. An invalid spec falls back to @daily. Calls after
// the first are ignored.
func (d *Driver) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cron != nil {
		d.log.Warn("slot scheduler already started")
		return
	}

	d.runCtx, d.cancel = context.WithCancel(ctx)

	c := cron.New(cron.WithLocation(d.loc))
	if _, err := c.AddFunc(d.spec, d.runOnce); err != nil {
		d.log.Warn("invalid cron spec, falling back to @daily",
			logger.String("spec", d.spec),
			logger.Error(err))
		d.spec = DefaultSpec
		c = cron.New(cron.WithLocation(d.loc))
		_, _ = c.AddFunc(DefaultSpec, d.runOnce)
	}
	c.Start()
	d.cron = c

	d.log.Info("slot scheduler started", logger.String("spec", d.spec))
}

// Stop cancels the run context and waits for an in-flight job.
func (d *Driver) Stop() {
	d.mu.Lock()
	c, cancel := d.cron, d.cancel
	d.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if c != nil {
		<-c.Stop().Done()
	}
}

func (d *Driver) Spec() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.spec
}

// Next is the next scheduled fire time, zero before Start.
func (d *Driver) Next() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cron == nil {
		return time.Time{}
	}
	entries := d.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

func (d *Driver) runOnce() {
	d.mu.Lock()
	ctx := d.runCtx
	d.mu.Unlock()

	start := time.Now()
	if err := d.job(ctx); err != nil {
		d.log.Error("scheduled slot generation failed",
			logger.Duration("elapsed", time.Since(start)),
			logger.Error(err))
		return
	}
	d.log.Info("scheduled slot generation finished",
		logger.Duration("elapsed", time.Since(start)))
}
