// Command scheduler keeps slot generation running in-process on a cron
// spec, for deployments without a host crontab.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/BruksfildServices01/booking-api/internal/config"
	"github.com/BruksfildServices01/booking-api/internal/jobs"
	"github.com/BruksfildServices01/booking-api/internal/logger"
	"github.com/BruksfildServices01/booking-api/internal/scheduler"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.LogLevel, cfg.PrettyLog)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	job, cleanup := jobs.FromConfig(ctx, cfg, log)
	defer cleanup()

	d := scheduler.NewDriver(log, cfg.SlotCronSpec, cfg.Location(), job.Run)
	d.Start(ctx)

	log.Info("next slot generation scheduled",
		logger.String("spec", d.Spec()),
		logger.Time("next", d.Next()),
	)

	<-ctx.Done()
	d.Stop()
	log.Info("slot scheduler stopped")
}
