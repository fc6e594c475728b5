// Command slotgen runs one slot generation pass. It is meant to be invoked
// by the host crontab once a day.
package main

import (
	"context"
	"os"

	"github.com/BruksfildServices01/booking-api/internal/config"
	"github.com/BruksfildServices01/booking-api/internal/jobs"
	"github.com/BruksfildServices01/booking-api/internal/logger"
	"github.com/BruksfildServices01/booking-api/internal/scheduler"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.LogLevel, cfg.PrettyLog)
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	if err := scheduler.EnsureCronService(ctx, scheduler.ExecRunner, log); err != nil {
		log.Warn("cron service unavailable", logger.Error(err))
	}

	job, cleanup := jobs.FromConfig(ctx, cfg, log)
	err := job.Run(ctx)
	cleanup()

	if err != nil {
		log.Error("slot generation failed", logger.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}
