package scheduler

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/BruksfildServices01/booking-api/internal/logger"
)

// CommandRunner runs an external command and reports a non-zero exit.
type CommandRunner func(ctx context.Context, name string, args ...string) error

func ExecRunner(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = io.Discard
	return cmd.Run()
}

// EnsureCronService checks the host cron daemon and starts it once if it is
// down. The returned error means the OS schedule may not fire; callers log
// it and carry on.
func EnsureCronService(ctx context.Context, run CommandRunner, log logger.Logger) error {
	if err := run(ctx, "service", "cron", "status"); err == nil {
		return nil
	}

	log.Warn("cron service is not running, starting it")

	if err := run(ctx, "service", "cron", "start"); err != nil {
		return fmt.Errorf("start cron service: %w", err)
	}

	log.Info("cron service started")
	return nil
}
