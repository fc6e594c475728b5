package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/booking-api/internal/logger"
)

func TestDriver_InvalidSpecFallsBack(t *testing.T) {
	d := NewDriver(logger.Nop(), "every tuesday-ish", time.UTC, func(ctx context.Context) error { return nil })

	d.Start(context.Background())
	defer d.Stop()

	assert.Equal(t, DefaultSpec, d.Spec())
	assert.False(t, d.Next().IsZero())
}

func TestDriver_ValidSpec(t *testing.T) {
	d := NewDriver(logger.Nop(), "0 3 * * *", time.UTC, func(ctx context.Context) error { return nil })
	assert.True(t, d.Next().IsZero())

	d.Start(context.Background())
	defer d.Stop()

	assert.Equal(t, "0 3 * * *", d.Spec())
	next := d.Next()
	assert.Equal(t, 3, next.Hour())
	assert.Equal(t, 0, next.Minute())
}

func TestDriver_RunOncePassesContext(t *testing.T) {
	type key struct{}
	var calls int
	var seen any

	d := NewDriver(logger.Nop(), DefaultSpec, time.UTC, func(ctx context.Context) error {
		calls++
		seen = ctx.Value(key{})
		return errors.New("store unavailable")
	})

	d.Start(context.WithValue(context.Background(), key{}, "run"))
	d.runOnce()
	d.runOnce()
	d.Stop()

	assert.Equal(t, 2, calls)
	assert.Equal(t, "run", seen)
}

func TestDriver_StopCancelsRunContext(t *testing.T) {
	var ctxErr error
	d := NewDriver(logger.Nop(), DefaultSpec, time.UTC, func(ctx context.Context) error {
		ctxErr = ctx.Err()
		return nil
	})

	d.Start(context.Background())
	d.Stop()
	d.runOnce()

	assert.ErrorIs(t, ctxErr, context.Canceled)
}

func TestDriver_FiresInConfiguredZone(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	d := NewDriver(logger.Nop(), DefaultSpec, loc, func(ctx context.Context) error { return nil })

	d.Start(context.Background())
	defer d.Stop()

	next := d.Next().In(loc)
	assert.Equal(t, 0, next.Hour())
	assert.Equal(t, 0, next.Minute())
	assert.Equal(t, loc, d.Next().Location())
}

func TestDriver_SecondStartIsIgnored(t *testing.T) {
	d := NewDriver(logger.Nop(), DefaultSpec, time.UTC, func(ctx context.Context) error { return nil })

	d.Start(context.Background())
	first := d.cron
	d.Start(context.Background())

	assert.Same(t, first, d.cron)
	assert.Len(t, d.cron.Entries(), 1)

	d.Stop()
}
