package slotgen

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/booking-api/internal/domain/schedule"
	"github.com/BruksfildServices01/booking-api/internal/logger"
	"github.com/BruksfildServices01/booking-api/internal/models"
)

type fakeStore struct {
	resources []models.Resource
	listErr   error
	failAfter int
	inserted  []models.Slot
}

func (f *fakeStore) ListResources(ctx context.Context) ([]models.Resource, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.resources, nil
}

func (f *fakeStore) InsertSlot(ctx context.Context, s *models.Slot) error {
	if f.failAfter > 0 && len(f.inserted) == f.failAfter {
		return errors.New("connection reset")
	}
	s.ID = uint(len(f.inserted) + 1)
	f.inserted = append(f.inserted, *s)
	return nil
}

// 2026-10-20 + 90 days is Monday 2027-01-18.
func fixedClock() time.Time {
	return time.Date(2026, time.October, 20, 10, 30, 0, 0, time.UTC)
}

func newTestGenerator(store *fakeStore) *Generator {
	return NewGenerator(store, logger.Nop(),
		WithClock(fixedClock),
		WithLocation(time.UTC),
	)
}

func TestGenerator_TargetDate(t *testing.T) {
	g := newTestGenerator(&fakeStore{})

	target := g.TargetDate()

	assert.Equal(t, time.Date(2027, time.January, 18, 0, 0, 0, 0, time.UTC), target)
	assert.Equal(t, time.Monday, target.Weekday())

	short := NewGenerator(&fakeStore{}, logger.Nop(),
		WithClock(fixedClock), WithLocation(time.UTC), WithHorizonDays(1))
	assert.Equal(t, 21, short.TargetDate().Day())
}

func TestGenerator_Run_EndToEnd(t *testing.T) {
	store := &fakeStore{resources: []models.Resource{
		{ID: 7, Title: "Room A", Active: true, Intervals: 15, OpeningHoursMon: "08:00-12:00-12:30-16:00"},
	}}

	rep, err := newTestGenerator(store).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2027-01-18", rep.TargetDate)
	assert.Equal(t, 1, rep.Resources)
	assert.Equal(t, 33, rep.Slots)
	assert.NotEmpty(t, rep.RunID)
	assert.Empty(t, rep.Error)
	require.Len(t, store.inserted, 33)

	lunchStart := time.Date(2027, time.January, 18, 12, 0, 0, 0, time.UTC)
	lunchEnd := time.Date(2027, time.January, 18, 12, 30, 0, 0, time.UTC)

	var free, blocked int
	for _, s := range store.inserted {
		assert.Equal(t, 15*time.Minute, s.TimestampEnd.Sub(s.Timestamp))
		assert.Equal(t, "7", s.AvailableResources)
		assert.Equal(t, 1, s.MaximumCapacity)

		inBreak := !s.Timestamp.Before(lunchStart) && s.Timestamp.Before(lunchEnd)
		assert.Equal(t, !inBreak, s.Free, s.Timestamp.String())
		if s.Free {
			free++
		} else {
			blocked++
		}
	}
	assert.Equal(t, 31, free)
	assert.Equal(t, 2, blocked)

	first := store.inserted[0]
	assert.Equal(t, "Monday, January, 18, 2027, 08:00 AM", first.FormattedTimestamp)
	assert.Equal(t, "Monday, January, 18, 2027, 08:15 AM", first.FormattedTimestampEnd)

	// closing boundary is kept as the start of a slot
	last := store.inserted[len(store.inserted)-1]
	assert.Equal(t, time.Date(2027, time.January, 18, 16, 0, 0, 0, time.UTC), last.Timestamp)
	assert.Equal(t, "Monday, January, 18, 2027, 16:15 PM", last.FormattedTimestampEnd)
}

func TestGenerator_Run_SkipsClosedAndIgnoresActive(t *testing.T) {
	store := &fakeStore{resources: []models.Resource{
		{ID: 1, Intervals: 30, OpeningHoursMon: ""},
		{ID: 2, Active: false, Intervals: 30, OpeningHoursMon: "09:00-10:00"},
		{ID: 3, Active: true, Intervals: 30, OpeningHoursTue: "09:00-10:00"},
	}}

	rep, err := newTestGenerator(store).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, rep.Resources)
	assert.Equal(t, 2, rep.Skipped)
	require.Len(t, store.inserted, 3)
	for _, s := range store.inserted {
		assert.Equal(t, "2", s.AvailableResources)
		assert.Equal(t, 3, s.MaximumCapacity)
	}
}

func TestGenerator_Run_NotIdempotent(t *testing.T) {
	store := &fakeStore{resources: []models.Resource{
		{ID: 1, Intervals: 60, OpeningHoursMon: "09:00-11:00"},
	}}
	g := newTestGenerator(store)

	_, err := g.Run(context.Background())
	require.NoError(t, err)
	_, err = g.Run(context.Background())
	require.NoError(t, err)

	// 09:00, 10:00, 11:00 per run, no dedup
	require.Len(t, store.inserted, 6)
	assert.Equal(t, store.inserted[0].Timestamp, store.inserted[3].Timestamp)
}

func TestGenerator_Run_MalformedScheduleAborts(t *testing.T) {
	store := &fakeStore{resources: []models.Resource{
		{ID: 1, Intervals: 60, OpeningHoursMon: "09:00-11:00"},
		{ID: 2, Intervals: 60, OpeningHoursMon: "08:00-12:00-16:00"},
		{ID: 3, Intervals: 60, OpeningHoursMon: "09:00-11:00"},
	}}

	rep, err := newTestGenerator(store).Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, schedule.ErrMalformedSchedule)
	assert.NotEmpty(t, rep.Error)

	// resource 1 stays committed, nothing for 2, 3 never reached
	require.Len(t, store.inserted, 3)
	for _, s := range store.inserted {
		assert.Equal(t, "1", s.AvailableResources)
	}
	assert.Equal(t, 3, rep.Slots)
}

func TestGenerator_Run_InvalidInterval(t *testing.T) {
	store := &fakeStore{resources: []models.Resource{
		{ID: 1, Intervals: 0, OpeningHoursMon: "09:00-11:00"},
	}}

	_, err := newTestGenerator(store).Run(context.Background())
	assert.ErrorIs(t, err, schedule.ErrInvalidInterval)
	assert.Empty(t, store.inserted)
}

func TestGenerator_Run_InsertFailureKeepsPartialResult(t *testing.T) {
	store := &fakeStore{
		failAfter: 2,
		resources: []models.Resource{
			{ID: 1, Intervals: 30, OpeningHoursMon: "09:00-11:00"},
		},
	}

	rep, err := newTestGenerator(store).Run(context.Background())

	require.Error(t, err)
	assert.Len(t, store.inserted, 2)
	assert.Equal(t, 2, rep.Slots)
}

func TestGenerator_Run_ListFailure(t *testing.T) {
	store := &fakeStore{listErr: errors.New("db down")}

	rep, err := newTestGenerator(store).Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, rep.Error, "db down")
	assert.Zero(t, rep.Resources)
}
