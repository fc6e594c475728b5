package slotgen

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/booking-api/internal/domain/schedule"
	domain "github.com/BruksfildServices01/booking-api/internal/domain/slot"
	"github.com/BruksfildServices01/booking-api/internal/logger"
	"github.com/BruksfildServices01/booking-api/internal/models"
)

const DefaultHorizonDays = 90

// Generator materializes the slots of the horizon day for every resource.
type Generator struct {
	store       domain.Store
	log         logger.Logger
	now         func() time.Time
	loc         *time.Location
	horizonDays int
}

type Option func(*Generator)

func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

func WithLocation(loc *time.Location) Option {
	return func(g *Generator) {
		if loc != nil {
			g.loc = loc
		}
	}
}

func WithHorizonDays(days int) Option {
	return func(g *Generator) {
		if days > 0 {
			g.horizonDays = days
		}
	}
}

func NewGenerator(store domain.Store, log logger.Logger, opts ...Option) *Generator {
	g := &Generator{
		store:       store,
		log:         log,
		now:         time.Now,
		loc:         time.Local,
		horizonDays: DefaultHorizonDays,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Report summarizes one run. It is returned even when the run fails.
type Report struct {
	RunID      string    `json:"run_id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	TargetDate string    `json:"target_date"`
	Resources  int       `json:"resources"`
	Skipped    int       `json:"skipped"`
	Slots      int       `json:"slots"`
	Error      string    `json:"error,omitempty"`
}

// TargetDate is midnight of today plus the horizon, in the generator zone.
func (g *Generator) TargetDate() time.Time {
	today := g.now().In(g.loc)
	return time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, g.loc).
		AddDate(0, 0, g.horizonDays)
}

// Run generates and inserts the slots of the target date. The active flag
// of resources is not consulted. A malformed schedule or a failed insert
// aborts the run; rows already inserted stay. Running twice for the same
// date inserts the slots twice.
func (g *Generator) Run(ctx context.Context) (*Report, error) {
	target := g.TargetDate()

	rep := &Report{
		RunID:      uuid.NewString(),
		StartedAt:  g.now(),
		TargetDate: target.Format(domain.DateLayout),
	}
	log := g.log.With(
		logger.String("run_id", rep.RunID),
		logger.String("target_date", rep.TargetDate),
	)

	err := g.run(ctx, target, rep, log)

	rep.FinishedAt = g.now()
	if err != nil {
		rep.Error = err.Error()
		log.Error("slot generation aborted",
			logger.Int("slots", rep.Slots),
			logger.Error(err))
		return rep, err
	}

	log.Info("slot generation completed",
		logger.Int("resources", rep.Resources),
		logger.Int("skipped", rep.Skipped),
		logger.Int("slots", rep.Slots))

	return rep, nil
}

func (g *Generator) run(ctx context.Context, target time.Time, rep *Report, log logger.Logger) error {
	resources, err := g.store.ListResources(ctx)
	if err != nil {
		return fmt.Errorf("list resources: %w", err)
	}
	rep.Resources = len(resources)

	weekday := target.Weekday()

	for i := range resources {
		res := &resources[i]

		hours := res.OpeningHours(weekday)
		slots, err := schedule.Timeslots(hours, target, res.Intervals)
		if err != nil {
			return fmt.Errorf("resource %d %s %q: %w", res.ID, weekday, hours, err)
		}
		if len(slots) == 0 {
			rep.Skipped++
			log.Debug("resource closed on target day",
				logger.Uint("resource_id", res.ID))
			continue
		}

		step := time.Duration(res.Intervals) * time.Minute
		for _, ts := range slots {
			row := buildSlot(ts, step, res.ID, len(resources))
			if err := g.store.InsertSlot(ctx, row); err != nil {
				return fmt.Errorf("insert slot %s for resource %d: %w",
					ts.Start.Format(domain.TimestampLayout), res.ID, err)
			}
			rep.Slots++
		}
	}

	return nil
}

func buildSlot(ts schedule.Timeslot, step time.Duration, resourceID uint, capacity int) *models.Slot {
	end := ts.Start.Add(step)
	return &models.Slot{
		Timestamp:             ts.Start,
		TimestampEnd:          end,
		FormattedTimestamp:    domain.Display(ts.Start),
		FormattedTimestampEnd: domain.Display(end),
		Free:                  ts.Free,
		AvailableResources:    strconv.FormatUint(uint64(resourceID), 10),
		MaximumCapacity:       capacity,
	}
}
