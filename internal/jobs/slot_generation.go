package jobs

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/booking-api/internal/archive"
	"github.com/BruksfildServices01/booking-api/internal/cache"
	"github.com/BruksfildServices01/booking-api/internal/config"
	dbpkg "github.com/BruksfildServices01/booking-api/internal/db"
	domain "github.com/BruksfildServices01/booking-api/internal/domain/slot"
	"github.com/BruksfildServices01/booking-api/internal/infra/repository"
	"github.com/BruksfildServices01/booking-api/internal/logger"
	"github.com/BruksfildServices01/booking-api/internal/usecase/slotgen"
)

// StoreOpener hands out a store scoped to a single run together with the
// function that releases it.
type StoreOpener func(ctx context.Context) (domain.Store, func() error, error)

type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

type ReportStore interface {
	Store(ctx context.Context, rep *slotgen.Report) (string, error)
}

// SlotGeneration is the daily batch: open a store, materialize the horizon
// day, release the store. Cache invalidation and report archiving are best
// effort and never change the run result.
type SlotGeneration struct {
	cfg  *config.Config
	log  logger.Logger
	open StoreOpener

	cache   CacheInvalidator
	reports ReportStore

	genOpts []slotgen.Option
}

func NewSlotGeneration(cfg *config.Config, log logger.Logger, open StoreOpener) *SlotGeneration {
	return &SlotGeneration{cfg: cfg, log: log, open: open}
}

func (j *SlotGeneration) WithCache(c CacheInvalidator) *SlotGeneration {
	j.cache = c
	return j
}

func (j *SlotGeneration) WithReports(r ReportStore) *SlotGeneration {
	j.reports = r
	return j
}

func (j *SlotGeneration) WithGeneratorOptions(opts ...slotgen.Option) *SlotGeneration {
	j.genOpts = append(j.genOpts, opts...)
	return j
}

// GormOpener opens a fresh Postgres pool for each run.
func GormOpener(cfg *config.Config) StoreOpener {
	return func(ctx context.Context) (domain.Store, func() error, error) {
		gdb, closeDB, err := dbpkg.Open(cfg)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewSlotGormRepository(gdb), closeDB, nil
	}
}

func (j *SlotGeneration) Run(ctx context.Context) error {
	store, release, err := j.open(ctx)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if cerr := release(); cerr != nil {
			j.log.Warn("failed to release store", logger.Error(cerr))
		}
	}()

	opts := append([]slotgen.Option{
		slotgen.WithHorizonDays(j.cfg.SlotHorizonDays),
		slotgen.WithLocation(j.cfg.Location()),
	}, j.genOpts...)

	gen := slotgen.NewGenerator(store, j.log, opts...)
	rep, runErr := gen.Run(ctx)

	if j.cache != nil && rep.Slots > 0 {
		if err := j.cache.Invalidate(ctx); err != nil {
			j.log.Warn("failed to invalidate slot cache", logger.Error(err))
		}
	}

	if j.reports != nil {
		key, err := j.reports.Store(ctx, rep)
		if err != nil {
			j.log.Warn("failed to archive run report", logger.Error(err))
		} else {
			j.log.Debug("run report archived", logger.String("key", key))
		}
	}

	return runErr
}

// FromConfig wires the job with the Postgres opener plus the optional Redis
// cache and S3 archive. Optional backends that fail to connect are logged and
// skipped. The returned func closes what was opened.
func FromConfig(ctx context.Context, cfg *config.Config, log logger.Logger) (*SlotGeneration, func()) {
	job := NewSlotGeneration(cfg, log, GormOpener(cfg))
	cleanup := func() {}

	if cfg.RedisEnabled() {
		rdb, err := cache.Connect(ctx, cfg)
		if err != nil {
			log.Warn("slot cache disabled", logger.Error(err))
		} else {
			job.WithCache(cache.NewSlotCache(rdb, cfg.SlotCacheTTL))
			cleanup = func() { _ = rdb.Close() }
		}
	}

	if cfg.ReportsEnabled() {
		job.WithReports(archive.NewReportArchive(archive.NewS3Client(cfg), cfg.ReportBucket))
	}

	return job, cleanup
}
