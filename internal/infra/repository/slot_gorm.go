package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/booking-api/internal/domain/slot"
	"github.com/BruksfildServices01/booking-api/internal/models"
)

// SlotGormRepository serves both the generator and the slots endpoint.
type SlotGormRepository struct {
	db *gorm.DB
}

func NewSlotGormRepository(db *gorm.DB) *SlotGormRepository {
	return &SlotGormRepository{db: db}
}

func (r *SlotGormRepository) ListResources(ctx context.Context) ([]models.Resource, error) {
	var out []models.Resource
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// InsertSlot runs outside any transaction so each row commits on its own.
func (r *SlotGormRepository) InsertSlot(ctx context.Context, s *models.Slot) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SlotGormRepository) ListSlots(
	ctx context.Context,
	f domain.Filter,
) ([]models.Slot, error) {

	q := r.db.WithContext(ctx).Model(&models.Slot{})

	switch {
	case f.From != nil && f.To != nil:
		q = q.Where("timestamp >= ? AND timestamp < ?", *f.From, nextDay(*f.To))
	case f.From != nil:
		q = q.Where("timestamp >= ? AND timestamp < ?", *f.From, nextDay(*f.From))
	case f.To != nil:
		q = q.Where("timestamp_end >= ? AND timestamp_end < ?", *f.To, nextDay(*f.To))
	}

	if f.Resource != "" {
		q = q.Where("',' || available_resources || ',' LIKE ?", "%,"+f.Resource+",%")
	}

	var out []models.Slot
	if err := q.Order("timestamp ASC").Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func nextDay(d time.Time) time.Time {
	return d.AddDate(0, 0, 1)
}

var _ domain.Repository = (*SlotGormRepository)(nil)
