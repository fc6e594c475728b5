package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/booking-api/internal/domain/booking"
	"github.com/BruksfildServices01/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func (r *BookingGormRepository) List(
	ctx context.Context,
	f domain.Filter,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx)
	if f.ID != nil {
		q = q.Where("id = ?", *f.ID)
	}
	if f.ResourceID != nil {
		q = q.Where("resource_id = ?", *f.ResourceID)
	}
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}

	var out []models.Booking
	if err := q.Order("booked_from ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BookingGormRepository) Get(ctx context.Context, id uint) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (r *BookingGormRepository) Create(ctx context.Context, b *models.Booking) error {
	return r.db.WithContext(ctx).Omit("Resource", "User").Create(b).Error
}

func (r *BookingGormRepository) Update(ctx context.Context, b *models.Booking) error {
	return r.db.WithContext(ctx).Omit("Resource", "User").Save(b).Error
}

func (r *BookingGormRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID[models.Booking](ctx, r.db, id)
}

var _ domain.Repository = (*BookingGormRepository)(nil)
