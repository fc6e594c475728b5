package booking

import (
	"context"

	"github.com/BruksfildServices01/booking-api/internal/models"
)

type Filter struct {
	ID         *uint
	ResourceID *uint
	UserID     *uint
}

type Repository interface {
	List(ctx context.Context, f Filter) ([]models.Booking, error)
	Get(ctx context.Context, id uint) (*models.Booking, error)
	Create(ctx context.Context, b *models.Booking) error
	Update(ctx context.Context, b *models.Booking) error
	Delete(ctx context.Context, id uint) error
}
