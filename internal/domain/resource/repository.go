package resource

import (
	"context"

	"github.com/BruksfildServices01/booking-api/internal/models"
)

type Filter struct {
	ID    *uint
	Title string
}

type Repository interface {
	List(ctx context.Context, f Filter) ([]models.Resource, error)
	Get(ctx context.Context, id uint) (*models.Resource, error)
	Create(ctx context.Context, r *models.Resource) error
	Update(ctx context.Context, r *models.Resource) error
	Delete(ctx context.Context, id uint) error
}
