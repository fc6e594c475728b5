package user

import (
	"context"

	"github.com/BruksfildServices01/booking-api/internal/models"
)

type Filter struct {
	ID   *uint
	Name string
}

type Repository interface {
	List(ctx context.Context, f Filter) ([]models.User, error)
	Get(ctx context.Context, id uint) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
	Update(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id uint) error
}
