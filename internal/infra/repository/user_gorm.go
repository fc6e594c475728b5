package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/booking-api/internal/domain/user"
	"github.com/BruksfildServices01/booking-api/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) List(
	ctx context.Context,
	f domain.Filter,
) ([]models.User, error) {

	q := r.db.WithContext(ctx)
	if f.ID != nil {
		q = q.Where("id = ?", *f.ID)
	}
	if f.Name != "" {
		q = q.Where("name = ?", f.Name)
	}

	var out []models.User
	if err := q.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UserGormRepository) Get(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *UserGormRepository) Create(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserGormRepository) Update(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserGormRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID[models.User](ctx, r.db, id)
}

var _ domain.Repository = (*UserGormRepository)(nil)
