package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/booking-api/internal/domain/resource"
	"github.com/BruksfildServices01/booking-api/internal/httperr"
	"github.com/BruksfildServices01/booking-api/internal/models"
)

type ResourceGormRepository struct {
	db *gorm.DB
}

func NewResourceGormRepository(db *gorm.DB) *ResourceGormRepository {
	return &ResourceGormRepository{db: db}
}

func (r *ResourceGormRepository) List(
	ctx context.Context,
	f domain.Filter,
) ([]models.Resource, error) {

	q := r.db.WithContext(ctx)
	if f.ID != nil {
		q = q.Where("id = ?", *f.ID)
	}
	if f.Title != "" {
		q = q.Where("title = ?", f.Title)
	}

	var out []models.Resource
	if err := q.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ResourceGormRepository) Get(
	ctx context.Context,
	id uint,
) (*models.Resource, error) {

	var res models.Resource
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &res, nil
}

func (r *ResourceGormRepository) Create(ctx context.Context, res *models.Resource) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *ResourceGormRepository) Update(ctx context.Context, res *models.Resource) error {
	return r.db.WithContext(ctx).Save(res).Error
}

func (r *ResourceGormRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID[models.Resource](ctx, r.db, id)
}

// --------------------------------------------------
// helpers shared by the CRUD repositories
// --------------------------------------------------

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return err
}

func deleteByID[T any](ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return nil
}

var _ domain.Repository = (*ResourceGormRepository)(nil)
