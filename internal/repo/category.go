package repo

import (
	"context"

	"github.com/Skotchmaster/shop/internal/models"
)

func (r *GormRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	items := make([]models.Category, 0)
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	var cat models.Category
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *GormRepo) CreateCategory(ctx context.Context, cat *models.Category) error {
	return r.DB.WithContext(ctx).Create(cat).Error
}

func (r *GormRepo) ReplaceCategory(ctx context.Context, cat *models.Category) error {
	return r.replace(ctx, &models.Category{}, cat.ID, cat.Version, map[string]any{
		"name": cat.Name,
	})
}

func (r *GormRepo) DeleteCategory(ctx context.Context, id uint) error {
	return r.remove(ctx, &models.Category{}, id)
}
