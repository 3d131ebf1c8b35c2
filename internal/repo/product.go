package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/shop/internal/models"
)

func (r *GormRepo) products(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).Preload("Category")
}

func (r *GormRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	items := make([]models.Product, 0)
	if err := r.products(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) ListProductsByCategory(ctx context.Context, categoryID uint) ([]models.Product, error) {
	items := make([]models.Product, 0)
	if err := r.products(ctx).Where("category_id = ?", categoryID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var prod models.Product
	if err := r.products(ctx).Where("id = ?", id).First(&prod).Error; err != nil {
		return nil, err
	}
	return &prod, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) error {
	return r.DB.WithContext(ctx).Omit("Category").Create(prod).Error
}

func (r *GormRepo) ReplaceProduct(ctx context.Context, prod *models.Product) error {
	return r.replace(ctx, &models.Product{}, prod.ID, prod.Version, map[string]any{
		"title":       prod.Title,
		"description": prod.Description,
		"price":       prod.Price,
		"category_id": prod.CategoryID,
	})
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id uint) error {
	return r.remove(ctx, &models.Product{}, id)
}
