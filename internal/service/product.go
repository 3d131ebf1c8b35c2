package service

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/shop/internal/models"
	"github.com/Skotchmaster/shop/internal/repo"
	"github.com/Skotchmaster/shop/internal/transport"
)

type ProductService struct {
	Repo *repo.GormRepo
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	items, err := s.Repo.ListProducts(ctx)
	if err != nil {
		return nil, storeErr("list products", err)
	}
	return items, nil
}

// ByCategory does not check that the category exists; an unknown id yields
// an empty list.
func (s *ProductService) ByCategory(ctx context.Context, categoryID uint) ([]models.Product, error) {
	items, err := s.Repo.ListProductsByCategory(ctx, categoryID)
	if err != nil {
		return nil, storeErr("list products by category", err)
	}
	return items, nil
}

func (s *ProductService) Get(ctx context.Context, id uint) (*models.Product, error) {
	prod, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, storeErr("get product", err)
	}
	return prod, nil
}

func (s *ProductService) Create(ctx context.Context, req transport.ProductRequest) (*models.Product, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	prod := &models.Product{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Version:     1,
	}
	if err := s.Repo.CreateProduct(ctx, prod); err != nil {
		return nil, storeErr("create product", err)
	}
	return s.Get(ctx, prod.ID)
}

func (s *ProductService) Update(ctx context.Context, id uint, req transport.ProductRequest) (*models.Product, error) {
	if req.ID != id {
		return nil, fmt.Errorf("update product %d: payload id %d: %w", id, req.ID, ErrNotFound)
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	prod := &models.Product{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Version:     req.Version,
	}
	if err := s.Repo.ReplaceProduct(ctx, prod); err != nil {
		return nil, storeErr("update product", err)
	}
	return s.Get(ctx, id)
}

func (s *ProductService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Repo.GetProduct(ctx, id); err != nil {
		return storeErr("delete product", err)
	}
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		return storeErr("delete product", err)
	}
	return nil
}
