package service

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/shop/internal/models"
	"github.com/Skotchmaster/shop/internal/repo"
	"github.com/Skotchmaster/shop/internal/transport"
)

type CategoryService struct {
	Repo *repo.GormRepo
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	items, err := s.Repo.ListCategories(ctx)
	if err != nil {
		return nil, storeErr("list categories", err)
	}
	return items, nil
}

func (s *CategoryService) Get(ctx context.Context, id uint) (*models.Category, error) {
	cat, err := s.Repo.GetCategory(ctx, id)
	if err != nil {
		return nil, storeErr("get category", err)
	}
	return cat, nil
}

func (s *CategoryService) Create(ctx context.Context, req transport.CategoryRequest) (*models.Category, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	cat := &models.Category{Name: req.Name, Version: 1}
	if err := s.Repo.CreateCategory(ctx, cat); err != nil {
		return nil, storeErr("create category", err)
	}
	return cat, nil
}

func (s *CategoryService) Update(ctx context.Context, id uint, req transport.CategoryRequest) (*models.Category, error) {
	if req.ID != id {
		return nil, fmt.Errorf("update category %d: payload id %d: %w", id, req.ID, ErrNotFound)
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	cat := &models.Category{ID: id, Name: req.Name, Version: req.Version}
	if err := s.Repo.ReplaceCategory(ctx, cat); err != nil {
		return nil, storeErr("update category", err)
	}
	return s.Get(ctx, id)
}

func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Repo.GetCategory(ctx, id); err != nil {
		return storeErr("delete category", err)
	}
	if err := s.Repo.DeleteCategory(ctx, id); err != nil {
		return storeErr("delete category", err)
	}
	return nil
}
