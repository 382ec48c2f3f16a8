package services

import (
	"context"
	"errors"

	"tonehunt-catalog/models"
	"tonehunt-catalog/repositories"
)

type CategoryService interface {
	GetCategories(ctx context.Context) ([]models.Category, error)
	ResolveSlug(ctx context.Context, slug string) (*models.Category, error)
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) GetCategories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.GetActive(ctx)
}

// ResolveSlug turns a category slug from the query string into a category.
// An empty slug resolves to nil.
func (s *categoryService) ResolveSlug(ctx context.Context, slug string) (*models.Category, error) {
	if slug == "" {
		return nil, nil
	}
	category, err := s.categoryRepo.GetBySlug(ctx, slug)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.InvalidParameter("category", "unknown category %q", slug)
	}
	if err != nil {
		return nil, err
	}
	return category, nil
}
