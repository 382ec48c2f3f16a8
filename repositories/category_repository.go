package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tonehunt-catalog/models"
)

type CategoryRepository interface {
	GetActive(ctx context.Context) ([]models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) GetActive(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Where("active = ? AND deleted = ?", true, false).
		Order("display_order asc").
		Find(&categories).Error
	return categories, classifyError(err)
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).
		Where("slug = ? AND active = ? AND deleted = ?", slug, true, false).
		First(&category).Error
	if err != nil {
		return nil, classifyLookupError(err)
	}
	return &category, nil
}

func classifyLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %w", models.ErrNotFound, err)
	}
	return classifyError(err)
}
