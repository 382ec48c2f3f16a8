package repositories

import (
	"context"

	"gorm.io/gorm"

	"tonehunt-catalog/models"
)

type CountsRepository interface {
	GetAll(ctx context.Context) ([]models.Counts, error)
}

type countsRepository struct {
	db *gorm.DB
}

func NewCountsRepository(db *gorm.DB) CountsRepository {
	return &countsRepository{db: db}
}

func (r *countsRepository) GetAll(ctx context.Context) ([]models.Counts, error) {
	var counts []models.Counts
	err := r.db.WithContext(ctx).Order("name asc").Find(&counts).Error
	return counts, classifyError(err)
}
