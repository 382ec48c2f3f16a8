package repositories

import (
	"context"

	"gorm.io/gorm"

	"tonehunt-catalog/models"
)

type TagRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Tag, error)
	GetAll(ctx context.Context) ([]models.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) GetByID(ctx context.Context, id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.WithContext(ctx).
		Where("active = ? AND deleted = ?", true, false).
		First(&tag, id).Error
	if err != nil {
		return nil, classifyLookupError(err)
	}
	return &tag, nil
}

func (r *tagRepository) GetAll(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.WithContext(ctx).
		Where("active = ? AND deleted = ?", true, false).
		Order("name asc").
		Find(&tags).Error
	return tags, classifyError(err)
}
