package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tonehunt-catalog/models"
)

type mockModelRepository struct {
	mock.Mock
}

func (m *mockModelRepository) List(ctx context.Context, q models.ModelQuery) (*models.ModelPage, error) {
	args := m.Called(ctx, q)
	page, _ := args.Get(0).(*models.ModelPage)
	return page, args.Error(1)
}

func (m *mockModelRepository) Trending(ctx context.Context, q models.TrendingQuery) (*models.ModelPage, error) {
	args := m.Called(ctx, q)
	page, _ := args.Get(0).(*models.ModelPage)
	return page, args.Error(1)
}

type mockCountsRepository struct {
	mock.Mock
}

func (m *mockCountsRepository) GetAll(ctx context.Context) ([]models.Counts, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).([]models.Counts)
	return counts, args.Error(1)
}

type mockCategoryRepository struct {
	mock.Mock
}

func (m *mockCategoryRepository) GetActive(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]models.Category)
	return categories, args.Error(1)
}

func (m *mockCategoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	args := m.Called(ctx, slug)
	category, _ := args.Get(0).(*models.Category)
	return category, args.Error(1)
}

func pageOf(total int64, ids ...string) *models.ModelPage {
	page := &models.ModelPage{Total: total, Data: []models.ModelRow{}}
	for _, id := range ids {
		page.Data = append(page.Data, models.ModelRow{ID: id})
	}
	return page
}
