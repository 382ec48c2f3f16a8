package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tonehunt-catalog/models"
)

type mockModelService struct {
	mock.Mock
}

func (m *mockModelService) ListModels(ctx context.Context, params models.ListParams) (*models.ModelPage, error) {
	args := m.Called(ctx, params)
	page, _ := args.Get(0).(*models.ModelPage)
	return page, args.Error(1)
}

func (m *mockModelService) ListTrending(ctx context.Context, params models.TrendingParams) (*models.ModelPage, error) {
	args := m.Called(ctx, params)
	page, _ := args.Get(0).(*models.ModelPage)
	return page, args.Error(1)
}

type mockCategoryService struct {
	mock.Mock
}

func (m *mockCategoryService) GetCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]models.Category)
	return categories, args.Error(1)
}

func (m *mockCategoryService) ResolveSlug(ctx context.Context, slug string) (*models.Category, error) {
	args := m.Called(ctx, slug)
	category, _ := args.Get(0).(*models.Category)
	return category, args.Error(1)
}

type mockTagService struct {
	mock.Mock
}

func (m *mockTagService) GetTags(ctx context.Context) ([]models.Tag, error) {
	args := m.Called(ctx)
	tags, _ := args.Get(0).([]models.Tag)
	return tags, args.Error(1)
}

func (m *mockTagService) GetTag(ctx context.Context, id uint) (*models.Tag, error) {
	args := m.Called(ctx, id)
	tag, _ := args.Get(0).(*models.Tag)
	return tag, args.Error(1)
}

type mockCountsService struct {
	mock.Mock
}

func (m *mockCountsService) GetCounts(ctx context.Context) (*models.CountsResponse, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(*models.CountsResponse)
	return res, args.Error(1)
}
