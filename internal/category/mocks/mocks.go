package mocks

import (
	"context"

	"finance_api/domain"

	"github.com/stretchr/testify/mock"
)

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) CreateCategory(ctx context.Context, name string, ownerID *uint) (*domain.Category, error) {
	args := m.Called(ctx, name, ownerID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, ownerID *uint) ([]domain.Category, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, id uint) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCategoryUsecase struct {
	mock.Mock
}

func (m *MockCategoryUsecase) CreateCategory(ctx context.Context, body map[string]interface{}) (*domain.Category, error) {
	args := m.Called(ctx, body)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryUsecase) ListCategories(ctx context.Context, rawUserID string) ([]domain.Category, error) {
	args := m.Called(ctx, rawUserID)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryUsecase) DeleteCategory(ctx context.Context, body map[string]interface{}) (*domain.Category, error) {
	args := m.Called(ctx, body)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Category), args.Error(1)
	}
	return nil, args.Error(1)
}
