package usecase

import (
	"context"

	"finance_api/domain"
	"finance_api/internal/service/logger"
	"finance_api/internal/service/middleware"
	"finance_api/internal/service/validation"

	"go.uber.org/zap"
)

type CategoryUsecase interface {
	CreateCategory(ctx context.Context, body map[string]interface{}) (*domain.Category, error)
	// ListCategories with an empty rawUserID returns the global set.
	ListCategories(ctx context.Context, rawUserID string) ([]domain.Category, error)
	DeleteCategory(ctx context.Context, body map[string]interface{}) (*domain.Category, error)
}

type categoryUsecase struct {
	categoryRepository domain.CategoryRepository
}

func NewCategoryUsecase(categoryRepository domain.CategoryRepository) CategoryUsecase {
	return &categoryUsecase{
		categoryRepository: categoryRepository,
	}
}

func (uc *categoryUsecase) CreateCategory(ctx context.Context, body map[string]interface{}) (*domain.Category, error) {
	requestID := middleware.GetRequestID(ctx)

	data, fieldErrs := validation.ParseCategoryCreate(body)
	if fieldErrs != nil {
		logger.AccessLogger.Warn("Invalid category data", zap.String("request_id", requestID))
		return nil, domain.NewValidationError("invalid category data", fieldErrs)
	}

	return uc.categoryRepository.CreateCategory(ctx, data.Name, data.OwnerID)
}

func (uc *categoryUsecase) ListCategories(ctx context.Context, rawUserID string) ([]domain.Category, error) {
	requestID := middleware.GetRequestID(ctx)

	params, fieldErrs := validation.ParseCategoryQuery(rawUserID)
	if fieldErrs != nil {
		logger.AccessLogger.Warn("Invalid category query", zap.String("request_id", requestID))
		return nil, domain.NewValidationError("invalid query params", fieldErrs)
	}

	return uc.categoryRepository.ListCategories(ctx, params.OwnerID)
}

func (uc *categoryUsecase) DeleteCategory(ctx context.Context, body map[string]interface{}) (*domain.Category, error) {
	requestID := middleware.GetRequestID(ctx)

	id, fieldErrs := validation.ParseCategoryDelete(body)
	if fieldErrs != nil {
		logger.AccessLogger.Warn("Invalid category id", zap.String("request_id", requestID))
		return nil, domain.NewValidationError("invalid category id", fieldErrs)
	}

	return uc.categoryRepository.DeleteCategory(ctx, id)
}
