package repository

import (
	"context"
	"errors"

	"finance_api/domain"
	"finance_api/internal/service/logger"
	"finance_api/internal/service/middleware"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) domain.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// CreateCategory resolves the owner inside the write transaction, so a
// concurrent owner deletion cannot leave an orphaned private category.
func (r *categoryRepository) CreateCategory(ctx context.Context, name string, ownerID *uint) (*domain.Category, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("CreateCategory called", zap.String("request_id", requestID), zap.String("name", name))

	category := domain.Category{Name: name, OwnerID: ownerID}
	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ownerID != nil {
			var owner domain.User
			if err := tx.First(&owner, "id = ?", *ownerID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					logger.DBLogger.Warn("Owner not found", zap.String("request_id", requestID), zap.Uint("owner_id", *ownerID))
					return domain.NewNotFoundError("user")
				}
				return err
			}
		}
		if err := tx.Create(&category).Error; err != nil {
			logger.DBLogger.Error("Error creating category", zap.String("request_id", requestID), zap.String("name", name), zap.Error(err))
			return middleware.TranslateDBError(err)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	logger.DBLogger.Info("Successfully created category", zap.String("request_id", requestID), zap.Uint("category_id", category.ID))
	return &category, nil
}

func (r *categoryRepository) ListCategories(ctx context.Context, ownerID *uint) ([]domain.Category, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("ListCategories called", zap.String("request_id", requestID))

	query := r.db.WithContext(ctx)
	if ownerID == nil {
		query = query.Where("owner_id IS NULL")
	} else {
		query = query.Where("owner_id = ?", *ownerID)
	}

	var categories []domain.Category
	if err := query.Order("id ASC").Find(&categories).Error; err != nil {
		logger.DBLogger.Error("Error listing categories", zap.String("request_id", requestID), zap.Error(err))
		return nil, err
	}
	return categories, nil
}

// DeleteCategory returns the pre-delete snapshot; all records referencing the
// category are removed by the ON DELETE CASCADE foreign key.
func (r *categoryRepository) DeleteCategory(ctx context.Context, id uint) (*domain.Category, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("DeleteCategory called", zap.String("request_id", requestID), zap.Uint("category_id", id))

	var category domain.Category
	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&category, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.DBLogger.Warn("Category not found", zap.String("request_id", requestID), zap.Uint("category_id", id))
				return domain.NewNotFoundError("category")
			}
			return err
		}
		if err := tx.Delete(&domain.Category{}, "id = ?", id).Error; err != nil {
			logger.DBLogger.Error("Error deleting category", zap.String("request_id", requestID), zap.Uint("category_id", id), zap.Error(err))
			return middleware.TranslateDBError(err)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	logger.DBLogger.Info("Successfully deleted category", zap.String("request_id", requestID), zap.Uint("category_id", id))
	return &category, nil
}
