package repository

import (
	"context"
	"errors"
	"time"

	"finance_api/domain"
	"finance_api/internal/service/logger"
	"finance_api/internal/service/middleware"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type recordRepository struct {
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) domain.RecordRepository {
	return &recordRepository{
		db: db,
	}
}

// CreateRecord resolves the user and category and applies the ownership rule
// inside one transaction: a private category belongs exclusively to its owner
// for transaction purposes.
func (r *recordRepository) CreateRecord(ctx context.Context, userID uint, categoryID uint, datetime time.Time, amount decimal.Decimal) (*domain.Record, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("CreateRecord called",
		zap.String("request_id", requestID),
		zap.Uint("user_id", userID),
		zap.Uint("category_id", categoryID),
	)

	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		logger.DBLogger.Error("Failed to start transaction", zap.String("request_id", requestID), zap.Error(tx.Error))
		return nil, tx.Error
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	var user domain.User
	if err := tx.First(&user, "id = ?", userID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.DBLogger.Warn("User not found", zap.String("request_id", requestID), zap.Uint("user_id", userID))
			return nil, domain.NewNotFoundError("user")
		}
		logger.DBLogger.Error("Failed to get user", zap.String("request_id", requestID), zap.Error(err))
		return nil, err
	}

	var category domain.Category
	if err := tx.First(&category, "id = ?", categoryID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.DBLogger.Warn("Category not found", zap.String("request_id", requestID), zap.Uint("category_id", categoryID))
			return nil, domain.NewNotFoundError("category")
		}
		logger.DBLogger.Error("Failed to get category", zap.String("request_id", requestID), zap.Error(err))
		return nil, err
	}

	if category.OwnerID != nil && *category.OwnerID != user.ID {
		tx.Rollback()
		logger.DBLogger.Warn("Category not available for this user",
			zap.String("request_id", requestID),
			zap.Uint("user_id", userID),
			zap.Uint("category_id", categoryID),
		)
		return nil, &domain.ForbiddenError{Message: "category not available for this user"}
	}

	record := domain.Record{
		UserID:     user.ID,
		CategoryID: category.ID,
		Datetime:   datetime,
		Amount:     amount,
	}
	if err := tx.Create(&record).Error; err != nil {
		tx.Rollback()
		logger.DBLogger.Error("Failed to create record", zap.String("request_id", requestID), zap.Error(err))
		return nil, middleware.TranslateDBError(err)
	}

	if err := tx.Commit().Error; err != nil {
		logger.DBLogger.Error("Failed to commit transaction", zap.String("request_id", requestID), zap.Error(err))
		return nil, middleware.TranslateDBError(err)
	}

	logger.DBLogger.Info("Successfully created record", zap.String("request_id", requestID), zap.Uint("record_id", record.ID))
	return &record, nil
}

func (r *recordRepository) GetRecordByID(ctx context.Context, id uint) (*domain.Record, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("GetRecordByID called", zap.String("request_id", requestID), zap.Uint("record_id", id))

	var record domain.Record
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.DBLogger.Warn("Record not found", zap.String("request_id", requestID), zap.Uint("record_id", id))
			return nil, domain.NewNotFoundError("record")
		}
		logger.DBLogger.Error("Error getting record", zap.String("request_id", requestID), zap.Uint("record_id", id), zap.Error(err))
		return nil, err
	}
	return &record, nil
}

func (r *recordRepository) DeleteRecord(ctx context.Context, id uint) (*domain.Record, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("DeleteRecord called", zap.String("request_id", requestID), zap.Uint("record_id", id))

	var record domain.Record
	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&record, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.DBLogger.Warn("Record not found", zap.String("request_id", requestID), zap.Uint("record_id", id))
				return domain.NewNotFoundError("record")
			}
			return err
		}
		if err := tx.Delete(&domain.Record{}, "id = ?", id).Error; err != nil {
			logger.DBLogger.Error("Error deleting record", zap.String("request_id", requestID), zap.Uint("record_id", id), zap.Error(err))
			return middleware.TranslateDBError(err)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	logger.DBLogger.Info("Successfully deleted record", zap.String("request_id", requestID), zap.Uint("record_id", id))
	return &record, nil
}

// QueryRecords applies the supplied filters with logical AND. Results are
// ordered by datetime descending, id descending as the tie-break.
func (r *recordRepository) QueryRecords(ctx context.Context, filter domain.RecordFilter) ([]domain.Record, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("QueryRecords called", zap.String("request_id", requestID))

	query := r.db.WithContext(ctx)
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}

	var records []domain.Record
	if err := query.Order("datetime DESC, id DESC").Find(&records).Error; err != nil {
		logger.DBLogger.Error("Error querying records", zap.String("request_id", requestID), zap.Error(err))
		return nil, err
	}
	return records, nil
}
