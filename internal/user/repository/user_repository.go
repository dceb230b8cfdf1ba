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

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, name string, passwordHash string) (*domain.User, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("CreateUser called", zap.String("request_id", requestID), zap.String("name", name))

	user := domain.User{Name: name, PasswordHash: passwordHash}
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		logger.DBLogger.Error("Error creating user", zap.String("request_id", requestID), zap.String("name", name), zap.Error(err))
		return nil, middleware.TranslateDBError(err)
	}

	logger.DBLogger.Info("Successfully created user", zap.String("request_id", requestID), zap.Uint("user_id", user.ID))
	return &user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id uint) (*domain.User, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("GetUserByID called", zap.String("request_id", requestID), zap.Uint("user_id", id))

	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.DBLogger.Warn("User not found", zap.String("request_id", requestID), zap.Uint("user_id", id))
			return nil, domain.NewNotFoundError("user")
		}
		logger.DBLogger.Error("Error getting user", zap.String("request_id", requestID), zap.Uint("user_id", id), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("ListUsers called", zap.String("request_id", requestID))

	var users []domain.User
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		logger.DBLogger.Error("Error listing users", zap.String("request_id", requestID), zap.Error(err))
		return nil, err
	}
	return users, nil
}

// DeleteUser returns the pre-delete snapshot. The user's records and owned
// categories go with it through the ON DELETE CASCADE foreign keys.
func (r *userRepository) DeleteUser(ctx context.Context, id uint) (*domain.User, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("DeleteUser called", zap.String("request_id", requestID), zap.Uint("user_id", id))

	var user domain.User
	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.DBLogger.Warn("User not found", zap.String("request_id", requestID), zap.Uint("user_id", id))
				return domain.NewNotFoundError("user")
			}
			return err
		}
		if err := tx.Delete(&domain.User{}, "id = ?", id).Error; err != nil {
			logger.DBLogger.Error("Error deleting user", zap.String("request_id", requestID), zap.Uint("user_id", id), zap.Error(err))
			return middleware.TranslateDBError(err)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	logger.DBLogger.Info("Successfully deleted user", zap.String("request_id", requestID), zap.Uint("user_id", id))
	return &user, nil
}
