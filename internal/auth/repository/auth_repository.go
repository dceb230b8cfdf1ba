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

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) domain.AuthRepository {
	return &authRepository{
		db: db,
	}
}

func (r *authRepository) CreateUser(ctx context.Context, name string, passwordHash string) (*domain.User, error) {
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

func (r *authRepository) GetUserByName(ctx context.Context, name string) (*domain.User, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("GetUserByName called", zap.String("request_id", requestID), zap.String("name", name))

	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.DBLogger.Warn("User not found", zap.String("request_id", requestID), zap.String("name", name))
			return nil, domain.NewNotFoundError("user")
		}
		logger.DBLogger.Error("Error getting user", zap.String("request_id", requestID), zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return &user, nil
}
