package usecase

import (
	"context"

	"finance_api/domain"
	"finance_api/internal/service/logger"
	"finance_api/internal/service/middleware"
	"finance_api/internal/service/validation"

	"go.uber.org/zap"
)

type UserUsecase interface {
	CreateUser(ctx context.Context, body map[string]interface{}) (*domain.User, error)
	GetUser(ctx context.Context, rawID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	DeleteUser(ctx context.Context, rawID string) (*domain.User, error)
}

type userUsecase struct {
	userRepository domain.UserRepository
}

func NewUserUsecase(userRepository domain.UserRepository) UserUsecase {
	return &userUsecase{
		userRepository: userRepository,
	}
}

func (uc *userUsecase) CreateUser(ctx context.Context, body map[string]interface{}) (*domain.User, error) {
	requestID := middleware.GetRequestID(ctx)

	data, fieldErrs := validation.ParseUserCreate(body)
	if fieldErrs != nil {
		logger.AccessLogger.Warn("Invalid user data", zap.String("request_id", requestID))
		return nil, domain.NewValidationError("invalid user data", fieldErrs)
	}

	passwordHash := ""
	if data.Password != "" {
		var err error
		passwordHash, err = middleware.HashPassword(data.Password)
		if err != nil {
			logger.AccessLogger.Error("Failed to hash password", zap.String("request_id", requestID), zap.Error(err))
			return nil, err
		}
	}

	return uc.userRepository.CreateUser(ctx, data.Name, passwordHash)
}

func (uc *userUsecase) GetUser(ctx context.Context, rawID string) (*domain.User, error) {
	id, fieldErrs := validation.ParseID("user_id", rawID)
	if fieldErrs != nil {
		return nil, domain.NewValidationError("invalid user_id", fieldErrs)
	}
	return uc.userRepository.GetUserByID(ctx, id)
}

func (uc *userUsecase) ListUsers(ctx context.Context) ([]domain.User, error) {
	return uc.userRepository.ListUsers(ctx)
}

func (uc *userUsecase) DeleteUser(ctx context.Context, rawID string) (*domain.User, error) {
	id, fieldErrs := validation.ParseID("user_id", rawID)
	if fieldErrs != nil {
		return nil, domain.NewValidationError("invalid user_id", fieldErrs)
	}
	return uc.userRepository.DeleteUser(ctx, id)
}
