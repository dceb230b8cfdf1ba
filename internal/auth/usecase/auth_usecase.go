package usecase

import (
	"context"
	"errors"

	"finance_api/domain"
	"finance_api/internal/service/logger"
	"finance_api/internal/service/middleware"
	"finance_api/internal/service/validation"

	"go.uber.org/zap"
)

type AuthUsecase interface {
	Register(ctx context.Context, body map[string]interface{}) (*domain.User, error)
	Login(ctx context.Context, body map[string]interface{}) (uint, error)
}

type authUsecase struct {
	authRepository domain.AuthRepository
}

func NewAuthUsecase(authRepository domain.AuthRepository) AuthUsecase {
	return &authUsecase{
		authRepository: authRepository,
	}
}

// Register hashes the supplied password and stores only the hash; the raw
// password is never persisted.
func (uc *authUsecase) Register(ctx context.Context, body map[string]interface{}) (*domain.User, error) {
	requestID := middleware.GetRequestID(ctx)

	creds, fieldErrs := validation.ParseCredentials(body)
	if fieldErrs != nil {
		logger.AccessLogger.Warn("Invalid registration data", zap.String("request_id", requestID))
		return nil, domain.NewValidationError("invalid user data", fieldErrs)
	}

	passwordHash, err := middleware.HashPassword(creds.Password)
	if err != nil {
		logger.AccessLogger.Error("Failed to hash password", zap.String("request_id", requestID), zap.Error(err))
		return nil, err
	}

	return uc.authRepository.CreateUser(ctx, creds.Name, passwordHash)
}

// Login fails with the same error for an unknown name and a wrong password so
// the two causes cannot be told apart externally.
func (uc *authUsecase) Login(ctx context.Context, body map[string]interface{}) (uint, error) {
	requestID := middleware.GetRequestID(ctx)

	creds, fieldErrs := validation.ParseCredentials(body)
	if fieldErrs != nil {
		logger.AccessLogger.Warn("Invalid login data", zap.String("request_id", requestID))
		return 0, domain.ErrBadCredentials
	}

	user, err := uc.authRepository.GetUserByName(ctx, creds.Name)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			return 0, domain.ErrBadCredentials
		}
		return 0, err
	}

	if !middleware.CheckPassword(user.PasswordHash, creds.Password) {
		logger.AccessLogger.Warn("Password verification failed", zap.String("request_id", requestID))
		return 0, domain.ErrBadCredentials
	}

	return user.ID, nil
}
