package usecase

import (
	"context"
	"errors"
	"testing"

	"finance_api/domain"
	"finance_api/internal/service/logger"
	"finance_api/internal/service/middleware"
	"finance_api/internal/user/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupUserUsecase() (*mocks.MockUserRepository, UserUsecase) {
	logger.AccessLogger = zap.NewNop()
	mockRepo := new(mocks.MockUserRepository)
	return mockRepo, NewUserUsecase(mockRepo)
}

func TestCreateUser(t *testing.T) {
	t.Run("Without Password Stores Empty Hash", func(t *testing.T) {
		mockRepo, uc := setupUserUsecase()

		mockRepo.On("CreateUser", mock.Anything, "Nazar", "").
			Return(&domain.User{ID: 1, Name: "Nazar"}, nil)

		user, err := uc.CreateUser(context.Background(), map[string]interface{}{"name": "Nazar"})
		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("With Password Stores Hash", func(t *testing.T) {
		mockRepo, uc := setupUserUsecase()

		mockRepo.On("CreateUser", mock.Anything, "Nazar", mock.MatchedBy(func(hash string) bool {
			return middleware.CheckPassword(hash, "Secure123")
		})).Return(&domain.User{ID: 1, Name: "Nazar"}, nil)

		_, err := uc.CreateUser(context.Background(), map[string]interface{}{
			"name":     "Nazar",
			"password": "Secure123",
		})
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Invalid Name", func(t *testing.T) {
		mockRepo, uc := setupUserUsecase()

		_, err := uc.CreateUser(context.Background(), map[string]interface{}{"name": "   "})
		var validationErr *domain.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "invalid user data", validationErr.Message)
		assert.Equal(t, "name cannot be empty", validationErr.Fields["name"])
		mockRepo.AssertNotCalled(t, "CreateUser")
	})
}

func TestGetUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockRepo, uc := setupUserUsecase()

		mockRepo.On("GetUserByID", mock.Anything, uint(3)).
			Return(&domain.User{ID: 3, Name: "Ihor"}, nil)

		user, err := uc.GetUser(context.Background(), "3")
		require.NoError(t, err)
		assert.Equal(t, "Ihor", user.Name)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		mockRepo, uc := setupUserUsecase()

		_, err := uc.GetUser(context.Background(), "abc")
		var validationErr *domain.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "invalid user_id", validationErr.Message)
		mockRepo.AssertNotCalled(t, "GetUserByID")
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockRepo, uc := setupUserUsecase()

		mockRepo.On("DeleteUser", mock.Anything, uint(1)).
			Return(&domain.User{ID: 1, Name: "Nazar"}, nil)

		user, err := uc.DeleteUser(context.Background(), "1")
		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		mockRepo, uc := setupUserUsecase()

		_, err := uc.DeleteUser(context.Background(), "0")
		var validationErr *domain.ValidationError
		require.True(t, errors.As(err, &validationErr))
		mockRepo.AssertNotCalled(t, "DeleteUser")
	})
}
