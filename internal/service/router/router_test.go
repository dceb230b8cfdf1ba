package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authController "finance_api/internal/auth/controller"
	authUsecase "finance_api/internal/auth/usecase"
	categoryController "finance_api/internal/category/controller"
	categoryUsecase "finance_api/internal/category/usecase"
	recordController "finance_api/internal/record/controller"
	recordUsecase "finance_api/internal/record/usecase"
	"finance_api/internal/service/logger"
	"finance_api/internal/service/middleware"
	userController "finance_api/internal/user/controller"
	userUsecase "finance_api/internal/user/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T, authEnabled bool) http.Handler {
	t.Helper()
	logger.AccessLogger = zap.NewNop()
	logger.DBLogger = zap.NewNop()

	jwtToken, err := middleware.NewJwtToken("test-secret")
	require.NoError(t, err)

	authHandler := authController.NewAuthHandler(authUsecase.NewAuthUsecase(nil), jwtToken)
	userHandler := userController.NewUserHandler(userUsecase.NewUserUsecase(nil))
	categoryHandler := categoryController.NewCategoryHandler(categoryUsecase.NewCategoryUsecase(nil))
	recordHandler := recordController.NewRecordHandler(recordUsecase.NewRecordUsecase(nil))

	return SetUpRoutes(authHandler, userHandler, categoryHandler, recordHandler, jwtToken, authEnabled)
}

func TestHelloRoute(t *testing.T) {
	router := newTestRouter(t, false)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<p>Hello, World!</p>", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
}

func TestHealthCheckRoute(t *testing.T) {
	router := newTestRouter(t, false)

	r := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "OK", resp["status"])
	assert.NotEmpty(t, resp["timestamp"])
}

func TestAuthDisabledVariant(t *testing.T) {
	router := newTestRouter(t, false)

	t.Run("Register Route Absent", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/register", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Record Query Reaches Handler Without Token", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/record", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		// no filters supplied, so the handler itself answers 400
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthEnabledVariant(t *testing.T) {
	router := newTestRouter(t, true)

	t.Run("Protected Route Rejects Missing Token", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/users", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "token_missing", resp["error"])
	})

	t.Run("Valid Token Reaches Handler", func(t *testing.T) {
		jwtToken, err := middleware.NewJwtToken("test-secret")
		require.NoError(t, err)
		tokenString, err := jwtToken.Create(1, time.Now().Add(time.Hour).Unix())
		require.NoError(t, err)

		r := httptest.NewRequest(http.MethodGet, "/record", nil)
		r.Header.Set("Authorization", "Bearer "+tokenString)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		// past the guard; the handler rejects the empty filter set
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Healthcheck Stays Open", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
