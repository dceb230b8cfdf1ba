package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"finance_api/domain"
	"finance_api/internal/category/usecase"
	"finance_api/internal/service/logger"
	"finance_api/internal/service/middleware"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	usecase usecase.CategoryUsecase
}

func NewCategoryHandler(usecase usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{
		usecase: usecase,
	}
}

// ListCategories returns the global set when no user_id filter is supplied,
// and the given user's private categories when it is.
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received ListCategories request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	categories, err := h.usecase.ListCategories(ctx, r.URL.Query().Get("user_id"))
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}

	writeJSON(w, http.StatusOK, categories, requestID)

	logger.AccessLogger.Info("Completed ListCategories request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusOK),
	)
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received CreateCategory request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	body, err := decodeBody(r)
	if err != nil {
		h.handleError(w, domain.NewValidationError("invalid category data", map[string]string{"body": "malformed JSON"}), requestID)
		return
	}
	sanitizeStringField(body, "name")

	category, err := h.usecase.CreateCategory(ctx, body)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	writeJSON(w, http.StatusCreated, category, requestID)

	logger.AccessLogger.Info("Completed CreateCategory request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusCreated),
	)
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received DeleteCategory request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	body, err := decodeBody(r)
	if err != nil {
		h.handleError(w, domain.NewValidationError("invalid category id", map[string]string{"body": "malformed JSON"}), requestID)
		return
	}

	category, err := h.usecase.DeleteCategory(ctx, body)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"result":        fmt.Sprintf("id: %d successfully deleted", category.ID),
		"category_name": category.Name,
	}, requestID)

	logger.AccessLogger.Info("Completed DeleteCategory request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusOK),
	)
}

func (h *CategoryHandler) handleError(w http.ResponseWriter, err error, requestID string) {
	logger.AccessLogger.Error("Handling error",
		zap.String("request_id", requestID),
		zap.Error(err),
	)
	writeErrorResponse(w, err, requestID)
}

func decodeBody(r *http.Request) (map[string]interface{}, error) {
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	body := map[string]interface{}{}
	if err := decoder.Decode(&body); err != nil {
		return nil, err
	}
	return body, nil
}

func sanitizeStringField(body map[string]interface{}, field string) {
	if s, ok := body[field].(string); ok {
		body[field] = bluemonday.UGCPolicy().Sanitize(s)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.AccessLogger.Error("Failed to encode response",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
	}
}

func writeErrorResponse(w http.ResponseWriter, err error, requestID string) {
	var (
		validationErr *domain.ValidationError
		notFoundErr   *domain.NotFoundError
		conflictErr   *domain.ConflictError
		forbiddenErr  *domain.ForbiddenError
		authErr       *domain.AuthError
	)

	var status int
	var payload map[string]interface{}

	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
		payload = map[string]interface{}{"error": validationErr.Message, "details": validationErr.Fields}
	case errors.As(err, &conflictErr):
		status = http.StatusBadRequest
		payload = map[string]interface{}{"error": "invalid category data", "details": conflictErr.Detail}
	case errors.As(err, &notFoundErr):
		status = http.StatusNotFound
		payload = map[string]interface{}{"error": notFoundErr.Error()}
	case errors.As(err, &forbiddenErr):
		status = http.StatusForbidden
		payload = map[string]interface{}{"error": forbiddenErr.Message}
	case errors.As(err, &authErr):
		status = http.StatusUnauthorized
		payload = map[string]interface{}{"error": authErr.Code, "details": authErr.Message}
	default:
		status = http.StatusInternalServerError
		payload = map[string]interface{}{"error": "internal server error"}
	}

	writeJSON(w, status, payload, requestID)
}
