package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"finance_api/domain"
	"finance_api/internal/auth/usecase"
	"finance_api/internal/service/logger"
	"finance_api/internal/service/middleware"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

const tokenLifetime = 24 * time.Hour

type AuthHandler struct {
	usecase  usecase.AuthUsecase
	jwtToken middleware.JwtTokenService
}

func NewAuthHandler(usecase usecase.AuthUsecase, jwtToken middleware.JwtTokenService) *AuthHandler {
	return &AuthHandler{
		usecase:  usecase,
		jwtToken: jwtToken,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received Register request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	body, err := decodeBody(r)
	if err != nil {
		h.handleError(w, domain.NewValidationError("invalid user data", map[string]string{"body": "malformed JSON"}), requestID)
		return
	}
	sanitizeStringField(body, "name")

	user, err := h.usecase.Register(ctx, body)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":        user.ID,
		"user_name": user.Name,
	}, requestID)

	logger.AccessLogger.Info("Completed Register request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusCreated),
	)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received Login request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	body, err := decodeBody(r)
	if err != nil {
		h.handleError(w, domain.ErrBadCredentials, requestID)
		return
	}

	userID, err := h.usecase.Login(ctx, body)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	tokenExpTime := time.Now().Add(tokenLifetime).Unix()
	accessToken, err := h.jwtToken.Create(userID, tokenExpTime)
	if err != nil {
		logger.AccessLogger.Error("Failed to create JWT token",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		h.handleError(w, err, requestID)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"access_token": accessToken,
	}, requestID)

	logger.AccessLogger.Info("Completed Login request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusOK),
	)
}

func (h *AuthHandler) handleError(w http.ResponseWriter, err error, requestID string) {
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
		payload = map[string]interface{}{"error": "invalid user data", "details": conflictErr.Detail}
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
