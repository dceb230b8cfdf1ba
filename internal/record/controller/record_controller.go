package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"finance_api/domain"
	"finance_api/internal/record/usecase"
	"finance_api/internal/service/logger"
	"finance_api/internal/service/middleware"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type RecordHandler struct {
	usecase usecase.RecordUsecase
}

func NewRecordHandler(usecase usecase.RecordUsecase) *RecordHandler {
	return &RecordHandler{
		usecase: usecase,
	}
}

func (h *RecordHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received GetRecord request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	record, err := h.usecase.GetRecord(ctx, mux.Vars(r)["id"])
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	writeJSON(w, http.StatusOK, record, requestID)

	logger.AccessLogger.Info("Completed GetRecord request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusOK),
	)
}

func (h *RecordHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received CreateRecord request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	body, err := decodeBody(r)
	if err != nil {
		h.handleError(w, domain.NewValidationError("invalid record data", map[string]string{"body": "malformed JSON"}), requestID)
		return
	}

	record, err := h.usecase.CreateRecord(ctx, body)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"record_id":   record.ID,
		"user_id":     record.UserID,
		"category_id": record.CategoryID,
		"datetime":    record.Datetime,
		"amount":      record.Amount,
	}, requestID)

	logger.AccessLogger.Info("Completed CreateRecord request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusCreated),
	)
}

func (h *RecordHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received DeleteRecord request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	record, err := h.usecase.DeleteRecord(ctx, mux.Vars(r)["id"])
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"result":  fmt.Sprintf("id: %d successfully deleted", record.ID),
		"deleted": record,
	}, requestID)

	logger.AccessLogger.Info("Completed DeleteRecord request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusOK),
	)
}

func (h *RecordHandler) QueryRecords(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received QueryRecords request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	query := r.URL.Query()
	records, err := h.usecase.QueryRecords(ctx, query.Get("user_id"), query.Get("category_id"))
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}
	if records == nil {
		records = []domain.Record{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items":   records,
		"counter": len(records),
	}, requestID)

	logger.AccessLogger.Info("Completed QueryRecords request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusOK),
	)
}

func (h *RecordHandler) handleError(w http.ResponseWriter, err error, requestID string) {
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
		payload = map[string]interface{}{"error": "invalid record data", "details": conflictErr.Detail}
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
