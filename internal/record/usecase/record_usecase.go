package usecase

import (
	"context"

	"finance_api/domain"
	"finance_api/internal/service/logger"
	"finance_api/internal/service/middleware"
	"finance_api/internal/service/validation"

	"go.uber.org/zap"
)

type RecordUsecase interface {
	CreateRecord(ctx context.Context, body map[string]interface{}) (*domain.Record, error)
	GetRecord(ctx context.Context, rawID string) (*domain.Record, error)
	DeleteRecord(ctx context.Context, rawID string) (*domain.Record, error)
	// QueryRecords requires at least one of the two filters.
	QueryRecords(ctx context.Context, rawUserID, rawCategoryID string) ([]domain.Record, error)
}

type recordUsecase struct {
	recordRepository domain.RecordRepository
}

func NewRecordUsecase(recordRepository domain.RecordRepository) RecordUsecase {
	return &recordUsecase{
		recordRepository: recordRepository,
	}
}

func (uc *recordUsecase) CreateRecord(ctx context.Context, body map[string]interface{}) (*domain.Record, error) {
	requestID := middleware.GetRequestID(ctx)

	data, fieldErrs := validation.ParseRecordCreate(body)
	if fieldErrs != nil {
		logger.AccessLogger.Warn("Invalid record data", zap.String("request_id", requestID))
		return nil, domain.NewValidationError("invalid record data", fieldErrs)
	}

	return uc.recordRepository.CreateRecord(ctx, data.UserID, data.CategoryID, data.Datetime, data.Amount)
}

func (uc *recordUsecase) GetRecord(ctx context.Context, rawID string) (*domain.Record, error) {
	id, fieldErrs := validation.ParseID("record_id", rawID)
	if fieldErrs != nil {
		return nil, domain.NewValidationError("invalid record_id", fieldErrs)
	}
	return uc.recordRepository.GetRecordByID(ctx, id)
}

func (uc *recordUsecase) DeleteRecord(ctx context.Context, rawID string) (*domain.Record, error) {
	id, fieldErrs := validation.ParseID("record_id", rawID)
	if fieldErrs != nil {
		return nil, domain.NewValidationError("invalid record_id", fieldErrs)
	}
	return uc.recordRepository.DeleteRecord(ctx, id)
}

func (uc *recordUsecase) QueryRecords(ctx context.Context, rawUserID, rawCategoryID string) ([]domain.Record, error) {
	requestID := middleware.GetRequestID(ctx)

	params, fieldErrs := validation.ParseRecordQuery(rawUserID, rawCategoryID)
	if fieldErrs != nil {
		logger.AccessLogger.Warn("Invalid record query", zap.String("request_id", requestID))
		return nil, domain.NewValidationError("invalid query params", fieldErrs)
	}

	return uc.recordRepository.QueryRecords(ctx, domain.RecordFilter{
		UserID:     params.UserID,
		CategoryID: params.CategoryID,
	})
}
