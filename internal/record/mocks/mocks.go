package mocks

import (
	"context"
	"time"

	"finance_api/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) CreateRecord(ctx context.Context, userID uint, categoryID uint, datetime time.Time, amount decimal.Decimal) (*domain.Record, error) {
	args := m.Called(ctx, userID, categoryID, datetime, amount)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Record), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRecordRepository) GetRecordByID(ctx context.Context, id uint) (*domain.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Record), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRecordRepository) DeleteRecord(ctx context.Context, id uint) (*domain.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Record), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRecordRepository) QueryRecords(ctx context.Context, filter domain.RecordFilter) ([]domain.Record, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Record), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockRecordUsecase struct {
	mock.Mock
}

func (m *MockRecordUsecase) CreateRecord(ctx context.Context, body map[string]interface{}) (*domain.Record, error) {
	args := m.Called(ctx, body)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Record), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRecordUsecase) GetRecord(ctx context.Context, rawID string) (*domain.Record, error) {
	args := m.Called(ctx, rawID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Record), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRecordUsecase) DeleteRecord(ctx context.Context, rawID string) (*domain.Record, error) {
	args := m.Called(ctx, rawID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Record), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRecordUsecase) QueryRecords(ctx context.Context, rawUserID, rawCategoryID string) ([]domain.Record, error) {
	args := m.Called(ctx, rawUserID, rawCategoryID)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Record), args.Error(1)
	}
	return nil, args.Error(1)
}
