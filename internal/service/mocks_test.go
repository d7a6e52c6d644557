package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"treasury-simulator/internal/models"
)

type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) TransferExistsTx(ctx context.Context, tx pgx.Tx, sessionID uuid.UUID, transactionID int64) (bool, error) {
	args := m.Called(ctx, tx, sessionID, transactionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockJournalRepository) RecordTransferTx(ctx context.Context, tx pgx.Tx, sessionID uuid.UUID, t models.Transaction) error {
	args := m.Called(ctx, tx, sessionID, t)
	return args.Error(0)
}

func (m *MockJournalRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]models.JournalEntry, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.JournalEntry), args.Error(1)
}

// MockTxManager вызывает fn с nil-транзакцией, если ожидание не вернуло ошибку
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(nil)
}

type MockKafkaProducer struct {
	mock.Mock
}

func (m *MockKafkaProducer) SendTransferEvent(ctx context.Context, event models.TransferEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockKafkaProducer) Close() error {
	args := m.Called()
	return args.Error(0)
}
