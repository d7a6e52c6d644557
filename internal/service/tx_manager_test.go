package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgxTxManager_WithTx_Success(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	txManager := NewPgxTxManager(mock)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err = txManager.WithTx(context.Background(), func(tx pgx.Tx) error {
		return nil
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgxTxManager_WithTx_FunctionError_Rollback(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	txManager := NewPgxTxManager(mock)
	expectedErr := errors.New("journal write failed")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err = txManager.WithTx(context.Background(), func(tx pgx.Tx) error {
		return expectedErr
	})

	assert.Equal(t, expectedErr, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgxTxManager_WithTx_BeginError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	txManager := NewPgxTxManager(mock)

	mock.ExpectBegin().WillReturnError(errors.New("cannot begin transaction"))

	err = txManager.WithTx(context.Background(), func(tx pgx.Tx) error {
		t.Fatal("function should not be called")
		return nil
	})

	assert.ErrorContains(t, err, "cannot begin transaction")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgxTxManager_WithTx_CommitError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	txManager := NewPgxTxManager(mock)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("cannot commit transaction"))

	err = txManager.WithTx(context.Background(), func(tx pgx.Tx) error {
		return nil
	})

	assert.ErrorContains(t, err, "cannot commit transaction")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgxTxManager_WithTx_PanicRollsBack(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	txManager := NewPgxTxManager(mock)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = txManager.WithTx(context.Background(), func(tx pgx.Tx) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgxTxManager_WithTx_ContextCanceled(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	txManager := NewPgxTxManager(mock)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock.ExpectBegin().WillReturnError(context.Canceled)

	err = txManager.WithTx(ctx, func(tx pgx.Tx) error {
		t.Fatal("function should not be called")
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
}
