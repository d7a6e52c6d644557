package postgres

import (
	"context"
	"errors"
	"fmt"
	"treasury-simulator/internal/custom_err"
	"treasury-simulator/internal/models"
	"treasury-simulator/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

type JournalRepository interface {
	TransferExistsTx(ctx context.Context, tx pgx.Tx, sessionID uuid.UUID, transactionID int64) (bool, error)
	RecordTransferTx(ctx context.Context, tx pgx.Tx, sessionID uuid.UUID, t models.Transaction) error

	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]models.JournalEntry, error)
}

// PgxQuerier часть пула, нужная для чтения журнала
type PgxQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type PgJournalRepository struct {
	db PgxQuerier
}

func NewJournalRepository(db PgxQuerier) JournalRepository {
	return &PgJournalRepository{db: db}
}

func (r *PgJournalRepository) TransferExistsTx(ctx context.Context, tx pgx.Tx, sessionID uuid.UUID, transactionID int64) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, storage.CheckJournalEntryExistsQuery, sessionID, transactionID).Scan(&exists)
	return exists, err
}

func (r *PgJournalRepository) RecordTransferTx(ctx context.Context, tx pgx.Tx, sessionID uuid.UUID, t models.Transaction) error {
	const op = "storage.RecordTransferTx"

	_, err := tx.Exec(ctx, storage.CreateJournalEntryQuery,
		sessionID, t.ID,
		t.FromAccountID, t.FromAccountName, string(t.FromCurrency),
		t.ToAccountID, t.ToAccountName, string(t.ToCurrency),
		t.Amount, nullDecimal(t.FxRate), nullDecimal(t.ConvertedAmount),
		t.Note, t.TransferDate, t.Timestamp,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return custom_err.ErrDuplicateRequest
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *PgJournalRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]models.JournalEntry, error) {
	const op = "storage.ListBySession"

	rows, err := r.db.Query(ctx, storage.GetJournalBySessionQuery, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	entries := make([]models.JournalEntry, 0)
	for rows.Next() {
		var (
			e         models.JournalEntry
			fxRate    decimal.NullDecimal
			converted decimal.NullDecimal
		)
		err := rows.Scan(
			&e.ID,
			&e.SessionID,
			&e.TransactionID,
			&e.FromAccountID,
			&e.FromAccountName,
			&e.ToAccountID,
			&e.ToAccountName,
			&e.FromCurrency,
			&e.ToCurrency,
			&e.Amount,
			&fxRate,
			&converted,
			&e.Note,
			&e.TransferDate,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: scan error: %w", op, err)
		}
		if fxRate.Valid {
			e.FxRate = &fxRate.Decimal
		}
		if converted.Valid {
			e.ConvertedAmount = &converted.Decimal
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return entries, nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
