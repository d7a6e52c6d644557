package models

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// JournalEntry строка аудиторского журнала в postgres
type JournalEntry struct {
	ID              int64            `json:"id" db:"id"`
	SessionID       uuid.UUID        `json:"session_id" db:"session_id"`
	TransactionID   int64            `json:"transaction_id" db:"transaction_id"`
	FromAccountID   string           `json:"from_account_id" db:"from_account_id"`
	FromAccountName string           `json:"from_account_name" db:"from_account_name"`
	ToAccountID     string           `json:"to_account_id" db:"to_account_id"`
	ToAccountName   string           `json:"to_account_name" db:"to_account_name"`
	FromCurrency    string           `json:"from_currency" db:"from_currency"`
	ToCurrency      string           `json:"to_currency" db:"to_currency"`
	Amount          decimal.Decimal  `json:"amount" db:"amount" swaggertype:"string"`
	FxRate          *decimal.Decimal `json:"fx_rate" db:"fx_rate" swaggertype:"string"`
	ConvertedAmount *decimal.Decimal `json:"converted_amount" db:"converted_amount" swaggertype:"string"`
	Note            string           `json:"note" db:"note"`
	TransferDate    string           `json:"transfer_date" db:"transfer_date"`
	CreatedAt       time.Time        `json:"created_at" db:"created_at"`
}

// JournalResponse ответ со строками журнала текущей сессии
type JournalResponse struct {
	SessionID uuid.UUID      `json:"session_id"`
	Entries   []JournalEntry `json:"entries"`
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
