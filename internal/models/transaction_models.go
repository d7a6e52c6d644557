package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction запись журнала переводов. После создания не изменяется.
// Имена и валюты счетов фиксируются на момент перевода.
type Transaction struct {
	ID              int64            `json:"id"`
	Timestamp       time.Time        `json:"timestamp"`
	FromAccountID   string           `json:"from_account_id"`
	FromAccountName string           `json:"from_account_name"`
	FromCurrency    Currency         `json:"from_currency"`
	ToAccountID     string           `json:"to_account_id"`
	ToAccountName   string           `json:"to_account_name"`
	ToCurrency      Currency         `json:"to_currency"`
	Amount          decimal.Decimal  `json:"amount" swaggertype:"string"`
	Currency        Currency         `json:"currency"`
	Note            string           `json:"note"`
	FxRate          *decimal.Decimal `json:"fx_rate" swaggertype:"string"`
	ConvertedAmount *decimal.Decimal `json:"converted_amount" swaggertype:"string"`
	TransferDate    string           `json:"transfer_date"`
}

// IsCrossCurrency сообщает, выполнялась ли конвертация
func (t Transaction) IsCrossCurrency() bool {
	return t.FxRate != nil
}

// CreditedAmount сумма, зачисленная на счет получателя, в его валюте
func (t Transaction) CreditedAmount() decimal.Decimal {
	if t.ConvertedAmount != nil {
		return *t.ConvertedAmount
	}
	return t.Amount
}

// TransferInput данные формы перевода. Amount приходит строкой и разбирается движком.
type TransferInput struct {
	FromAccountID string `json:"from_account_id" example:"acc1"`
	ToAccountID   string `json:"to_account_id" example:"acc4"`
	Amount        string `json:"amount" example:"1300"`
	Note          string `json:"note" validate:"max=256" example:"Q3 payroll"`
	TransferDate  string `json:"transfer_date" validate:"omitempty,datetime=2006-01-02" example:"2025-07-01"`
}

// TransferResult результат успешного перевода
type TransferResult struct {
	Message     string      `json:"message"`
	FxMessage   string      `json:"fx_message,omitempty"`
	Transaction Transaction `json:"transaction"`
	From        Account     `json:"from"`
	To          Account     `json:"to"`
}

// LedgerFilter фильтр журнала; пустое поле совпадает с любой записью
type LedgerFilter struct {
	AccountID string
	Currency  Currency
}

// TransactionsResponse ответ с отфильтрованным журналом
type TransactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
}
