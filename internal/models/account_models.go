package models

import (
	"github.com/shopspring/decimal"
)

// Currency валюта счета
type Currency string

const (
	CurrencyKES Currency = "KES"
	CurrencyUSD Currency = "USD"
	CurrencyNGN Currency = "NGN"
)

// IsValid проверяет валидность валюты
func (c Currency) IsValid() bool {
	return c == CurrencyKES || c == CurrencyUSD || c == CurrencyNGN
}

// SupportedCurrencies возвращает список поддерживаемых валют
func SupportedCurrencies() []Currency {
	return []Currency{CurrencyKES, CurrencyUSD, CurrencyNGN}
}

// Account счет казначейства. ID неизменяем, баланс меняется только переводом.
type Account struct {
	ID       string          `json:"id" example:"acc1"`
	Name     string          `json:"name" example:"Mpesa_KES_1"`
	Currency Currency        `json:"currency" example:"KES"`
	Balance  decimal.Decimal `json:"balance" swaggertype:"string" example:"500000"`
}

// RenameAccountRequest запрос на смену отображаемого имени счета
type RenameAccountRequest struct {
	Name string `json:"name" validate:"required,max=64" example:"Mpesa_KES_Main"`
}

// AccountsResponse ответ со списком счетов
type AccountsResponse struct {
	Accounts []Account `json:"accounts"`
}
