package service

import (
	"treasury-simulator/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultAccounts возвращает фиксированный набор счетов сессии
func DefaultAccounts() []models.Account {
	return []models.Account{
		{ID: "acc1", Name: "Mpesa_KES_1", Currency: models.CurrencyKES, Balance: decimal.NewFromInt(500000)},
		{ID: "acc2", Name: "Bank_KES_2", Currency: models.CurrencyKES, Balance: decimal.NewFromInt(1000000)},
		{ID: "acc3", Name: "Wallet_KES_3", Currency: models.CurrencyKES, Balance: decimal.NewFromInt(250000)},
		{ID: "acc4", Name: "Mpesa_USD_1", Currency: models.CurrencyUSD, Balance: decimal.NewFromInt(10000)},
		{ID: "acc5", Name: "Bank_USD_2", Currency: models.CurrencyUSD, Balance: decimal.NewFromInt(50000)},
		{ID: "acc6", Name: "Invest_USD_3", Currency: models.CurrencyUSD, Balance: decimal.NewFromInt(20000)},
		{ID: "acc7", Name: "Bank_NGN_1", Currency: models.CurrencyNGN, Balance: decimal.NewFromInt(5000000)},
		{ID: "acc8", Name: "Wallet_NGN_2", Currency: models.CurrencyNGN, Balance: decimal.NewFromInt(2000000)},
		{ID: "acc9", Name: "Crypto_NGN_3", Currency: models.CurrencyNGN, Balance: decimal.NewFromInt(1000000)},
		{ID: "acc10", Name: "Reserve_KES_4", Currency: models.CurrencyKES, Balance: decimal.NewFromInt(750000)},
	}
}

// DefaultRates возвращает статическую таблицу курсов.
// Каждое направление задано своей дробью и не приводится к взаимно обратным значениям.
func DefaultRates() models.RateTable {
	one := decimal.NewFromInt(1)
	kesPerUSD := decimal.NewFromInt(130)
	kesPerNGN := decimal.RequireFromString("0.087")

	return models.RateTable{
		models.RateKey(models.CurrencyUSD, models.CurrencyKES): models.NewRate(kesPerUSD, one),
		models.RateKey(models.CurrencyKES, models.CurrencyUSD): models.NewRate(one, kesPerUSD),
		models.RateKey(models.CurrencyNGN, models.CurrencyKES): models.NewRate(kesPerNGN, one),
		models.RateKey(models.CurrencyKES, models.CurrencyNGN): models.NewRate(one, kesPerNGN),
		models.RateKey(models.CurrencyUSD, models.CurrencyNGN): models.NewRate(kesPerUSD, kesPerNGN),
		models.RateKey(models.CurrencyNGN, models.CurrencyUSD): models.NewRate(kesPerNGN, kesPerUSD),
	}
}
