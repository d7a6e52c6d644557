package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treasury-simulator/internal/models"
)

func TestDefaultAccounts(t *testing.T) {
	accounts := DefaultAccounts()
	require.Len(t, accounts, 10)

	seen := make(map[string]bool)
	perCurrency := make(map[models.Currency]int)
	for _, a := range accounts {
		assert.False(t, seen[a.ID], "duplicate id %s", a.ID)
		seen[a.ID] = true
		assert.True(t, a.Currency.IsValid())
		assert.True(t, a.Balance.IsPositive())
		perCurrency[a.Currency]++
	}

	assert.Equal(t, 4, perCurrency[models.CurrencyKES])
	assert.Equal(t, 3, perCurrency[models.CurrencyUSD])
	assert.Equal(t, 3, perCurrency[models.CurrencyNGN])
}

func TestDefaultRates_CoverAllPairs(t *testing.T) {
	rates := DefaultRates()
	require.Len(t, rates, 6)

	for _, from := range models.SupportedCurrencies() {
		for _, to := range models.SupportedCurrencies() {
			if from == to {
				continue
			}
			rate, ok := rates.Rate(from, to)
			assert.True(t, ok, "%s_%s missing", from, to)
			assert.True(t, rate.Value().IsPositive())
		}
	}

	usdKes, _ := rates.Rate(models.CurrencyUSD, models.CurrencyKES)
	kesUsd, _ := rates.Rate(models.CurrencyKES, models.CurrencyUSD)
	assert.Equal(t, "130", usdKes.Value().String())
	assert.Equal(t, "0.0077", kesUsd.Value().StringFixed(4))
}

func TestDefaultRates_RoundTripIsExact(t *testing.T) {
	rates := DefaultRates()

	tests := []struct {
		from, to models.Currency
		amount   string
		want     string
	}{
		{from: models.CurrencyKES, to: models.CurrencyUSD, amount: "1300", want: "10"},
		{from: models.CurrencyKES, to: models.CurrencyNGN, amount: "87", want: "1000"},
		{from: models.CurrencyNGN, to: models.CurrencyKES, amount: "1000", want: "87"},
		{from: models.CurrencyUSD, to: models.CurrencyNGN, amount: "87", want: "130000"},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_"+string(tt.to), func(t *testing.T) {
			rate, ok := rates.Rate(tt.from, tt.to)
			require.True(t, ok)

			got := rate.Apply(decimal.RequireFromString(tt.amount))
			assert.Equal(t, tt.want, got.String())
		})
	}
}
