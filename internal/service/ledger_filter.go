package service

import "treasury-simulator/internal/models"

// FilterTransactions возвращает записи, подходящие под оба условия фильтра.
// Порядок журнала сохраняется, исходный срез не изменяется.
func FilterTransactions(txs []models.Transaction, filter models.LedgerFilter) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if matchesAccount(tx, filter.AccountID) && matchesCurrency(tx, filter.Currency) {
			out = append(out, tx)
		}
	}
	return out
}

func matchesAccount(tx models.Transaction, accountID string) bool {
	if accountID == "" {
		return true
	}
	return tx.FromAccountID == accountID || tx.ToAccountID == accountID
}

func matchesCurrency(tx models.Transaction, currency models.Currency) bool {
	if currency == "" {
		return true
	}
	return tx.FromCurrency == currency || tx.ToCurrency == currency
}
