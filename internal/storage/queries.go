package storage

const (
	// Journal queries
	CheckJournalEntryExistsQuery = `
		SELECT EXISTS(
			SELECT 1
			FROM transfer_journal
			WHERE session_id = $1 AND transaction_id = $2
		)
	`

	CreateJournalEntryQuery = `
		INSERT INTO transfer_journal (
			session_id, transaction_id,
			from_account_id, from_account_name, from_currency,
			to_account_id, to_account_name, to_currency,
			amount, fx_rate, converted_amount, note, transfer_date, transferred_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	// Записи сессии в порядке журнала
	GetJournalBySessionQuery = `
		SELECT id, session_id, transaction_id,
		       from_account_id, from_account_name, to_account_id, to_account_name,
		       from_currency, to_currency, amount, fx_rate, converted_amount,
		       note, transfer_date, created_at
		FROM transfer_journal
		WHERE session_id = $1
		ORDER BY transaction_id
	`
)
