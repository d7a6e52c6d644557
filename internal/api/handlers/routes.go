package handlers

import (
	"treasury-simulator/internal/service"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes вешает маршруты /api/v1 на роутер
func RegisterRoutes(r chi.Router, svc service.Treasury, journalEnabled bool) {
	accountHandler := NewAccountHandler(svc)
	exchangeHandler := NewExchangeHandler(svc)
	transferHandler := NewTransferHandler(svc)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/accounts", accountHandler.GetAccounts)
		r.Get("/accounts/{accountID}", accountHandler.GetAccount)
		r.Patch("/accounts/{accountID}", accountHandler.RenameAccount)

		r.Get("/exchange/rates", exchangeHandler.GetExchangeRates)

		r.Post("/transfers", transferHandler.Transfer)
		r.Get("/transactions", transferHandler.GetTransactions)
		r.Get("/notice", transferHandler.GetNotice)

		if journalEnabled {
			r.Get("/journal", transferHandler.GetJournal)
		}
	})
}
