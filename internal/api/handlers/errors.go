package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"treasury-simulator/internal/custom_err"
	"treasury-simulator/pkg/response"
)

// writeServiceError переводит ошибку сервиса в HTTP-ответ
func writeServiceError(w http.ResponseWriter, log *slog.Logger, op string, err error) {
	if !custom_err.IsValidation(err) {
		log.Error("internal error", slog.String("op", op), slog.String("error", err.Error()))
		response.WriteJSONError(w, log, http.StatusInternalServerError, "internal_error", "An internal error occurred")
		return
	}

	msg := custom_err.UserMessage(err)

	switch {
	case errors.Is(err, custom_err.ErrAccountNotFound):
		log.Info("account not found", slog.String("op", op), slog.String("error", err.Error()))
		response.WriteJSONError(w, log, http.StatusNotFound, "account_not_found", msg)
	case errors.Is(err, custom_err.ErrSameAccount):
		log.Warn("same account", slog.String("op", op))
		response.WriteJSONError(w, log, http.StatusBadRequest, "same_account", msg)
	case errors.Is(err, custom_err.ErrInvalidAmount):
		log.Warn("invalid amount", slog.String("op", op))
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_amount", msg)
	case errors.Is(err, custom_err.ErrInsufficientBalance):
		log.Warn("insufficient balance", slog.String("op", op), slog.String("error", err.Error()))
		response.WriteJSONError(w, log, http.StatusConflict, "insufficient_balance", msg)
	case errors.Is(err, custom_err.ErrRateUnavailable):
		log.Warn("rate unavailable", slog.String("op", op), slog.String("error", err.Error()))
		response.WriteJSONError(w, log, http.StatusBadRequest, "rate_unavailable", msg)
	case errors.Is(err, custom_err.ErrInvalidCurrency):
		log.Warn("invalid currency", slog.String("op", op))
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_currency", msg)
	default:
		log.Warn("invalid input", slog.String("op", op), slog.String("error", err.Error()))
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_input", msg)
	}
}
