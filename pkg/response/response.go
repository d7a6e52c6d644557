package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type ErrorResponse struct {
	Error   string `json:"error" example:"insufficient_balance"`
	Message string `json:"message,omitempty" example:"Insufficient balance in Mpesa_KES_1. Available: 500000 KES"`
}

func WriteJSONError(w http.ResponseWriter, log *slog.Logger, status int, errCode, message string) {
	writeJSON(w, log, status, ErrorResponse{Error: errCode, Message: message})
}

func WriteJSONSuccess(w http.ResponseWriter, log *slog.Logger, status int, data any) {
	writeJSON(w, log, status, data)
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("ошибка при кодировании JSON-ответа",
			slog.Int("status", status),
			slog.String("error", err.Error()))
	}
}
