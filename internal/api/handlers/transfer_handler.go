package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"treasury-simulator/internal/api/middlew"
	"treasury-simulator/internal/custom_err"
	"treasury-simulator/internal/models"
	"treasury-simulator/internal/service"
	"treasury-simulator/pkg/response"
)

type TransferHandler struct {
	service service.Treasury
}

func NewTransferHandler(service service.Treasury) *TransferHandler {
	return &TransferHandler{
		service: service,
	}
}

// Transfer godoc
// @Summary      Выполнить перевод
// @Description  Переводит сумму между счетами, при разных валютах конвертирует по таблице курсов
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        request body models.TransferInput true "Данные перевода"
// @Success      200 {object} models.TransferResult
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Router       /transfers [post]
func (h *TransferHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	const op = "handler.Transfer"
	log := middlew.GetLogger(r.Context())

	defer r.Body.Close()

	var req models.TransferInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_json", "Invalid JSON body")
		return
	}

	log.Info("запрос на перевод",
		slog.String("op", op),
		slog.String("from", req.FromAccountID),
		slog.String("to", req.ToAccountID),
		slog.String("amount", req.Amount))

	result, err := h.service.Transfer(r.Context(), req)
	if err != nil {
		writeServiceError(w, log, op, err)
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, result)
}

// GetTransactions godoc
// @Summary      Журнал переводов
// @Description  Возвращает записи журнала; account_id совпадает с отправителем или получателем, currency с любой из валют
// @Tags         transfers
// @Produce      json
// @Param        account_id query string false "ID счета"
// @Param        currency query string false "Валюта (KES, USD, NGN)"
// @Success      200 {object} models.TransactionsResponse
// @Failure      400 {object} response.ErrorResponse
// @Router       /transactions [get]
func (h *TransferHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	const op = "handler.GetTransactions"
	log := middlew.GetLogger(r.Context())

	q := r.URL.Query()
	filter := models.LedgerFilter{
		AccountID: strings.TrimSpace(q.Get("account_id")),
		Currency:  models.Currency(strings.ToUpper(strings.TrimSpace(q.Get("currency")))),
	}
	if filter.Currency != "" && !filter.Currency.IsValid() {
		writeServiceError(w, log, op,
			custom_err.NewUserError(custom_err.ErrInvalidCurrency, "Unsupported currency %s.", filter.Currency))
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, models.TransactionsResponse{
		Transactions: h.service.Transactions(filter),
	})
}

// GetNotice godoc
// @Summary      Текущее уведомление
// @Description  Последнее сообщение о переводе; очищается автоматически по истечении NOTICE_TTL
// @Tags         transfers
// @Produce      json
// @Success      200 {object} models.NoticeResponse
// @Router       /notice [get]
func (h *TransferHandler) GetNotice(w http.ResponseWriter, r *http.Request) {
	log := middlew.GetLogger(r.Context())

	response.WriteJSONSuccess(w, log, http.StatusOK, h.service.Notice())
}

// GetJournal godoc
// @Summary      Аудиторский журнал сессии
// @Tags         journal
// @Produce      json
// @Success      200 {object} models.JournalResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /journal [get]
func (h *TransferHandler) GetJournal(w http.ResponseWriter, r *http.Request) {
	const op = "handler.GetJournal"
	log := middlew.GetLogger(r.Context())

	entries, err := h.service.Journal(r.Context())
	if err != nil {
		writeServiceError(w, log, op, err)
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, models.JournalResponse{
		SessionID: h.service.SessionID(),
		Entries:   entries,
	})
}
