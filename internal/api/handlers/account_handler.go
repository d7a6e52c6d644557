package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"treasury-simulator/internal/api/middlew"
	"treasury-simulator/internal/models"
	"treasury-simulator/internal/service"
	"treasury-simulator/pkg/response"

	"github.com/go-chi/chi/v5"
)

type AccountHandler struct {
	service service.Treasury
}

func NewAccountHandler(service service.Treasury) *AccountHandler {
	return &AccountHandler{
		service: service,
	}
}

// GetAccounts godoc
// @Summary      Список счетов
// @Description  Возвращает все счета казначейства, отсортированные по имени
// @Tags         accounts
// @Produce      json
// @Success      200 {object} models.AccountsResponse
// @Router       /accounts [get]
func (h *AccountHandler) GetAccounts(w http.ResponseWriter, r *http.Request) {
	log := middlew.GetLogger(r.Context())

	response.WriteJSONSuccess(w, log, http.StatusOK, models.AccountsResponse{
		Accounts: h.service.Accounts(),
	})
}

// GetAccount godoc
// @Summary      Получить счет
// @Tags         accounts
// @Produce      json
// @Param        accountID path string true "ID счета"
// @Success      200 {object} models.Account
// @Failure      404 {object} response.ErrorResponse
// @Router       /accounts/{accountID} [get]
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	const op = "handler.GetAccount"
	log := middlew.GetLogger(r.Context())

	acc, err := h.service.Account(chi.URLParam(r, "accountID"))
	if err != nil {
		writeServiceError(w, log, op, err)
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, acc)
}

// RenameAccount godoc
// @Summary      Переименовать счет
// @Description  Меняет отображаемое имя счета. Записи журнала сохраняют прежнее имя.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        accountID path string true "ID счета"
// @Param        request body models.RenameAccountRequest true "Новое имя"
// @Success      200 {object} models.Account
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /accounts/{accountID} [patch]
func (h *AccountHandler) RenameAccount(w http.ResponseWriter, r *http.Request) {
	const op = "handler.RenameAccount"
	log := middlew.GetLogger(r.Context())

	defer r.Body.Close()

	var req models.RenameAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_json", "Invalid JSON body")
		return
	}

	acc, err := h.service.RenameAccount(r.Context(), chi.URLParam(r, "accountID"), req)
	if err != nil {
		writeServiceError(w, log, op, err)
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, acc)
}
