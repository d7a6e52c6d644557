package handlers

import (
	"net/http"
	"treasury-simulator/internal/api/middlew"
	"treasury-simulator/internal/models"
	"treasury-simulator/internal/service"
	"treasury-simulator/pkg/response"
)

type ExchangeHandler struct {
	service service.Treasury
}

func NewExchangeHandler(service service.Treasury) *ExchangeHandler {
	return &ExchangeHandler{
		service: service,
	}
}

// GetExchangeRates godoc
// @Summary      Получить курсы валют
// @Description  Возвращает статическую таблицу курсов, ключ FROM_TO
// @Tags         exchange
// @Produce      json
// @Success      200 {object} models.ExchangeRatesResponse
// @Router       /exchange/rates [get]
func (h *ExchangeHandler) GetExchangeRates(w http.ResponseWriter, r *http.Request) {
	log := middlew.GetLogger(r.Context())

	response.WriteJSONSuccess(w, log, http.StatusOK, models.ExchangeRatesResponse{
		Rates: h.service.Rates().Values(),
	})
}
