package market

import (
	"net/http"

	dto "crypto_casino/internal/api/dto/market"
	"crypto_casino/internal/converter"
	"crypto_casino/internal/gameerr"
	"crypto_casino/internal/service"
	"crypto_casino/pkg/req"
	"crypto_casino/pkg/resp"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.MarketService
}

type Handler struct {
	serv service.MarketService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Price отдает текущую цену актива. Идентификатор актива берется из пути
func (h *Handler) Price(w http.ResponseWriter, r *http.Request) {
	coin := chi.URLParam(r, "coin")

	price, err := h.serv.Price(r.Context(), coin)
	if err != nil {
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPriceResponse(*price))
}

func (h *Handler) Buy(w http.ResponseWriter, r *http.Request) {
	coin := chi.URLParam(r, "coin")

	payload, err := req.Decode[dto.TradeRequest](r.Body)
	if err != nil {
		resp.WriteError(w, gameerr.Validationf("invalid request body: %v", err))
		return
	}

	result, err := h.serv.Buy(r.Context(), coin, payload.Quantity)
	if err != nil {
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTradeResponse(*result))
}

func (h *Handler) Sell(w http.ResponseWriter, r *http.Request) {
	coin := chi.URLParam(r, "coin")

	payload, err := req.Decode[dto.TradeRequest](r.Body)
	if err != nil {
		resp.WriteError(w, gameerr.Validationf("invalid request body: %v", err))
		return
	}

	result, err := h.serv.Sell(r.Context(), coin, payload.Quantity)
	if err != nil {
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTradeResponse(*result))
}
