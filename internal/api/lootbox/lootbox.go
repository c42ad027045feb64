package lootbox

import (
	"net/http"

	dto "crypto_casino/internal/api/dto/lootbox"
	"crypto_casino/internal/converter"
	"crypto_casino/internal/gameerr"
	"crypto_casino/internal/service"
	"crypto_casino/pkg/req"
	"crypto_casino/pkg/resp"
)

type HandlerDeps struct {
	Serv service.LootboxService
}

type Handler struct {
	serv service.LootboxService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) OpenCase(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.OpenCaseRequest](r.Body)
	if err != nil {
		resp.WriteError(w, gameerr.Validationf("invalid request body: %v", err))
		return
	}

	result, err := h.serv.OpenCase(r.Context(), payload.CaseID)
	if err != nil {
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToOpenCaseResponse(*result))
}

func (h *Handler) Sell(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SellRequest](r.Body)
	if err != nil {
		resp.WriteError(w, gameerr.Validationf("invalid request body: %v", err))
		return
	}

	result, err := h.serv.SellItems(r.Context(), payload.ItemID, payload.Quantity)
	if err != nil {
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSellResponse(*result))
}

// Inventory возвращает предметы пользователя с ненулевым количеством
func (h *Handler) Inventory(w http.ResponseWriter, r *http.Request) {
	items, err := h.serv.Inventory(r.Context())
	if err != nil {
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToInventoryResponse(items))
}

// Cases возвращает каталог кейсов с таблицами дропа
func (h *Handler) Cases(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCasesResponse(h.serv.Cases()))
}
