package slot

import (
	"net/http"

	dto "crypto_casino/internal/api/dto/slot"
	"crypto_casino/internal/converter"
	"crypto_casino/internal/gameerr"
	"crypto_casino/internal/service"
	"crypto_casino/pkg/req"
	"crypto_casino/pkg/resp"
)

type HandlerDeps struct {
	Serv service.SlotService
}

type Handler struct {
	serv service.SlotService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		resp.WriteError(w, gameerr.Validationf("invalid request body: %v", err))
		return
	}

	result, err := h.serv.Spin(r.Context(), converter.ToSlotSpin(payload))
	if err != nil {
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSlotSpinResponse(*result))
}
