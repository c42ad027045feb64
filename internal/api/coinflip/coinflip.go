package coinflip

import (
	"net/http"

	dto "crypto_casino/internal/api/dto/coinflip"
	"crypto_casino/internal/converter"
	"crypto_casino/internal/gameerr"
	"crypto_casino/internal/service"
	"crypto_casino/pkg/req"
	"crypto_casino/pkg/resp"
)

type HandlerDeps struct {
	Serv service.CoinFlipService
}

type Handler struct {
	serv service.CoinFlipService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Flip(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.FlipRequest](r.Body)
	if err != nil {
		resp.WriteError(w, gameerr.Validationf("invalid request body: %v", err))
		return
	}

	result, err := h.serv.Flip(r.Context(), converter.ToCoinFlip(payload))
	if err != nil {
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCoinFlipResponse(*result))
}
