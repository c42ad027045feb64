package wallet

import (
	"net/http"

	dto "crypto_casino/internal/api/dto/wallet"
	"crypto_casino/internal/converter"
	"crypto_casino/internal/gameerr"
	"crypto_casino/internal/service"
	"crypto_casino/pkg/req"
	"crypto_casino/pkg/resp"
)

type HandlerDeps struct {
	Serv service.WalletService
}

type Handler struct {
	serv service.WalletService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Wallets возвращает все кошельки пользователя
func (h *Handler) Wallets(w http.ResponseWriter, r *http.Request) {
	wallets, err := h.serv.Wallets(r.Context())
	if err != nil {
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWalletsResponse(wallets))
}

func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.DepositRequest](r.Body)
	if err != nil {
		resp.WriteError(w, gameerr.Validationf("invalid request body: %v", err))
		return
	}

	balance, err := h.serv.Deposit(r.Context(), payload.CryptoID, payload.Amount)
	if err != nil {
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.DepositResponse{
		CryptoID: payload.CryptoID,
		Balance:  balance,
	})
}
