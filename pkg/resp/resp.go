package resp

import (
	"encoding/json"
	"errors"
	"net/http"

	"crypto_casino/internal/gameerr"
)

// WriteJSONResponse пишет JSON ответ с указанным статусом
func WriteJSONResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error string `json:"error"`
}

// WriteError отображает таксономию ошибок сервисов на HTTP статусы.
// Клиент всегда получает либо полный результат ставки, либо одну ошибку
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, gameerr.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, gameerr.ErrInsufficientFunds):
		status = http.StatusPaymentRequired
	case errors.Is(err, gameerr.ErrNotFound):
		status = http.StatusNotFound
	}
	WriteJSONResponse(w, status, errorBody{Error: err.Error()})
}
