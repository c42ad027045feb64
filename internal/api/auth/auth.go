package auth

import (
	"net/http"

	dto "crypto_casino/internal/api/dto/auth"
	"crypto_casino/internal/converter"
	"crypto_casino/internal/gameerr"
	"crypto_casino/internal/model"
	"crypto_casino/internal/service"
	"crypto_casino/pkg/logger"
	"crypto_casino/pkg/req"
	"crypto_casino/pkg/resp"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.AuthService
}

type Handler struct {
	serv service.AuthService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Register создает пользователя со стартовым кошельком, открывает сессию
// и возвращает access_token в теле, refresh_token и session_id через cookies
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.RegisterRequest](r.Body)
	if err != nil {
		resp.WriteError(w, gameerr.Validationf("invalid request body: %v", err))
		return
	}

	data, err := h.serv.Register(r.Context(), converter.RegisterRequestToUserModel(&payload))
	if err != nil {
		logger.Warn("register failed", zap.String("login", payload.Login), zap.Error(err))
		resp.WriteError(w, err)
		return
	}

	setSessionCookies(w, data)

	resp.WriteJSONResponse(w, http.StatusCreated, dto.TokenResponse{AccessToken: data.AccessToken})
}

// Login открывает сессию и возвращает access_token в теле,
// refresh_token и session_id через cookies
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		resp.WriteError(w, gameerr.Validationf("invalid request body: %v", err))
		return
	}

	data, err := h.serv.Login(r.Context(), payload.Login, payload.Password)
	if err != nil {
		logger.Warn("login failed", zap.String("login", payload.Login), zap.Error(err))
		resp.WriteError(w, err)
		return
	}

	setSessionCookies(w, data)

	resp.WriteJSONResponse(w, http.StatusOK, dto.TokenResponse{AccessToken: data.AccessToken})
}

// Refresh обновляет access_token по session_id и refresh_token из cookies
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	sessionCookie, err := r.Cookie("session_id")
	if err != nil {
		resp.WriteError(w, gameerr.Validationf("no session_id cookie"))
		return
	}
	refreshCookie, err := r.Cookie("refresh_token")
	if err != nil {
		resp.WriteError(w, gameerr.Validationf("no refresh_token cookie"))
		return
	}

	accessToken, err := h.serv.Refresh(r.Context(), &model.AuthData{
		SessionID:    sessionCookie.Value,
		RefreshToken: refreshCookie.Value,
	})
	if err != nil {
		logger.Warn("refresh failed", zap.Error(err))
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.TokenResponse{AccessToken: accessToken})
}

// Logout закрывает сессию по session_id
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionCookie, err := r.Cookie("session_id")
	if err != nil {
		resp.WriteError(w, gameerr.Validationf("no session_id cookie"))
		return
	}

	if err := h.serv.Logout(r.Context(), sessionCookie.Value); err != nil {
		logger.Warn("logout failed", zap.Error(err))
		resp.WriteError(w, err)
		return
	}

	deleteSessionCookies(w)

	w.WriteHeader(http.StatusNoContent)
}

// setSessionCookies устанавливает cookies с session_id и refresh_token
func setSessionCookies(w http.ResponseWriter, data *model.AuthData) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session_id",
		Value:    data.SessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   30 * 24 * 60 * 60, // 30 дней
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    data.RefreshToken,
		Path:     "/auth",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   30 * 24 * 60 * 60,
	})
}

// deleteSessionCookies удаляет cookies сессии
func deleteSessionCookies(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session_id",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/auth",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
