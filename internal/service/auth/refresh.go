package auth

import (
	"context"

	"crypto_casino/internal/gameerr"
	"crypto_casino/internal/model"
	"crypto_casino/pkg/token"
)

func (s *serv) Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error) {
	// Получение хэша refresh токена из хранилища по sessionID
	refreshTokenHash, err := s.authRepo.GetRefreshTokenBySessionID(ctx, data.SessionID)
	if err != nil {
		return "", err
	}

	// Верификация переданного refresh токена с хэшем из хранилища
	if !token.VerifyRefreshToken(data.RefreshToken, refreshTokenHash) {
		return "", gameerr.Validationf("invalid refresh token")
	}

	// Получение пользователя по sessionID
	user, err := s.authRepo.GetUserBySessionID(ctx, data.SessionID)
	if err != nil {
		return "", err
	}

	// Генерация нового access токена
	newAccessToken, err = token.GenerateAccessToken(
		user,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return "", gameerr.Internalf("failed to generate access token: %v", err)
	}

	return newAccessToken, nil
}

func (s *serv) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return gameerr.Validationf("session id is required")
	}

	return s.authRepo.DeleteSession(ctx, sessionID)
}
