package auth

import (
	"context"
	"time"

	"crypto_casino/internal/gameerr"
	"crypto_casino/internal/model"
	"crypto_casino/pkg/pass"
	"crypto_casino/pkg/token"

	"github.com/google/uuid"
)

func (s *serv) Login(ctx context.Context, login, password string) (*model.AuthData, error) {
	if login == "" || password == "" {
		return nil, gameerr.Validationf("login and password are required")
	}

	// Получение пользователя из бд по логину
	user, err := s.userRepo.GetUserByLogin(ctx, login)
	if err != nil {
		return nil, err
	}

	// Верификация пароля
	if !pass.VerifyPassword(user.Password, password) {
		return nil, gameerr.Validationf("invalid login or password")
	}

	// Генерация sessionID
	sessionID := uuid.NewString()

	// Генерация refresh токена
	refreshToken, err := token.GenerateRefreshToken()
	if err != nil {
		return nil, gameerr.Internalf("failed to generate refresh token: %v", err)
	}

	// Создать сессию
	err = s.authRepo.CreateSession(ctx,
		&model.Session{
			ID:           sessionID,
			UserID:       user.ID,
			RefreshToken: token.HashRefreshToken(refreshToken),
			ExpiresAt:    time.Now().Add(s.jwtConfig.RefreshTokenDuration()),
		})
	if err != nil {
		return nil, err
	}

	// Создать access токен
	accessToken, err := token.GenerateAccessToken(
		user,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return nil, gameerr.Internalf("failed to generate access token: %v", err)
	}

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    sessionID,
	}, nil
}
