package auth

import (
	"context"
	"time"

	"crypto_casino/internal/gameerr"
	"crypto_casino/internal/model"
	"crypto_casino/pkg/pass"
	"crypto_casino/pkg/token"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (s *serv) Register(ctx context.Context, user *model.User) (*model.AuthData, error) {
	if user.Login == "" || user.Password == "" {
		return nil, gameerr.Validationf("login and password are required")
	}

	// Хэширование пароля пользователя
	passwordHash, err := pass.HashPassword(user.Password)
	if err != nil {
		return nil, gameerr.Internalf("failed to hash password: %v", err)
	}
	user.Password = passwordHash

	var (
		sessionID    string
		refreshToken string
		accessToken  string
	)

	// Пользователь, его стартовый кошелек и сессия создаются одной транзакцией
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Создать пользователя в бд
		user.ID, err = s.userRepo.CreateUser(ctx, user)
		if err != nil {
			return err
		}

		// 2. Завести кошелек денежного актива со стартовым балансом
		err = s.walletRepo.CreateWallet(ctx,
			user.ID,
			s.walletCfg.MoneyAsset(),
			decimal.NewFromFloat(s.walletCfg.StartBalance()))
		if err != nil {
			return err
		}

		// 3. Генерация sessionID
		sessionID = uuid.NewString()

		// 4. Генерация refresh токена
		refreshToken, err = token.GenerateRefreshToken()
		if err != nil {
			return gameerr.Internalf("failed to generate refresh token: %v", err)
		}

		// 5. Создать сессию
		err = s.authRepo.CreateSession(ctx,
			&model.Session{
				ID:           sessionID,
				UserID:       user.ID,
				RefreshToken: token.HashRefreshToken(refreshToken),
				ExpiresAt:    time.Now().Add(s.jwtConfig.RefreshTokenDuration()),
			})
		if err != nil {
			return err
		}

		// 6. Создать access токен
		accessToken, err = token.GenerateAccessToken(
			user,
			s.jwtConfig.AccessTokenSecretKey(),
			s.jwtConfig.AccessTokenDuration())
		if err != nil {
			return gameerr.Internalf("failed to generate access token: %v", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    sessionID,
	}, nil
}
