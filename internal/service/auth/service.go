package auth

import (
	"crypto_casino/internal/config"
	"crypto_casino/internal/repository"
	"crypto_casino/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	txManager  trm.Manager
	userRepo   repository.UserRepository
	authRepo   repository.AuthRepository
	walletRepo repository.WalletRepository
	jwtConfig  config.JWTConfig
	walletCfg  config.WalletConfig
}

func NewAuthService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	walletRepo repository.WalletRepository,
	jwtConfig config.JWTConfig,
	walletCfg config.WalletConfig,
) service.AuthService {
	return &serv{
		txManager:  txManager,
		userRepo:   userRepo,
		authRepo:   authRepo,
		walletRepo: walletRepo,
		jwtConfig:  jwtConfig,
		walletCfg:  walletCfg,
	}
}
