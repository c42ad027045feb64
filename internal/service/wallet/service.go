package wallet

import (
	"context"

	"crypto_casino/internal/gameerr"
	"crypto_casino/internal/middleware"
	"crypto_casino/internal/model"
	"crypto_casino/internal/repository"
	"crypto_casino/internal/service"

	"github.com/shopspring/decimal"
)

type serv struct {
	walletRepo repository.WalletRepository
}

func NewWalletService(walletRepo repository.WalletRepository) service.WalletService {
	return &serv{walletRepo: walletRepo}
}

func (s *serv) Wallets(ctx context.Context) ([]model.Wallet, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, gameerr.Validationf("user id not found in context")
	}

	return s.walletRepo.GetWallets(ctx, userID)
}

// Deposit зачисляет актив на кошелек пользователя.
// Кредит идемпотентен к отсутствию кошелька: создаст запись при первой дельте
func (s *serv) Deposit(ctx context.Context, cryptoID string, amount decimal.Decimal) (decimal.Decimal, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return decimal.Zero, gameerr.Validationf("user id not found in context")
	}

	if cryptoID == "" {
		return decimal.Zero, gameerr.Validationf("crypto id is required")
	}
	if !amount.IsPositive() {
		return decimal.Zero, gameerr.Validationf("amount must be positive, got %s", amount)
	}

	return s.walletRepo.ApplyDelta(ctx, userID, cryptoID, amount)
}
