package service

import (
	"context"

	"crypto_casino/internal/model"

	"github.com/shopspring/decimal"
)

// Каждая игра отдает единственную точку расчета ставки:
// валидация -> проверка баланса -> генерация исхода -> выплата ->
// единственная дельта в леджер -> результат с новым балансом

type SlotService interface {
	Spin(ctx context.Context, req model.SlotSpin) (*model.SlotResult, error)
}

type RouletteService interface {
	Spin(ctx context.Context, req model.RouletteBet) (*model.RouletteResult, error)
}

type CoinFlipService interface {
	Flip(ctx context.Context, req model.CoinFlip) (*model.CoinFlipResult, error)
}

type LootboxService interface {
	OpenCase(ctx context.Context, caseID int) (*model.OpenCaseResult, error)
	SellItems(ctx context.Context, itemID int, quantity int) (*model.SellResult, error)
	Inventory(ctx context.Context) ([]model.InventoryItem, error)
	Cases() []model.Case
}

type MarketService interface {
	Price(ctx context.Context, cryptoID string) (*model.CoinPrice, error)
	Buy(ctx context.Context, cryptoID string, quantity decimal.Decimal) (*model.TradeResult, error)
	Sell(ctx context.Context, cryptoID string, quantity decimal.Decimal) (*model.TradeResult, error)
}

type WalletService interface {
	Wallets(ctx context.Context) ([]model.Wallet, error)
	Deposit(ctx context.Context, cryptoID string, amount decimal.Decimal) (decimal.Decimal, error)
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}
