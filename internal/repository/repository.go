package repository

import (
	"context"

	"crypto_casino/internal/model"

	"github.com/shopspring/decimal"
)

// WalletRepository - абстрактный леджер балансов, ключ (userID, cryptoID).
//
// ApplyDelta - единственная точка мутации баланса. Реализация обязана
// выполнять чтение-изменение-запись атомарно и отклонять дельту,
// уводящую баланс ниже нуля (gameerr.ErrInsufficientFunds).
// Это защита на границе записи: предварительная проверка баланса
// в сервисах - лишь быстрый отказ, а не гарантия
type WalletRepository interface {
	GetBalance(ctx context.Context, userID int, cryptoID string) (decimal.Decimal, error)
	ApplyDelta(ctx context.Context, userID int, cryptoID string, delta decimal.Decimal) (decimal.Decimal, error)
	GetWallets(ctx context.Context, userID int) ([]model.Wallet, error)
	CreateWallet(ctx context.Context, userID int, cryptoID string, quantity decimal.Decimal) error
}

// InventoryRepository - второй леджер: предметы из кейсов, ключ (userID, itemID)
type InventoryRepository interface {
	AddItem(ctx context.Context, userID int, item model.CaseItem, count int) error
	RemoveItems(ctx context.Context, userID int, itemID int, count int) error
	GetItem(ctx context.Context, userID int, itemID int) (*model.InventoryItem, error)
	GetItems(ctx context.Context, userID int) ([]model.InventoryItem, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
