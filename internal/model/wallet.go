package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet - баланс пользователя по одному активу.
// Уникален по паре (UserID, CryptoID), количество всегда >= 0
type Wallet struct {
	ID        int
	UserID    int
	CryptoID  string
	Quantity  decimal.Decimal
	UpdatedAt time.Time
}
