package coinflip

import "github.com/shopspring/decimal"

type FlipRequest struct {
	Choice   string          `json:"choice"` // heads или tails
	Bet      decimal.Decimal `json:"bet"`
	CryptoID string          `json:"crypto_id"`
}

type FlipResponse struct {
	Result  string          `json:"result"` // Выпавшая сторона
	Won     bool            `json:"won"`
	Payout  decimal.Decimal `json:"payout"` // Подписанная дельта баланса
	Balance decimal.Decimal `json:"balance"`
}
