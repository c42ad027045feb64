package roulette

import "github.com/shopspring/decimal"

type SpinRequest struct {
	Type     string          `json:"type"`              // Red, Black, Green, Straight, Split, Street, Corner, Line
	Numbers  []int           `json:"numbers,omitempty"` // Числа для числовых типов ставок
	Bet      decimal.Decimal `json:"bet"`
	CryptoID string          `json:"crypto_id"`
}

type SpinResponse struct {
	Color   string          `json:"color"`  // Цвет выпавшего сектора
	Number  int             `json:"number"` // Выпавшее число 0..36
	Payout  decimal.Decimal `json:"payout"` // Подписанная дельта баланса
	Balance decimal.Decimal `json:"balance"`
}
