package slot

import "github.com/shopspring/decimal"

type SpinRequest struct {
	Bet      decimal.Decimal `json:"bet"`       // Размер ставки (положительное число)
	CryptoID string          `json:"crypto_id"` // Актив, которым сделана ставка
}

type SpinResponse struct {
	Symbols   [3]string       `json:"symbols"`    // Выпавшие символы
	WinAmount decimal.Decimal `json:"win_amount"` // Выигрыш (до вычета ставки)
	TotalBet  decimal.Decimal `json:"total_bet"`  // Ставка
	NetProfit decimal.Decimal `json:"net_profit"` // Подписанная дельта баланса
	Balance   decimal.Decimal `json:"balance"`    // Баланс после
}
