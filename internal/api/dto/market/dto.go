package market

import "github.com/shopspring/decimal"

type PriceResponse struct {
	CryptoID string          `json:"crypto_id"`
	PriceUSD decimal.Decimal `json:"price_usd"`
}

type TradeRequest struct {
	Quantity decimal.Decimal `json:"quantity"` // Количество актива
}

type TradeResponse struct {
	CryptoID      string          `json:"crypto_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	PricePerUnit  decimal.Decimal `json:"price_per_unit"`
	Total         decimal.Decimal `json:"total"`
	MoneyBalance  decimal.Decimal `json:"money_balance"`
	CryptoBalance decimal.Decimal `json:"crypto_balance"`
}
