package wallet

import "github.com/shopspring/decimal"

type Wallet struct {
	CryptoID string          `json:"crypto_id"`
	Quantity decimal.Decimal `json:"quantity"`
}

type WalletsResponse struct {
	Wallets []Wallet `json:"wallets"`
}

type DepositRequest struct {
	CryptoID string          `json:"crypto_id"`
	Amount   decimal.Decimal `json:"amount"`
}

type DepositResponse struct {
	CryptoID string          `json:"crypto_id"`
	Balance  decimal.Decimal `json:"balance"`
}
