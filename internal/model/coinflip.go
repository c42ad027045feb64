package model

import "github.com/shopspring/decimal"

type CoinSide string

const (
	CoinHeads CoinSide = "heads"
	CoinTails CoinSide = "tails"
)

type CoinFlip struct {
	Choice   CoinSide
	Bet      decimal.Decimal
	CryptoID string
}

type CoinFlipResult struct {
	Result  CoinSide
	Won     bool
	Payout  decimal.Decimal // нетто: +ставка при выигрыше, -ставка при проигрыше
	Balance decimal.Decimal
}
