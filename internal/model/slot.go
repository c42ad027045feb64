package model

import "github.com/shopspring/decimal"

type SlotSpin struct {
	Bet      decimal.Decimal
	CryptoID string
}

// SlotSymbol - строка таблицы символов: вес выпадения и множитель выплаты
type SlotSymbol struct {
	Symbol     string
	Weight     float64
	Multiplier decimal.Decimal
}

type SlotResult struct {
	Symbols   [3]string
	WinAmount decimal.Decimal
	TotalBet  decimal.Decimal
	NetProfit decimal.Decimal
	Balance   decimal.Decimal
}
