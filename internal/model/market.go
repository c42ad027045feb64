package model

import "github.com/shopspring/decimal"

// CoinPrice - текущая цена актива в долларах по данным внешнего фида
type CoinPrice struct {
	CryptoID string
	PriceUSD decimal.Decimal
}

type TradeResult struct {
	CryptoID      string
	Quantity      decimal.Decimal
	PricePerUnit  decimal.Decimal
	Total         decimal.Decimal
	MoneyBalance  decimal.Decimal // баланс денежного актива после сделки
	CryptoBalance decimal.Decimal // баланс купленного/проданного актива после сделки
}
