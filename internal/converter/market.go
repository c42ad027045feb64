package converter

import (
	"crypto_casino/internal/api/dto/market"
	"crypto_casino/internal/model"
)

func ToPriceResponse(price model.CoinPrice) market.PriceResponse {
	return market.PriceResponse{
		CryptoID: price.CryptoID,
		PriceUSD: price.PriceUSD,
	}
}

func ToTradeResponse(res model.TradeResult) market.TradeResponse {
	return market.TradeResponse{
		CryptoID:      res.CryptoID,
		Quantity:      res.Quantity,
		PricePerUnit:  res.PricePerUnit,
		Total:         res.Total,
		MoneyBalance:  res.MoneyBalance,
		CryptoBalance: res.CryptoBalance,
	}
}
