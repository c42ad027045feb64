package converter

import (
	"crypto_casino/internal/api/dto/coinflip"
	"crypto_casino/internal/model"
)

func ToCoinFlip(req coinflip.FlipRequest) model.CoinFlip {
	return model.CoinFlip{
		Choice:   model.CoinSide(req.Choice),
		Bet:      req.Bet,
		CryptoID: req.CryptoID,
	}
}

func ToCoinFlipResponse(res model.CoinFlipResult) coinflip.FlipResponse {
	return coinflip.FlipResponse{
		Result:  string(res.Result),
		Won:     res.Won,
		Payout:  res.Payout,
		Balance: res.Balance,
	}
}
