package converter

import (
	"crypto_casino/internal/api/dto/roulette"
	"crypto_casino/internal/model"
)

func ToRouletteBet(req roulette.SpinRequest) model.RouletteBet {
	return model.RouletteBet{
		Type:     model.BetType(req.Type),
		Numbers:  req.Numbers,
		Bet:      req.Bet,
		CryptoID: req.CryptoID,
	}
}

func ToRouletteSpinResponse(res model.RouletteResult) roulette.SpinResponse {
	return roulette.SpinResponse{
		Color:   string(res.Wheel.Color),
		Number:  res.Wheel.Number,
		Payout:  res.Payout,
		Balance: res.Balance,
	}
}
