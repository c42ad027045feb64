package converter

import (
	"crypto_casino/internal/api/dto/slot"
	"crypto_casino/internal/model"
)

func ToSlotSpin(req slot.SpinRequest) model.SlotSpin {
	return model.SlotSpin{
		Bet:      req.Bet,
		CryptoID: req.CryptoID,
	}
}

func ToSlotSpinResponse(res model.SlotResult) slot.SpinResponse {
	return slot.SpinResponse{
		Symbols:   res.Symbols,
		WinAmount: res.WinAmount,
		TotalBet:  res.TotalBet,
		NetProfit: res.NetProfit,
		Balance:   res.Balance,
	}
}
