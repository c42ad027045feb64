package converter

import (
	"crypto_casino/internal/api/dto/wallet"
	"crypto_casino/internal/model"
)

func ToWalletsResponse(wallets []model.Wallet) wallet.WalletsResponse {
	result := make([]wallet.Wallet, len(wallets))
	for i, w := range wallets {
		result[i] = wallet.Wallet{
			CryptoID: w.CryptoID,
			Quantity: w.Quantity,
		}
	}
	return wallet.WalletsResponse{Wallets: result}
}
