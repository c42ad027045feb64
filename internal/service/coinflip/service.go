package coinflip

import (
	"crypto_casino/internal/repository"
	"crypto_casino/internal/service"
	"crypto_casino/pkg/weighted"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	walletRepo repository.WalletRepository
	txManager  trm.Manager
	rnd        weighted.Source
}

func NewCoinFlipService(
	walletRepo repository.WalletRepository,
	txManager trm.Manager,
	rnd weighted.Source,
) service.CoinFlipService {
	return &serv{
		walletRepo: walletRepo,
		txManager:  txManager,
		rnd:        rnd,
	}
}
