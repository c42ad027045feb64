package market

import (
	"crypto_casino/internal/config"
	"crypto_casino/internal/pricefeed"
	"crypto_casino/internal/repository"
	"crypto_casino/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	feed       pricefeed.PriceFeed
	moneyAsset string
	walletRepo repository.WalletRepository
	txManager  trm.Manager
}

// NewMarketService - обмен денежного актива на криптоактивы по цене фида
func NewMarketService(
	feed pricefeed.PriceFeed,
	walletCfg config.WalletConfig,
	walletRepo repository.WalletRepository,
	txManager trm.Manager,
) service.MarketService {
	return &serv{
		feed:       feed,
		moneyAsset: walletCfg.MoneyAsset(),
		walletRepo: walletRepo,
		txManager:  txManager,
	}
}
