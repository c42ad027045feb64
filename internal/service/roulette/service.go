package roulette

import (
	"crypto_casino/internal/config"
	"crypto_casino/internal/model"
	"crypto_casino/internal/repository"
	"crypto_casino/internal/service"
	"crypto_casino/pkg/weighted"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/shopspring/decimal"
)

type serv struct {
	multipliers map[model.BetType]decimal.Decimal
	walletRepo  repository.WalletRepository
	txManager   trm.Manager
	rnd         weighted.Source
}

// NewRouletteService собирает рулетку с таблицей множителей из config.yaml
func NewRouletteService(
	cfg config.RouletteConfig,
	walletRepo repository.WalletRepository,
	txManager trm.Manager,
	rnd weighted.Source,
) service.RouletteService {
	raw := cfg.PayoutMultipliers()
	multipliers := map[model.BetType]decimal.Decimal{
		model.BetRed:      decimal.NewFromFloat(raw["red"]),
		model.BetBlack:    decimal.NewFromFloat(raw["black"]),
		model.BetGreen:    decimal.NewFromFloat(raw["green"]),
		model.BetStraight: decimal.NewFromFloat(raw["straight"]),
		model.BetSplit:    decimal.NewFromFloat(raw["split"]),
		model.BetStreet:   decimal.NewFromFloat(raw["street"]),
		model.BetCorner:   decimal.NewFromFloat(raw["corner"]),
		model.BetLine:     decimal.NewFromFloat(raw["line"]),
	}

	return &serv{
		multipliers: multipliers,
		walletRepo:  walletRepo,
		txManager:   txManager,
		rnd:         rnd,
	}
}
