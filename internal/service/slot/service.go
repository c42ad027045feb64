package slot

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
	symbols    map[string]model.SlotSymbol
	table      *weighted.Table[model.SlotSymbol]
	walletRepo repository.WalletRepository
	txManager  trm.Manager
	rnd        weighted.Source
}

// NewSlotService собирает слот из таблицы символов config.yaml.
// Источник случайности внедряется снаружи
func NewSlotService(
	cfg config.SlotConfig,
	walletRepo repository.WalletRepository,
	txManager trm.Manager,
	rnd weighted.Source,
) service.SlotService {
	symbols := make(map[string]model.SlotSymbol, len(cfg.Symbols()))
	table := weighted.NewTable[model.SlotSymbol]()
	for _, s := range cfg.Symbols() {
		sym := model.SlotSymbol{
			Symbol:     s.Symbol,
			Weight:     s.Weight,
			Multiplier: decimal.NewFromFloat(s.Multiplier),
		}
		symbols[sym.Symbol] = sym
		table.Add(sym, sym.Weight)
	}

	return &serv{
		symbols:    symbols,
		table:      table,
		walletRepo: walletRepo,
		txManager:  txManager,
		rnd:        rnd,
	}
}
