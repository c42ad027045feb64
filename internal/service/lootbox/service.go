package lootbox

import (
	"sort"

	"crypto_casino/internal/config"
	"crypto_casino/internal/model"
	"crypto_casino/internal/repository"
	"crypto_casino/internal/service"
	"crypto_casino/pkg/weighted"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/shopspring/decimal"
)

type serv struct {
	cases      map[int]model.Case
	tables     map[int]*weighted.Table[model.CaseItem]
	items      map[int]model.CaseItem // справочник предметов по всем кейсам
	moneyAsset string
	walletRepo repository.WalletRepository
	invRepo    repository.InventoryRepository
	txManager  trm.Manager
	rnd        weighted.Source
}

// NewLootboxService разворачивает справочник кейсов из config.yaml
// во взвешенные таблицы дропа. Кейсы оплачиваются денежным активом площадки
func NewLootboxService(
	casesCfg config.CasesConfig,
	walletCfg config.WalletConfig,
	walletRepo repository.WalletRepository,
	invRepo repository.InventoryRepository,
	txManager trm.Manager,
	rnd weighted.Source,
) service.LootboxService {
	cases := make(map[int]model.Case)
	tables := make(map[int]*weighted.Table[model.CaseItem])
	items := make(map[int]model.CaseItem)

	for _, c := range casesCfg.Cases() {
		mc := model.Case{
			ID:       c.ID,
			Name:     c.Name,
			CryptoID: walletCfg.MoneyAsset(),
			Price:    decimal.NewFromFloat(c.Price),
		}

		table := weighted.NewTable[model.CaseItem]()
		for _, it := range c.Items {
			mi := model.CaseItem{
				ItemID:   it.ID,
				Name:     it.Name,
				Rarity:   it.Rarity,
				Price:    decimal.NewFromFloat(it.Price),
				DropRate: it.DropRate,
			}
			mc.Items = append(mc.Items, mi)
			items[mi.ItemID] = mi
			table.Add(mi, mi.DropRate)
		}

		cases[mc.ID] = mc
		tables[mc.ID] = table
	}

	return &serv{
		cases:      cases,
		tables:     tables,
		items:      items,
		moneyAsset: walletCfg.MoneyAsset(),
		walletRepo: walletRepo,
		invRepo:    invRepo,
		txManager:  txManager,
		rnd:        rnd,
	}
}

// Cases возвращает каталог кейсов в стабильном порядке
func (s *serv) Cases() []model.Case {
	out := make([]model.Case, 0, len(s.cases))
	for _, c := range s.cases {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}
