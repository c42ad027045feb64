package lootbox

import (
	"context"
	"testing"

	"crypto_casino/internal/config"
	"crypto_casino/internal/gameerr"
	"crypto_casino/internal/middleware"
	"crypto_casino/internal/repository/mem_repo"
	"crypto_casino/pkg/weighted"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type casesCfg struct{}

func (casesCfg) Cases() []config.Case {
	return []config.Case{
		{
			ID:    1,
			Name:  "starter",
			Price: 50,
			Items: []config.CaseItem{
				{ID: 101, Name: "rusty knife", Rarity: "common", Price: 10, DropRate: 0.9},
				{ID: 102, Name: "gold knife", Rarity: "rare", Price: 200, DropRate: 0.1},
			},
		},
	}
}

type walletCfg struct{}

func (walletCfg) MoneyAsset() string    { return "usd" }
func (walletCfg) StartBalance() float64 { return 1000 }

func fixed(v float64) weighted.Source {
	return func() float64 { return v }
}

func newTestService(t *testing.T, rnd weighted.Source, balance int64) (*mem_repo.WalletRepo, *mem_repo.InventoryRepo, context.Context, *serv) {
	t.Helper()

	walletRepo := mem_repo.NewWalletRepository()
	invRepo := mem_repo.NewInventoryRepository()
	ctx := middleware.WithUserID(context.Background(), 1)
	require.NoError(t, walletRepo.CreateWallet(ctx, 1, "usd", decimal.NewFromInt(balance)))

	s := NewLootboxService(casesCfg{}, walletCfg{}, walletRepo, invRepo, mem_repo.NewManager(), rnd).(*serv)
	return walletRepo, invRepo, ctx, s
}

func TestOpenCase_TailDrawLandsRareItem(t *testing.T) {
	// Цена 50 при балансе 50: бросок 0.95 при весах 0.9/0.1 дает редкий предмет,
	// баланс уходит ровно в ноль
	_, invRepo, ctx, s := newTestService(t, fixed(0.95), 50)

	res, err := s.OpenCase(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, 102, res.Item.ItemID)
	assert.Equal(t, "gold knife", res.Item.Name)
	assert.True(t, decimal.NewFromInt(50).Equal(res.PriceDebited))
	assert.True(t, res.Balance.IsZero(), "balance = %s", res.Balance)

	item, err := invRepo.GetItem(ctx, 1, 102)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Count)
}

func TestOpenCase_CommonDraw(t *testing.T) {
	_, invRepo, ctx, s := newTestService(t, fixed(0.5), 100)

	res, err := s.OpenCase(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, 101, res.Item.ItemID)
	assert.True(t, decimal.NewFromInt(50).Equal(res.Balance))

	item, err := invRepo.GetItem(ctx, 1, 101)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Count)
}

func TestOpenCase_UnknownCase(t *testing.T) {
	_, _, ctx, s := newTestService(t, fixed(0.5), 100)

	_, err := s.OpenCase(ctx, 42)
	assert.ErrorIs(t, err, gameerr.ErrNotFound)
}

func TestOpenCase_InsufficientFundsLeavesState(t *testing.T) {
	walletRepo, invRepo, ctx, s := newTestService(t, fixed(0.5), 49)

	_, err := s.OpenCase(ctx, 1)
	require.ErrorIs(t, err, gameerr.ErrInsufficientFunds)

	bal, err := walletRepo.GetBalance(ctx, 1, "usd")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(49).Equal(bal))

	items, err := invRepo.GetItems(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSellItems_CreditsItemPrice(t *testing.T) {
	walletRepo, _, ctx, s := newTestService(t, fixed(0.95), 50)

	// Сначала выбить редкий предмет
	_, err := s.OpenCase(ctx, 1)
	require.NoError(t, err)

	res, err := s.SellItems(ctx, 102, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, res.SoldCount)
	assert.True(t, decimal.NewFromInt(200).Equal(res.ItemPrice))
	assert.True(t, decimal.NewFromInt(200).Equal(res.TotalEarned))
	assert.True(t, decimal.NewFromInt(200).Equal(res.Balance))

	bal, err := walletRepo.GetBalance(ctx, 1, "usd")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(200).Equal(bal))
}

func TestSellItems_MoreThanOwned(t *testing.T) {
	walletRepo, _, ctx, s := newTestService(t, fixed(0.95), 50)

	_, err := s.OpenCase(ctx, 1)
	require.NoError(t, err)

	_, err = s.SellItems(ctx, 102, 2)
	assert.ErrorIs(t, err, gameerr.ErrValidation)

	// Неудачная продажа не трогает баланс
	bal, err := walletRepo.GetBalance(ctx, 1, "usd")
	require.NoError(t, err)
	assert.True(t, bal.IsZero())
}

func TestSellItems_Validation(t *testing.T) {
	_, _, ctx, s := newTestService(t, fixed(0.5), 100)

	_, err := s.SellItems(ctx, 101, 0)
	assert.ErrorIs(t, err, gameerr.ErrValidation)

	_, err = s.SellItems(ctx, 999, 1)
	assert.ErrorIs(t, err, gameerr.ErrNotFound)
}

func TestInventoryAndCatalog(t *testing.T) {
	_, _, ctx, s := newTestService(t, fixed(0.5), 200)

	// Два открытия: оба дают common предмет
	_, err := s.OpenCase(ctx, 1)
	require.NoError(t, err)
	_, err = s.OpenCase(ctx, 1)
	require.NoError(t, err)

	items, err := s.Inventory(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 101, items[0].ItemID)
	assert.Equal(t, 2, items[0].Count)

	catalog := s.Cases()
	require.Len(t, catalog, 1)
	assert.Equal(t, "starter", catalog[0].Name)
	assert.Equal(t, "usd", catalog[0].CryptoID)
	assert.Len(t, catalog[0].Items, 2)
}
