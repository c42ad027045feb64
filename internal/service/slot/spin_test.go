package slot

import (
	"context"
	"testing"

	"crypto_casino/internal/config"
	"crypto_casino/internal/gameerr"
	"crypto_casino/internal/middleware"
	"crypto_casino/internal/model"
	"crypto_casino/internal/repository/mem_repo"
	"crypto_casino/pkg/weighted"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slotCfg struct {
	symbols []config.SlotSymbol
}

func (c slotCfg) Symbols() []config.SlotSymbol { return c.symbols }

// seq - источник, отдающий значения по очереди
func seq(vals ...float64) weighted.Source {
	i := 0
	return func() float64 {
		v := vals[i%len(vals)]
		i++
		return v
	}
}

func newTestService(t *testing.T, rnd weighted.Source, balance int64) (*mem_repo.WalletRepo, context.Context, *serv) {
	t.Helper()

	cfg := slotCfg{symbols: []config.SlotSymbol{
		{Symbol: "grape", Weight: 0.5, Multiplier: 2},
		{Symbol: "lemon", Weight: 0.3, Multiplier: 3},
		{Symbol: "seven", Weight: 0.2, Multiplier: 10},
	}}

	walletRepo := mem_repo.NewWalletRepository()
	ctx := middleware.WithUserID(context.Background(), 1)
	require.NoError(t, walletRepo.CreateWallet(ctx, 1, "usd", decimal.NewFromInt(balance)))

	s := NewSlotService(cfg, walletRepo, mem_repo.NewManager(), rnd).(*serv)
	return walletRepo, ctx, s
}

func TestSpin_TripletPaysDoubledMultiplier(t *testing.T) {
	// Три броска по 0.1 - все барабаны выдают grape (множитель 2)
	_, ctx, s := newTestService(t, seq(0.1, 0.1, 0.1), 100)

	res, err := s.Spin(ctx, model.SlotSpin{Bet: decimal.NewFromInt(10), CryptoID: "usd"})
	require.NoError(t, err)

	assert.Equal(t, [3]string{"grape", "grape", "grape"}, res.Symbols)
	// Триплет: ставка * множитель * 2 = 10 * 2 * 2 = 40
	assert.True(t, decimal.NewFromInt(40).Equal(res.WinAmount), "win = %s", res.WinAmount)
	assert.True(t, decimal.NewFromInt(30).Equal(res.NetProfit))
	assert.True(t, decimal.NewFromInt(130).Equal(res.Balance))
}

func TestSpin_PairPaysMatchedSymbolMultiplier(t *testing.T) {
	// grape (0..0.5), grape, seven (0.8..1.0): пара grape
	_, ctx, s := newTestService(t, seq(0.1, 0.1, 0.9), 100)

	res, err := s.Spin(ctx, model.SlotSpin{Bet: decimal.NewFromInt(10), CryptoID: "usd"})
	require.NoError(t, err)

	assert.Equal(t, [3]string{"grape", "grape", "seven"}, res.Symbols)
	// Пара: ставка * множитель совпавшего символа = 10 * 2 = 20
	assert.True(t, decimal.NewFromInt(20).Equal(res.WinAmount))
	assert.True(t, decimal.NewFromInt(110).Equal(res.Balance))
}

func TestSpin_NoMatchLosesBet(t *testing.T) {
	// grape, lemon (0.5..0.8), seven - все разные
	walletRepo, ctx, s := newTestService(t, seq(0.1, 0.6, 0.9), 100)

	res, err := s.Spin(ctx, model.SlotSpin{Bet: decimal.NewFromInt(10), CryptoID: "usd"})
	require.NoError(t, err)

	assert.True(t, res.WinAmount.IsZero())
	assert.True(t, decimal.NewFromInt(-10).Equal(res.NetProfit))
	assert.True(t, decimal.NewFromInt(90).Equal(res.Balance))

	bal, err := walletRepo.GetBalance(ctx, 1, "usd")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(90).Equal(bal))
}

func TestSpin_InsufficientFundsLeavesBalance(t *testing.T) {
	walletRepo, ctx, s := newTestService(t, seq(0.1), 5)

	_, err := s.Spin(ctx, model.SlotSpin{Bet: decimal.NewFromInt(10), CryptoID: "usd"})
	require.ErrorIs(t, err, gameerr.ErrInsufficientFunds)

	bal, err := walletRepo.GetBalance(ctx, 1, "usd")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(5).Equal(bal))
}

func TestSpin_RejectsInvalidBet(t *testing.T) {
	_, ctx, s := newTestService(t, seq(0.1), 100)

	_, err := s.Spin(ctx, model.SlotSpin{Bet: decimal.NewFromInt(-1), CryptoID: "usd"})
	assert.ErrorIs(t, err, gameerr.ErrValidation)

	_, err = s.Spin(ctx, model.SlotSpin{Bet: decimal.Zero, CryptoID: "usd"})
	assert.ErrorIs(t, err, gameerr.ErrValidation)

	_, err = s.Spin(ctx, model.SlotSpin{Bet: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, gameerr.ErrValidation)
}

func TestSpin_UnknownWalletIsNotFound(t *testing.T) {
	_, ctx, s := newTestService(t, seq(0.1), 100)

	_, err := s.Spin(ctx, model.SlotSpin{Bet: decimal.NewFromInt(10), CryptoID: "btc"})
	assert.ErrorIs(t, err, gameerr.ErrNotFound)
}

func TestSpin_WinRoundsToWholeUnit(t *testing.T) {
	// lemon-пара при дробной ставке: 7.5 * 3 = 22.5 -> Round(0) дает 23
	_, ctx, s := newTestService(t, seq(0.6, 0.6, 0.1), 100)

	res, err := s.Spin(ctx, model.SlotSpin{Bet: decimal.NewFromFloat(7.5), CryptoID: "usd"})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(23).Equal(res.WinAmount), "win = %s", res.WinAmount)
	// Дельта баланса = округленный выигрыш минус точная ставка
	assert.True(t, decimal.NewFromFloat(15.5).Equal(res.NetProfit))
}
