package coinflip

import (
	"context"
	"testing"

	"crypto_casino/internal/gameerr"
	"crypto_casino/internal/middleware"
	"crypto_casino/internal/model"
	"crypto_casino/internal/repository/mem_repo"
	"crypto_casino/pkg/weighted"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixed(v float64) weighted.Source {
	return func() float64 { return v }
}

func newTestService(t *testing.T, rnd weighted.Source, balance int64) (*mem_repo.WalletRepo, context.Context, *serv) {
	t.Helper()

	walletRepo := mem_repo.NewWalletRepository()
	ctx := middleware.WithUserID(context.Background(), 1)
	require.NoError(t, walletRepo.CreateWallet(ctx, 1, "usd", decimal.NewFromInt(balance)))

	s := NewCoinFlipService(walletRepo, mem_repo.NewManager(), rnd).(*serv)
	return walletRepo, ctx, s
}

func TestToss_SplitsAtHalf(t *testing.T) {
	assert.Equal(t, model.CoinHeads, Toss(fixed(0.0)))
	assert.Equal(t, model.CoinHeads, Toss(fixed(0.49)))
	assert.Equal(t, model.CoinTails, Toss(fixed(0.5)))
	assert.Equal(t, model.CoinTails, Toss(fixed(0.99)))
}

func TestFlip_WinDoublesStake(t *testing.T) {
	_, ctx, s := newTestService(t, fixed(0.3), 100)

	res, err := s.Flip(ctx, model.CoinFlip{
		Choice:   model.CoinHeads,
		Bet:      decimal.NewFromInt(10),
		CryptoID: "usd",
	})
	require.NoError(t, err)

	assert.Equal(t, model.CoinHeads, res.Result)
	assert.True(t, res.Won)
	assert.True(t, decimal.NewFromInt(10).Equal(res.Payout))
	assert.True(t, decimal.NewFromInt(110).Equal(res.Balance))
}

func TestFlip_LossDebitsStake(t *testing.T) {
	walletRepo, ctx, s := newTestService(t, fixed(0.7), 100)

	res, err := s.Flip(ctx, model.CoinFlip{
		Choice:   model.CoinHeads,
		Bet:      decimal.NewFromInt(10),
		CryptoID: "usd",
	})
	require.NoError(t, err)

	assert.Equal(t, model.CoinTails, res.Result)
	assert.False(t, res.Won)
	assert.True(t, decimal.NewFromInt(-10).Equal(res.Payout))

	bal, err := walletRepo.GetBalance(ctx, 1, "usd")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(90).Equal(bal))
}

func TestFlip_RejectsUnknownChoice(t *testing.T) {
	_, ctx, s := newTestService(t, fixed(0.3), 100)

	_, err := s.Flip(ctx, model.CoinFlip{
		Choice:   "edge",
		Bet:      decimal.NewFromInt(10),
		CryptoID: "usd",
	})
	assert.ErrorIs(t, err, gameerr.ErrValidation)
}

func TestFlip_InsufficientFundsLeavesBalance(t *testing.T) {
	walletRepo, ctx, s := newTestService(t, fixed(0.3), 5)

	_, err := s.Flip(ctx, model.CoinFlip{
		Choice:   model.CoinHeads,
		Bet:      decimal.NewFromInt(10),
		CryptoID: "usd",
	})
	require.ErrorIs(t, err, gameerr.ErrInsufficientFunds)

	bal, err := walletRepo.GetBalance(ctx, 1, "usd")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(5).Equal(bal))
}
