package roulette

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

type rouletteCfg struct{}

func (rouletteCfg) PayoutMultipliers() map[string]float64 {
	return map[string]float64{
		"red": 0.5, "black": 0.5, "green": 35,
		"straight": 35, "split": 17, "street": 11, "corner": 8, "line": 5,
	}
}

func fixed(v float64) weighted.Source {
	return func() float64 { return v }
}

// sourceFor возвращает бросок, при котором колесо выдаст заданное число
func sourceFor(number int) weighted.Source {
	return fixed((float64(number) + 0.5) / wheelSize)
}

func newTestService(t *testing.T, rnd weighted.Source, balance int64) (*mem_repo.WalletRepo, context.Context, *serv) {
	t.Helper()

	walletRepo := mem_repo.NewWalletRepository()
	ctx := middleware.WithUserID(context.Background(), 1)
	require.NoError(t, walletRepo.CreateWallet(ctx, 1, "usd", decimal.NewFromInt(balance)))

	s := NewRouletteService(rouletteCfg{}, walletRepo, mem_repo.NewManager(), rnd).(*serv)
	return walletRepo, ctx, s
}

func TestNumberColor_CanonicalWheel(t *testing.T) {
	assert.Equal(t, model.ColorGreen, NumberColor(0))

	reds := []int{1, 3, 5, 7, 9, 12, 14, 16, 18, 19, 21, 23, 25, 27, 30, 32, 34, 36}
	redSet := make(map[int]bool, len(reds))
	for _, n := range reds {
		redSet[n] = true
		assert.Equal(t, model.ColorRed, NumberColor(n), "number %d", n)
	}
	for n := 1; n <= 36; n++ {
		if !redSet[n] {
			assert.Equal(t, model.ColorBlack, NumberColor(n), "number %d", n)
		}
	}
}

func TestSpinWheel_CoversFullRange(t *testing.T) {
	assert.Equal(t, 0, SpinWheel(fixed(0)).Number)
	assert.Equal(t, 36, SpinWheel(fixed(0.999999)).Number)

	// Бросок ровно 1.0 невозможен для [0,1), но защита от него должна держать границу
	assert.Equal(t, 36, SpinWheel(fixed(1.0)).Number)
}

func TestSpinWheel_Distribution(t *testing.T) {
	seen := make(map[int]int)
	for i := 0; i < wheelSize; i++ {
		res := SpinWheel(sourceFor(i))
		seen[res.Number]++
	}
	assert.Len(t, seen, wheelSize)
}

func TestSpin_ColorBetWin(t *testing.T) {
	// 22 - черное: ставка 10 на Black дает +5 при множителе 0.5
	_, ctx, s := newTestService(t, sourceFor(22), 100)

	res, err := s.Spin(ctx, model.RouletteBet{
		Type:     model.BetBlack,
		Bet:      decimal.NewFromInt(10),
		CryptoID: "usd",
	})
	require.NoError(t, err)

	assert.Equal(t, model.ColorBlack, res.Wheel.Color)
	assert.Equal(t, 22, res.Wheel.Number)
	assert.True(t, decimal.NewFromInt(5).Equal(res.Payout), "payout = %s", res.Payout)
	assert.True(t, decimal.NewFromInt(105).Equal(res.Balance))
}

func TestSpin_ColorBetLoss(t *testing.T) {
	// 22 - черное: ставка на Red проигрывает
	_, ctx, s := newTestService(t, sourceFor(22), 100)

	res, err := s.Spin(ctx, model.RouletteBet{
		Type:     model.BetRed,
		Bet:      decimal.NewFromInt(10),
		CryptoID: "usd",
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(-10).Equal(res.Payout))
	assert.True(t, decimal.NewFromInt(90).Equal(res.Balance))
}

func TestSpin_StraightBet(t *testing.T) {
	_, ctx, s := newTestService(t, sourceFor(5), 100)

	res, err := s.Spin(ctx, model.RouletteBet{
		Type:     model.BetStraight,
		Numbers:  []int{5},
		Bet:      decimal.NewFromInt(10),
		CryptoID: "usd",
	})
	require.NoError(t, err)

	// Прямая ставка: 10 * 35 = 350
	assert.True(t, decimal.NewFromInt(350).Equal(res.Payout))
	assert.True(t, decimal.NewFromInt(450).Equal(res.Balance))
}

func TestSpin_GreenBetWinsOnZero(t *testing.T) {
	_, ctx, s := newTestService(t, sourceFor(0), 100)

	res, err := s.Spin(ctx, model.RouletteBet{
		Type:     model.BetGreen,
		Bet:      decimal.NewFromInt(10),
		CryptoID: "usd",
	})
	require.NoError(t, err)

	assert.Equal(t, model.ColorGreen, res.Wheel.Color)
	assert.True(t, decimal.NewFromInt(350).Equal(res.Payout))
}

func TestSpin_SplitBetCoversBothNumbers(t *testing.T) {
	_, ctx, s := newTestService(t, sourceFor(8), 100)

	res, err := s.Spin(ctx, model.RouletteBet{
		Type:     model.BetSplit,
		Numbers:  []int{8, 9},
		Bet:      decimal.NewFromInt(10),
		CryptoID: "usd",
	})
	require.NoError(t, err)

	// Сплит: 10 * 17 = 170
	assert.True(t, decimal.NewFromInt(170).Equal(res.Payout))
}

func TestSpin_ValidationBeforeWheel(t *testing.T) {
	walletRepo, ctx, s := newTestService(t, sourceFor(5), 100)

	cases := []model.RouletteBet{
		{Type: "Dozen", Bet: decimal.NewFromInt(10), CryptoID: "usd"},                               // неизвестный тип
		{Type: model.BetStraight, Numbers: []int{1, 2}, Bet: decimal.NewFromInt(10), CryptoID: "usd"}, // неверное число номеров
		{Type: model.BetSplit, Numbers: []int{1}, Bet: decimal.NewFromInt(10), CryptoID: "usd"},
		{Type: model.BetStreet, Numbers: []int{1, 2, 3, 4}, Bet: decimal.NewFromInt(10), CryptoID: "usd"},
		{Type: model.BetStraight, Numbers: []int{37}, Bet: decimal.NewFromInt(10), CryptoID: "usd"}, // вне колеса
		{Type: model.BetStraight, Numbers: []int{-1}, Bet: decimal.NewFromInt(10), CryptoID: "usd"},
		{Type: model.BetRed, Numbers: []int{5}, Bet: decimal.NewFromInt(10), CryptoID: "usd"}, // цветовая ставка с числами
		{Type: model.BetRed, Bet: decimal.Zero, CryptoID: "usd"},
		{Type: model.BetRed, Bet: decimal.NewFromInt(10)},
	}
	for _, bet := range cases {
		_, err := s.Spin(ctx, bet)
		assert.ErrorIs(t, err, gameerr.ErrValidation, "bet %+v", bet)
	}

	// Валидация не трогает леджер
	bal, err := walletRepo.GetBalance(ctx, 1, "usd")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(bal))
}

func TestSpin_InsufficientFundsLeavesBalance(t *testing.T) {
	walletRepo, ctx, s := newTestService(t, sourceFor(5), 5)

	_, err := s.Spin(ctx, model.RouletteBet{
		Type:     model.BetRed,
		Bet:      decimal.NewFromInt(10),
		CryptoID: "usd",
	})
	require.ErrorIs(t, err, gameerr.ErrInsufficientFunds)

	bal, err := walletRepo.GetBalance(ctx, 1, "usd")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(5).Equal(bal))
}
