package slot

import (
	"context"
	"fmt"
	"time"

	"crypto_casino/internal/gameerr"
	"crypto_casino/internal/metrics"
	"crypto_casino/internal/middleware"
	"crypto_casino/internal/model"

	"github.com/shopspring/decimal"
)

// Барабаны
const reels = 3

// Spin разыгрывает один спин слота и рассчитывает его по кошельку.
// Проигрыш и выигрыш сводятся в одну подписанную дельту - леджер
// мутируется ровно один раз за ставку
func (s *serv) Spin(ctx context.Context, req model.SlotSpin) (*model.SlotResult, error) {
	// Валидация до любого обращения к леджеру и до генерации
	if !req.Bet.IsPositive() {
		return nil, gameerr.Validationf("bet must be positive")
	}
	if req.CryptoID == "" {
		return nil, gameerr.Validationf("crypto id is required")
	}

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, gameerr.Validationf("user id not found in context")
	}

	started := time.Now()
	metricsResult := "fail"
	defer func() { metrics.RecordWager("slot", metricsResult, started) }()

	var res *model.SlotResult

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Быстрый отказ: ставка не должна превышать баланс.
		// Авторитетная защита - условное списание в ApplyDelta
		balance, err := s.walletRepo.GetBalance(txCtx, userID, req.CryptoID)
		if err != nil {
			return err
		}
		if balance.LessThan(req.Bet) {
			return gameerr.ErrInsufficientFunds
		}

		// КЛЮЧЕВОЙ ВЫЗОВ: генерация исхода. Не повторяется и не откатывается
		symbols, err := s.draw()
		if err != nil {
			return err
		}

		win := s.evaluate(symbols, req.Bet)

		// Округление выигрыша до целой единицы, ставка остается точной
		win = win.Round(0)
		netProfit := win.Sub(req.Bet)

		newBalance, err := s.walletRepo.ApplyDelta(txCtx, userID, req.CryptoID, netProfit)
		if err != nil {
			return fmt.Errorf("failed to settle slot spin: %w", err)
		}

		res = &model.SlotResult{
			Symbols:   symbols,
			WinAmount: win,
			TotalBet:  req.Bet,
			NetProfit: netProfit,
			Balance:   newBalance,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	metricsResult = "success"
	return res, nil
}

// draw - три независимых взвешенных розыгрыша: каждый барабан
// тянет из полного распределения, без общей колоды
func (s *serv) draw() ([reels]string, error) {
	var symbols [reels]string
	for i := 0; i < reels; i++ {
		sym, err := s.table.Sample(s.rnd)
		if err != nil {
			return symbols, gameerr.Internalf("slot draw failed: %v", err)
		}
		symbols[i] = sym.Symbol
	}
	return symbols, nil
}

// evaluate - выплата по комбинации:
// три одинаковых - ставка на множитель символа x2,
// два одинаковых - ставка на множитель совпавшего символа,
// иначе ноль
func (s *serv) evaluate(symbols [reels]string, bet decimal.Decimal) decimal.Decimal {
	counts := make(map[string]int, reels)
	for _, sym := range symbols {
		counts[sym]++
	}

	for sym, count := range counts {
		mult := s.symbols[sym].Multiplier
		switch {
		case count == reels:
			return bet.Mul(mult).Mul(decimal.NewFromInt(2))
		case count >= 2:
			return bet.Mul(mult)
		}
	}

	return decimal.Zero
}
