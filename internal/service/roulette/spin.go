package roulette

import (
	"context"
	"time"

	"crypto_casino/internal/gameerr"
	"crypto_casino/internal/metrics"
	"crypto_casino/internal/middleware"
	"crypto_casino/internal/model"
	"crypto_casino/pkg/weighted"

	"github.com/shopspring/decimal"
)

const wheelSize = 37 // европейское колесо: 0..36

// redNumbers - канонический набор красных чисел европейской рулетки
var redNumbers = map[int]struct{}{
	1: {}, 3: {}, 5: {}, 7: {}, 9: {}, 12: {}, 14: {}, 16: {}, 18: {},
	19: {}, 21: {}, 23: {}, 25: {}, 27: {}, 30: {}, 32: {}, 34: {}, 36: {},
}

// betNumbersCount - сколько чисел покрывает каждый числовой тип ставки
var betNumbersCount = map[model.BetType]int{
	model.BetStraight: 1,
	model.BetSplit:    2,
	model.BetStreet:   3,
	model.BetCorner:   4,
	model.BetLine:     6,
}

// SpinWheel вращает колесо: равномерный выбор числа 0..36 и его цвет
func SpinWheel(src weighted.Source) model.WheelResult {
	number := int(src() * wheelSize)
	if number > wheelSize-1 {
		number = wheelSize - 1
	}
	if number < 0 {
		number = 0
	}

	return model.WheelResult{Color: NumberColor(number), Number: number}
}

// NumberColor возвращает цвет сектора: 0 зеленый, остальные по набору красных
func NumberColor(number int) model.Color {
	if number == 0 {
		return model.ColorGreen
	}
	if _, ok := redNumbers[number]; ok {
		return model.ColorRed
	}

	return model.ColorBlack
}

func (s *serv) Spin(ctx context.Context, bet model.RouletteBet) (*model.RouletteResult, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, gameerr.Validationf("user id not found in context")
	}

	// вся проверка ставки до вращения колеса
	if err := s.validateBet(bet); err != nil {
		return nil, err
	}

	started := time.Now()
	metricsResult := "fail"
	defer func() { metrics.RecordWager("roulette", metricsResult, started) }()

	var res *model.RouletteResult

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err := s.walletRepo.GetBalance(txCtx, userID, bet.CryptoID)
		if err != nil {
			return err
		}
		if balance.LessThan(bet.Bet) {
			return gameerr.ErrInsufficientFunds
		}

		// генерация исхода: не повторяется и не откатывается
		wheel := SpinWheel(s.rnd)
		payout := s.payout(bet, wheel)

		newBalance, err := s.walletRepo.ApplyDelta(txCtx, userID, bet.CryptoID, payout)
		if err != nil {
			return err
		}

		res = &model.RouletteResult{
			Wheel:   wheel,
			Payout:  payout,
			Balance: newBalance,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	metricsResult = "success"

	return res, nil
}

func (s *serv) validateBet(bet model.RouletteBet) error {
	if !bet.Bet.IsPositive() {
		return gameerr.Validationf("bet must be positive, got %s", bet.Bet)
	}
	if bet.CryptoID == "" {
		return gameerr.Validationf("crypto id is required")
	}
	if _, ok := s.multipliers[bet.Type]; !ok {
		return gameerr.Validationf("unknown bet type %q", bet.Type)
	}

	want, numeric := betNumbersCount[bet.Type]
	if !numeric {
		// цветовые ставки чисел не несут
		if len(bet.Numbers) != 0 {
			return gameerr.Validationf("bet type %q does not take numbers", bet.Type)
		}

		return nil
	}

	if len(bet.Numbers) != want {
		return gameerr.Validationf("bet type %q requires %d numbers, got %d", bet.Type, want, len(bet.Numbers))
	}
	for _, n := range bet.Numbers {
		if n < 0 || n > wheelSize-1 {
			return gameerr.Validationf("number %d is out of wheel range", n)
		}
	}

	return nil
}

// payout считает подписанную дельту баланса по результату вращения
func (s *serv) payout(bet model.RouletteBet, wheel model.WheelResult) decimal.Decimal {
	mult := s.multipliers[bet.Type]

	won := false
	switch bet.Type {
	case model.BetRed:
		won = wheel.Color == model.ColorRed
	case model.BetBlack:
		won = wheel.Color == model.ColorBlack
	case model.BetGreen:
		won = wheel.Number == 0
	default:
		for _, n := range bet.Numbers {
			if n == wheel.Number {
				won = true
				break
			}
		}
	}

	if !won {
		return bet.Bet.Neg()
	}

	return bet.Bet.Mul(mult)
}
