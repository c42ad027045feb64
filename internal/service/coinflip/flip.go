package coinflip

import (
	"context"
	"time"

	"crypto_casino/internal/gameerr"
	"crypto_casino/internal/metrics"
	"crypto_casino/internal/middleware"
	"crypto_casino/internal/model"
	"crypto_casino/pkg/weighted"
)

// Toss подбрасывает монету: обе стороны равновероятны
func Toss(src weighted.Source) model.CoinSide {
	if src() < 0.5 {
		return model.CoinHeads
	}

	return model.CoinTails
}

func (s *serv) Flip(ctx context.Context, flip model.CoinFlip) (*model.CoinFlipResult, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, gameerr.Validationf("user id not found in context")
	}

	if !flip.Bet.IsPositive() {
		return nil, gameerr.Validationf("bet must be positive, got %s", flip.Bet)
	}
	if flip.CryptoID == "" {
		return nil, gameerr.Validationf("crypto id is required")
	}
	if flip.Choice != model.CoinHeads && flip.Choice != model.CoinTails {
		return nil, gameerr.Validationf("choice must be heads or tails, got %q", flip.Choice)
	}

	started := time.Now()
	metricsResult := "fail"
	defer func() { metrics.RecordWager("coinflip", metricsResult, started) }()

	var res *model.CoinFlipResult

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err := s.walletRepo.GetBalance(txCtx, userID, flip.CryptoID)
		if err != nil {
			return err
		}
		if balance.LessThan(flip.Bet) {
			return gameerr.ErrInsufficientFunds
		}

		// генерация исхода: не повторяется и не откатывается
		result := Toss(s.rnd)
		won := result == flip.Choice

		payout := flip.Bet
		if !won {
			payout = flip.Bet.Neg()
		}

		newBalance, err := s.walletRepo.ApplyDelta(txCtx, userID, flip.CryptoID, payout)
		if err != nil {
			return err
		}

		res = &model.CoinFlipResult{
			Result:  result,
			Won:     won,
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
