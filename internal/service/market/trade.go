package market

import (
	"context"
	"strings"

	"crypto_casino/internal/gameerr"
	"crypto_casino/internal/middleware"
	"crypto_casino/internal/model"

	"github.com/shopspring/decimal"
)

func (s *serv) Price(ctx context.Context, cryptoID string) (*model.CoinPrice, error) {
	cryptoID = strings.ToLower(strings.TrimSpace(cryptoID))
	if cryptoID == "" {
		return nil, gameerr.Validationf("crypto id is required")
	}

	price, err := s.feed.GetPrice(ctx, cryptoID)
	if err != nil {
		return nil, err
	}

	return &model.CoinPrice{CryptoID: cryptoID, PriceUSD: price}, nil
}

// Buy покупает криптоактив за денежный актив по текущей цене фида.
// Цена берется до транзакции, обе дельты леджера идут одной транзакцией
func (s *serv) Buy(ctx context.Context, cryptoID string, quantity decimal.Decimal) (*model.TradeResult, error) {
	return s.trade(ctx, cryptoID, quantity, true)
}

// Sell продает криптоактив за денежный актив по текущей цене фида
func (s *serv) Sell(ctx context.Context, cryptoID string, quantity decimal.Decimal) (*model.TradeResult, error) {
	return s.trade(ctx, cryptoID, quantity, false)
}

func (s *serv) trade(ctx context.Context, cryptoID string, quantity decimal.Decimal, buy bool) (*model.TradeResult, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, gameerr.Validationf("user id not found in context")
	}

	cryptoID = strings.ToLower(strings.TrimSpace(cryptoID))
	if cryptoID == "" {
		return nil, gameerr.Validationf("crypto id is required")
	}
	if cryptoID == s.moneyAsset {
		return nil, gameerr.Validationf("cannot trade the money asset %q", cryptoID)
	}
	if !quantity.IsPositive() {
		return nil, gameerr.Validationf("quantity must be positive, got %s", quantity)
	}

	price, err := s.feed.GetPrice(ctx, cryptoID)
	if err != nil {
		return nil, err
	}
	total := price.Mul(quantity)

	moneyDelta, cryptoDelta := total.Neg(), quantity
	if !buy {
		moneyDelta, cryptoDelta = total, quantity.Neg()
	}

	var res *model.TradeResult
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Списание всегда идет первым: неудачный дебет не оставляет висящий кредит
		var moneyBalance, cryptoBalance decimal.Decimal
		if buy {
			moneyBalance, err = s.walletRepo.ApplyDelta(txCtx, userID, s.moneyAsset, moneyDelta)
			if err != nil {
				return err
			}
			cryptoBalance, err = s.walletRepo.ApplyDelta(txCtx, userID, cryptoID, cryptoDelta)
			if err != nil {
				return err
			}
		} else {
			cryptoBalance, err = s.walletRepo.ApplyDelta(txCtx, userID, cryptoID, cryptoDelta)
			if err != nil {
				return err
			}
			moneyBalance, err = s.walletRepo.ApplyDelta(txCtx, userID, s.moneyAsset, moneyDelta)
			if err != nil {
				return err
			}
		}

		res = &model.TradeResult{
			CryptoID:      cryptoID,
			Quantity:      quantity,
			PricePerUnit:  price,
			Total:         total,
			MoneyBalance:  moneyBalance,
			CryptoBalance: cryptoBalance,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}
