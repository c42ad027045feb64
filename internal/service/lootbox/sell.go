package lootbox

import (
	"context"

	"crypto_casino/internal/gameerr"
	"crypto_casino/internal/middleware"
	"crypto_casino/internal/model"

	"github.com/shopspring/decimal"
)

// SellItems продает предметы инвентаря по справочной цене предмета.
// Списание из инвентаря и зачисление денег идут одной транзакцией
func (s *serv) SellItems(ctx context.Context, itemID int, quantity int) (*model.SellResult, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, gameerr.Validationf("user id not found in context")
	}

	if quantity <= 0 {
		return nil, gameerr.Validationf("quantity must be positive, got %d", quantity)
	}

	item, found := s.items[itemID]
	if !found {
		return nil, gameerr.NotFoundf("item %d not found", itemID)
	}

	var res *model.SellResult

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.invRepo.RemoveItems(txCtx, userID, itemID, quantity); err != nil {
			return err
		}

		total := item.Price.Mul(decimal.NewFromInt(int64(quantity)))

		newBalance, err := s.walletRepo.ApplyDelta(txCtx, userID, s.moneyAsset, total)
		if err != nil {
			return err
		}

		res = &model.SellResult{
			ItemID:      itemID,
			SoldCount:   quantity,
			ItemPrice:   item.Price,
			TotalEarned: total,
			Balance:     newBalance,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (s *serv) Inventory(ctx context.Context) ([]model.InventoryItem, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, gameerr.Validationf("user id not found in context")
	}

	return s.invRepo.GetItems(ctx, userID)
}
