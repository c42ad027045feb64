package lootbox

import (
	"context"
	"time"

	"crypto_casino/internal/gameerr"
	"crypto_casino/internal/metrics"
	"crypto_casino/internal/middleware"
	"crypto_casino/internal/model"
)

// OpenCase списывает цену кейса и кладет выпавший предмет в инвентарь.
// Списание, розыгрыш и зачисление предмета идут одной транзакцией
func (s *serv) OpenCase(ctx context.Context, caseID int) (*model.OpenCaseResult, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, gameerr.Validationf("user id not found in context")
	}

	box, found := s.cases[caseID]
	if !found {
		return nil, gameerr.NotFoundf("case %d not found", caseID)
	}
	table := s.tables[caseID]

	started := time.Now()
	metricsResult := "fail"
	defer func() { metrics.RecordWager("lootbox", metricsResult, started) }()

	var res *model.OpenCaseResult

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err := s.walletRepo.GetBalance(txCtx, userID, box.CryptoID)
		if err != nil {
			return err
		}
		if balance.LessThan(box.Price) {
			return gameerr.ErrInsufficientFunds
		}

		// генерация исхода: не повторяется и не откатывается
		item, err := table.Sample(s.rnd)
		if err != nil {
			return gameerr.Internalf("case %d drop table: %v", caseID, err)
		}

		newBalance, err := s.walletRepo.ApplyDelta(txCtx, userID, box.CryptoID, box.Price.Neg())
		if err != nil {
			return err
		}

		if err := s.invRepo.AddItem(txCtx, userID, item, 1); err != nil {
			return err
		}

		res = &model.OpenCaseResult{
			Item:         item,
			PriceDebited: box.Price,
			Balance:      newBalance,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	metricsResult = "success"

	return res, nil
}
