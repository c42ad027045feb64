package wallet_repo

import (
	"context"
	"errors"

	"crypto_casino/internal/gameerr"
	"crypto_casino/internal/model"
	"crypto_casino/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	table        = "wallets"
	colID        = "id"
	colUserID    = "user_id"
	colCryptoID  = "crypto_id"
	colQuantity  = "quantity"
	colUpdatedAt = "updated_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewWalletRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.WalletRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// GetBalance - текущее количество актива у пользователя.
// Отсутствие кошелька - это ErrNotFound, а не нулевой баланс:
// ставить можно только активом, который заведен в кошельке
func (r *repo) GetBalance(ctx context.Context, userID int, cryptoID string) (decimal.Decimal, error) {
	query := sq.Select(colQuantity).
		From(table).
		Where(sq.Eq{colUserID: userID, colCryptoID: cryptoID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var raw string
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, gameerr.NotFoundf("wallet %s not found", cryptoID)
		}
		return decimal.Zero, err
	}

	return decimal.NewFromString(raw)
}

// ApplyDelta применяет подписанную дельту к балансу одним атомарным запросом.
//
// Списание - условный UPDATE: строка меняется только если итог не уходит
// ниже нуля, поэтому из N конкурентных списаний на весь баланс пройдет
// ровно одно, остальные получат ErrInsufficientFunds.
// Зачисление - upsert: кошелек под новый актив создается на лету.
// Возвращает баланс после применения
func (r *repo) ApplyDelta(ctx context.Context, userID int, cryptoID string, delta decimal.Decimal) (decimal.Decimal, error) {
	if delta.IsNegative() {
		return r.applyDebit(ctx, userID, cryptoID, delta)
	}
	return r.applyCredit(ctx, userID, cryptoID, delta)
}

func (r *repo) applyDebit(ctx context.Context, userID int, cryptoID string, delta decimal.Decimal) (decimal.Decimal, error) {
	query := sq.Update(table).
		Set(colQuantity, sq.Expr(colQuantity+" + ?", delta.String())).
		Set(colUpdatedAt, sq.Expr("now()")).
		Where(sq.Eq{colUserID: userID, colCryptoID: cryptoID}).
		Where(sq.Expr(colQuantity+" + ? >= 0", delta.String())).
		Suffix("RETURNING " + colQuantity).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var raw string
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&raw)
	if err == nil {
		return decimal.NewFromString(raw)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, err
	}

	// Ноль строк: либо кошелька нет, либо не хватило средств
	if _, balErr := r.GetBalance(ctx, userID, cryptoID); balErr != nil {
		return decimal.Zero, balErr
	}
	return decimal.Zero, gameerr.ErrInsufficientFunds
}

func (r *repo) applyCredit(ctx context.Context, userID int, cryptoID string, delta decimal.Decimal) (decimal.Decimal, error) {
	query := sq.Insert(table).
		Columns(colUserID, colCryptoID, colQuantity).
		Values(userID, cryptoID, delta.String()).
		Suffix("ON CONFLICT (" + colUserID + ", " + colCryptoID + ") DO UPDATE SET " +
			colQuantity + " = " + table + "." + colQuantity + " + EXCLUDED." + colQuantity + ", " +
			colUpdatedAt + " = now()").
		Suffix("RETURNING " + colQuantity).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var raw string
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&raw)
	if err != nil {
		return decimal.Zero, err
	}

	return decimal.NewFromString(raw)
}

// GetWallets - все кошельки пользователя
func (r *repo) GetWallets(ctx context.Context, userID int) ([]model.Wallet, error) {
	query := sq.Select(colID, colUserID, colCryptoID, colQuantity, colUpdatedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colCryptoID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var wallets []model.Wallet
	for rows.Next() {
		var w model.Wallet
		var raw string
		if err := rows.Scan(&w.ID, &w.UserID, &w.CryptoID, &raw, &w.UpdatedAt); err != nil {
			return nil, err
		}
		w.Quantity, err = decimal.NewFromString(raw)
		if err != nil {
			return nil, err
		}
		wallets = append(wallets, w)
	}

	return wallets, rows.Err()
}

// CreateWallet заводит кошелек с начальным балансом.
// Если кошелек уже существует - ничего не делает
func (r *repo) CreateWallet(ctx context.Context, userID int, cryptoID string, quantity decimal.Decimal) error {
	query := sq.Insert(table).
		Columns(colUserID, colCryptoID, colQuantity).
		Values(userID, cryptoID, quantity.String()).
		Suffix("ON CONFLICT (" + colUserID + ", " + colCryptoID + ") DO NOTHING").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}
