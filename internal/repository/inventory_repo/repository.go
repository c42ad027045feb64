package inventory_repo

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
	table        = "equipment"
	colUserID    = "user_id"
	colItemID    = "item_id"
	colItemName  = "item_name"
	colItemPrice = "item_price"
	colCount     = "count"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewInventoryRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.InventoryRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// AddItem - зачисление предмета в инвентарь (upsert по паре пользователь/предмет)
func (r *repo) AddItem(ctx context.Context, userID int, item model.CaseItem, count int) error {
	query := sq.Insert(table).
		Columns(colUserID, colItemID, colItemName, colItemPrice, colCount).
		Values(userID, item.ItemID, item.Name, item.Price.String(), count).
		Suffix("ON CONFLICT (" + colUserID + ", " + colItemID + ") DO UPDATE SET " +
			colCount + " = " + table + "." + colCount + " + EXCLUDED." + colCount).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// RemoveItems списывает ровно count предметов условным UPDATE -
// строка меняется только если предметов хватает
func (r *repo) RemoveItems(ctx context.Context, userID int, itemID int, count int) error {
	query := sq.Update(table).
		Set(colCount, sq.Expr(colCount+" - ?", count)).
		Where(sq.Eq{colUserID: userID, colItemID: itemID}).
		Where(sq.Expr(colCount+" >= ?", count)).
		Suffix("RETURNING " + colCount).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	var left int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&left)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return gameerr.Validationf("not enough items to sell")
		}
		return err
	}

	// Пустые записи не держим
	if left == 0 {
		del := sq.Delete(table).
			Where(sq.Eq{colUserID: userID, colItemID: itemID, colCount: 0}).
			PlaceholderFormat(sq.Dollar)

		sqlStr, args, err = del.ToSql()
		if err != nil {
			return err
		}
		if _, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...); err != nil {
			return err
		}
	}

	return nil
}

// GetItem - запись инвентаря по предмету
func (r *repo) GetItem(ctx context.Context, userID int, itemID int) (*model.InventoryItem, error) {
	query := sq.Select(colItemID, colItemName, colItemPrice, colCount).
		From(table).
		Where(sq.Eq{colUserID: userID, colItemID: itemID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var item model.InventoryItem
	var raw string
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&item.ItemID, &item.Name, &raw, &item.Count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, gameerr.NotFoundf("item %d not found in inventory", itemID)
		}
		return nil, err
	}

	item.Price, err = decimal.NewFromString(raw)
	if err != nil {
		return nil, err
	}

	return &item, nil
}

// GetItems - весь инвентарь пользователя
func (r *repo) GetItems(ctx context.Context, userID int) ([]model.InventoryItem, error) {
	query := sq.Select(colItemID, colItemName, colItemPrice, colCount).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colItemID).
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

	var items []model.InventoryItem
	for rows.Next() {
		var item model.InventoryItem
		var raw string
		if err := rows.Scan(&item.ItemID, &item.Name, &raw, &item.Count); err != nil {
			return nil, err
		}
		item.Price, err = decimal.NewFromString(raw)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
