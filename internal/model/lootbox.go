package model

import "github.com/shopspring/decimal"

// CaseItem - предмет в таблице дропа кейса
type CaseItem struct {
	ItemID   int
	Name     string
	Rarity   string
	Price    decimal.Decimal
	DropRate float64
}

// Case - кейс: фиксированная цена и взвешенная таблица предметов.
// Справочные данные, только для чтения
type Case struct {
	ID       int
	Name     string
	CryptoID string // актив, которым оплачивается кейс
	Price    decimal.Decimal
	Items    []CaseItem
}

type OpenCaseResult struct {
	Item         CaseItem
	PriceDebited decimal.Decimal
	Balance      decimal.Decimal
}

// InventoryItem - запись инвентаря (userID, itemID) -> count
type InventoryItem struct {
	ItemID int
	Name   string
	Price  decimal.Decimal
	Count  int
}

type SellResult struct {
	ItemID      int
	SoldCount   int
	ItemPrice   decimal.Decimal
	TotalEarned decimal.Decimal
	Balance     decimal.Decimal
}
