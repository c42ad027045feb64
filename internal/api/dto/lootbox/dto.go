package lootbox

import "github.com/shopspring/decimal"

type OpenCaseRequest struct {
	CaseID int `json:"case_id"`
}

type CaseItem struct {
	ItemID   int             `json:"item_id"`
	Name     string          `json:"name"`
	Rarity   string          `json:"rarity"`
	Price    decimal.Decimal `json:"price"`
	DropRate float64         `json:"drop_rate"`
}

type OpenCaseResponse struct {
	Item         CaseItem        `json:"item"`          // Выпавший предмет
	PriceDebited decimal.Decimal `json:"price_debited"` // Списанная цена кейса
	Balance      decimal.Decimal `json:"balance"`       // Баланс после
}

type Case struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	CryptoID string          `json:"crypto_id"`
	Price    decimal.Decimal `json:"price"`
	Items    []CaseItem      `json:"items"`
}

type SellRequest struct {
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}

type SellResponse struct {
	ItemID      int             `json:"item_id"`
	SoldCount   int             `json:"sold_count"`
	ItemPrice   decimal.Decimal `json:"item_price"`
	TotalEarned decimal.Decimal `json:"total_earned"`
	Balance     decimal.Decimal `json:"balance"`
}

type InventoryItem struct {
	ItemID int             `json:"item_id"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Count  int             `json:"count"`
}
