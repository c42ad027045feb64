package converter

import (
	"crypto_casino/internal/api/dto/lootbox"
	"crypto_casino/internal/model"
)

func toCaseItem(item model.CaseItem) lootbox.CaseItem {
	return lootbox.CaseItem{
		ItemID:   item.ItemID,
		Name:     item.Name,
		Rarity:   item.Rarity,
		Price:    item.Price,
		DropRate: item.DropRate,
	}
}

func ToOpenCaseResponse(res model.OpenCaseResult) lootbox.OpenCaseResponse {
	return lootbox.OpenCaseResponse{
		Item:         toCaseItem(res.Item),
		PriceDebited: res.PriceDebited,
		Balance:      res.Balance,
	}
}

func ToCasesResponse(cases []model.Case) []lootbox.Case {
	result := make([]lootbox.Case, len(cases))
	for i, c := range cases {
		items := make([]lootbox.CaseItem, len(c.Items))
		for j, it := range c.Items {
			items[j] = toCaseItem(it)
		}
		result[i] = lootbox.Case{
			ID:       c.ID,
			Name:     c.Name,
			CryptoID: c.CryptoID,
			Price:    c.Price,
			Items:    items,
		}
	}
	return result
}

func ToSellResponse(res model.SellResult) lootbox.SellResponse {
	return lootbox.SellResponse{
		ItemID:      res.ItemID,
		SoldCount:   res.SoldCount,
		ItemPrice:   res.ItemPrice,
		TotalEarned: res.TotalEarned,
		Balance:     res.Balance,
	}
}

func ToInventoryResponse(items []model.InventoryItem) []lootbox.InventoryItem {
	result := make([]lootbox.InventoryItem, len(items))
	for i, it := range items {
		result[i] = lootbox.InventoryItem{
			ItemID: it.ItemID,
			Name:   it.Name,
			Price:  it.Price,
			Count:  it.Count,
		}
	}
	return result
}
