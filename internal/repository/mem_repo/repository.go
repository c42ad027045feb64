// Package mem_repo - потокобезопасные in-memory реализации леджеров.
// Используются в тестах сервисов вместо Postgres: сохраняют тот же
// контракт атомарности ApplyDelta (условное изменение под мьютексом)
package mem_repo

import (
	"context"
	"sort"
	"sync"

	"crypto_casino/internal/gameerr"
	"crypto_casino/internal/model"
	"crypto_casino/internal/repository"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/shopspring/decimal"
)

type walletKey struct {
	userID   int
	cryptoID string
}

type WalletRepo struct {
	mtx      sync.Mutex
	balances map[walletKey]decimal.Decimal
}

func NewWalletRepository() *WalletRepo {
	return &WalletRepo{
		balances: make(map[walletKey]decimal.Decimal),
	}
}

func (r *WalletRepo) GetBalance(_ context.Context, userID int, cryptoID string) (decimal.Decimal, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	bal, ok := r.balances[walletKey{userID, cryptoID}]
	if !ok {
		return decimal.Zero, gameerr.NotFoundf("wallet %s not found", cryptoID)
	}
	return bal, nil
}

// ApplyDelta - чтение-изменение-запись целиком под мьютексом:
// дельта, уводящая баланс ниже нуля, отклоняется без изменения состояния
func (r *WalletRepo) ApplyDelta(_ context.Context, userID int, cryptoID string, delta decimal.Decimal) (decimal.Decimal, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	key := walletKey{userID, cryptoID}
	bal, ok := r.balances[key]
	if !ok {
		if delta.IsNegative() {
			return decimal.Zero, gameerr.NotFoundf("wallet %s not found", cryptoID)
		}
		bal = decimal.Zero
	}

	next := bal.Add(delta)
	if next.IsNegative() {
		return decimal.Zero, gameerr.ErrInsufficientFunds
	}

	r.balances[key] = next
	return next, nil
}

func (r *WalletRepo) GetWallets(_ context.Context, userID int) ([]model.Wallet, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	var wallets []model.Wallet
	for key, bal := range r.balances {
		if key.userID != userID {
			continue
		}
		wallets = append(wallets, model.Wallet{
			UserID:   key.userID,
			CryptoID: key.cryptoID,
			Quantity: bal,
		})
	}
	sort.Slice(wallets, func(i, j int) bool { return wallets[i].CryptoID < wallets[j].CryptoID })

	return wallets, nil
}

func (r *WalletRepo) CreateWallet(_ context.Context, userID int, cryptoID string, quantity decimal.Decimal) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	key := walletKey{userID, cryptoID}
	if _, ok := r.balances[key]; !ok {
		r.balances[key] = quantity
	}
	return nil
}

type invKey struct {
	userID int
	itemID int
}

type InventoryRepo struct {
	mtx   sync.Mutex
	items map[invKey]model.InventoryItem
}

func NewInventoryRepository() *InventoryRepo {
	return &InventoryRepo{
		items: make(map[invKey]model.InventoryItem),
	}
}

func (r *InventoryRepo) AddItem(_ context.Context, userID int, item model.CaseItem, count int) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	key := invKey{userID, item.ItemID}
	entry, ok := r.items[key]
	if !ok {
		entry = model.InventoryItem{
			ItemID: item.ItemID,
			Name:   item.Name,
			Price:  item.Price,
		}
	}
	entry.Count += count
	r.items[key] = entry
	return nil
}

func (r *InventoryRepo) RemoveItems(_ context.Context, userID int, itemID int, count int) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	key := invKey{userID, itemID}
	entry, ok := r.items[key]
	if !ok || entry.Count < count {
		if !ok {
			return gameerr.NotFoundf("item %d not found in inventory", itemID)
		}
		return gameerr.Validationf("not enough items to sell")
	}

	entry.Count -= count
	if entry.Count == 0 {
		delete(r.items, key)
	} else {
		r.items[key] = entry
	}
	return nil
}

func (r *InventoryRepo) GetItem(_ context.Context, userID int, itemID int) (*model.InventoryItem, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	entry, ok := r.items[invKey{userID, itemID}]
	if !ok {
		return nil, gameerr.NotFoundf("item %d not found in inventory", itemID)
	}
	return &entry, nil
}

func (r *InventoryRepo) GetItems(_ context.Context, userID int) ([]model.InventoryItem, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	var items []model.InventoryItem
	for key, entry := range r.items {
		if key.userID != userID {
			continue
		}
		items = append(items, entry)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ItemID < items[j].ItemID })

	return items, nil
}

// Manager - trm.Manager без транзакций: просто вызывает fn.
// In-memory репозитории атомарны сами по себе
type Manager struct{}

func NewManager() *Manager { return &Manager{} }

func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *Manager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// Проверка соответствия интерфейсам
var (
	_ repository.WalletRepository    = (*WalletRepo)(nil)
	_ repository.InventoryRepository = (*InventoryRepo)(nil)
	_ trm.Manager                    = (*Manager)(nil)
)
