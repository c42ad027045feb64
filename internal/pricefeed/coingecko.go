// Package pricefeed - клиент внешнего фида цен (CoinGecko) с кэшем в redis.
// Используется только покупкой/продажей активов, не рандомными играми
package pricefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"crypto_casino/internal/config"
	"crypto_casino/internal/gameerr"
	"crypto_casino/pkg/logger"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PriceFeed - контракт фида цен для сервисов
type PriceFeed interface {
	GetPrice(ctx context.Context, cryptoID string) (decimal.Decimal, error)
}

type coinGeckoResponse struct {
	MarketData struct {
		CurrentPrice map[string]float64 `json:"current_price"`
	} `json:"market_data"`
}

type feed struct {
	baseURL  string
	httpc    *http.Client
	rdb      *redis.Client
	cacheTTL time.Duration
}

// NewCoinGeckoFeed создает фид. rdb может быть nil - тогда кэш выключен
func NewCoinGeckoFeed(cfg config.PriceFeedConfig, rdb *redis.Client) PriceFeed {
	return &feed{
		baseURL:  cfg.BaseURL(),
		httpc:    &http.Client{Timeout: cfg.RequestTimeout()},
		rdb:      rdb,
		cacheTTL: cfg.CacheTTL(),
	}
}

// GetPrice - цена актива в USD. Сначала кэш, затем запрос к фиду.
// Ошибка фида должна прервать расчет до любой мутации леджера -
// поэтому никаких нулевых цен в ответе, только ошибка
func (f *feed) GetPrice(ctx context.Context, cryptoID string) (decimal.Decimal, error) {
	cacheKey := "price:" + cryptoID

	if f.rdb != nil {
		cached, err := f.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			price, parseErr := decimal.NewFromString(cached)
			if parseErr == nil {
				return price, nil
			}
		}
	}

	reqURL := fmt.Sprintf("%s/coins/%s?localization=false&tickers=false&market_data=true&community_data=false&developer_data=false&sparkline=false",
		f.baseURL, url.PathEscape(cryptoID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return decimal.Zero, err
	}

	res, err := f.httpc.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to fetch price for %s: %w", cryptoID, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return decimal.Zero, gameerr.NotFoundf("coin %s not found", cryptoID)
	}
	if res.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("price feed returned status %d for %s", res.StatusCode, cryptoID)
	}

	var payload coinGeckoResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode price feed response: %w", err)
	}

	usd, ok := payload.MarketData.CurrentPrice["usd"]
	if !ok || usd <= 0 {
		return decimal.Zero, gameerr.NotFoundf("usd price not found for %s", cryptoID)
	}

	price := decimal.NewFromFloat(usd)

	if f.rdb != nil {
		if err := f.rdb.Set(ctx, cacheKey, price.String(), f.cacheTTL).Err(); err != nil {
			// Кэш не критичен
			logger.Warn("failed to cache price", zap.String("crypto_id", cryptoID), zap.Error(err))
		}
	}

	return price, nil
}
