package env

import (
	"crypto_casino/internal/config"
	"os"
	"time"
)

const (
	priceFeedURLEnvName     = "PRICE_FEED_URL"
	priceFeedTimeoutEnvName = "PRICE_FEED_TIMEOUT"
	priceCacheTTLEnvName    = "PRICE_CACHE_TTL"

	defaultPriceFeedURL     = "https://api.coingecko.com/api/v3"
	defaultPriceFeedTimeout = 5 * time.Second
	defaultPriceCacheTTL    = time.Minute
)

type priceFeedConfig struct {
	baseURL        string
	requestTimeout time.Duration
	cacheTTL       time.Duration
}

func NewPriceFeedConfig() (config.PriceFeedConfig, error) {
	cfg := &priceFeedConfig{
		baseURL:        defaultPriceFeedURL,
		requestTimeout: defaultPriceFeedTimeout,
		cacheTTL:       defaultPriceCacheTTL,
	}

	if url := os.Getenv(priceFeedURLEnvName); len(url) > 0 {
		cfg.baseURL = url
	}
	if raw := os.Getenv(priceFeedTimeoutEnvName); len(raw) > 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, err
		}
		cfg.requestTimeout = parsed
	}
	if raw := os.Getenv(priceCacheTTLEnvName); len(raw) > 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, err
		}
		cfg.cacheTTL = parsed
	}

	return cfg, nil
}

func (cfg *priceFeedConfig) BaseURL() string {
	return cfg.baseURL
}

func (cfg *priceFeedConfig) RequestTimeout() time.Duration {
	return cfg.requestTimeout
}

func (cfg *priceFeedConfig) CacheTTL() time.Duration {
	return cfg.cacheTTL
}
