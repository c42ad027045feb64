package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type RedisConfig interface {
	Addr() string
	Password() string
	DB() int
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

type PriceFeedConfig interface {
	BaseURL() string
	RequestTimeout() time.Duration
	CacheTTL() time.Duration
}

// SlotSymbol - строка таблицы символов слота из config.yaml
type SlotSymbol struct {
	Symbol     string
	Weight     float64
	Multiplier float64
}

type SlotConfig interface {
	Symbols() []SlotSymbol
}

// RouletteConfig - множители выплат по типам ставок.
// Ключи: red, black, green, straight, split, street, corner, line
type RouletteConfig interface {
	PayoutMultipliers() map[string]float64
}

// CaseItem и Case - справочник кейсов из config.yaml
type CaseItem struct {
	ID       int
	Name     string
	Rarity   string
	Price    float64
	DropRate float64
}

type Case struct {
	ID    int
	Name  string
	Price float64
	Items []CaseItem
}

type CasesConfig interface {
	Cases() []Case
}

// WalletConfig - денежный актив площадки и стартовый баланс нового пользователя
type WalletConfig interface {
	MoneyAsset() string
	StartBalance() float64
}
