package env

import (
	"crypto_casino/internal/config"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Структура config.yaml с игровыми таблицами.
// Таблицы неизменяемы после загрузки и передаются в сервисы как данные
type yamlGameConfig struct {
	Wallet struct {
		MoneyAsset   string  `yaml:"money_asset"`
		StartBalance float64 `yaml:"start_balance"`
	} `yaml:"wallet"`

	Slot struct {
		Symbols []struct {
			Symbol     string  `yaml:"symbol"`
			Weight     float64 `yaml:"weight"`
			Multiplier float64 `yaml:"multiplier"`
		} `yaml:"symbols"`
	} `yaml:"slot"`

	Roulette struct {
		Payouts map[string]float64 `yaml:"payouts"`
	} `yaml:"roulette"`

	Cases []struct {
		ID    int     `yaml:"id"`
		Name  string  `yaml:"name"`
		Price float64 `yaml:"price"`
		Items []struct {
			ID       int     `yaml:"id"`
			Name     string  `yaml:"name"`
			Rarity   string  `yaml:"rarity"`
			Price    float64 `yaml:"price"`
			DropRate float64 `yaml:"drop_rate"`
		} `yaml:"items"`
	} `yaml:"cases"`
}

func loadGameConfig(path string) (*yamlGameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	var cfg yamlGameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	return &cfg, nil
}

type slotConfig struct {
	symbols []config.SlotSymbol
}

// NewSlotConfigFromYAML загружает таблицу символов слота.
// Веса должны суммироваться в 1.0 (с небольшой погрешностью float)
func NewSlotConfigFromYAML(path string) (config.SlotConfig, error) {
	cfg, err := loadGameConfig(path)
	if err != nil {
		return nil, err
	}
	if len(cfg.Slot.Symbols) == 0 {
		return nil, errors.New("slot symbols not found in config")
	}

	total := 0.0
	symbols := make([]config.SlotSymbol, 0, len(cfg.Slot.Symbols))
	for _, s := range cfg.Slot.Symbols {
		if s.Weight <= 0 || s.Multiplier <= 0 {
			return nil, fmt.Errorf("invalid slot symbol %q: weight and multiplier must be positive", s.Symbol)
		}
		total += s.Weight
		symbols = append(symbols, config.SlotSymbol{
			Symbol:     s.Symbol,
			Weight:     s.Weight,
			Multiplier: s.Multiplier,
		})
	}
	if math.Abs(total-1.0) > 1e-6 {
		return nil, fmt.Errorf("slot symbol weights must sum to 1.0, got %v", total)
	}

	return &slotConfig{symbols: symbols}, nil
}

func (cfg *slotConfig) Symbols() []config.SlotSymbol {
	return cfg.symbols
}

type rouletteConfig struct {
	payouts map[string]float64
}

func NewRouletteConfigFromYAML(path string) (config.RouletteConfig, error) {
	cfg, err := loadGameConfig(path)
	if err != nil {
		return nil, err
	}
	if len(cfg.Roulette.Payouts) == 0 {
		return nil, errors.New("roulette payouts not found in config")
	}

	return &rouletteConfig{payouts: cfg.Roulette.Payouts}, nil
}

func (cfg *rouletteConfig) PayoutMultipliers() map[string]float64 {
	return cfg.payouts
}

type casesConfig struct {
	cases []config.Case
}

func NewCasesConfigFromYAML(path string) (config.CasesConfig, error) {
	cfg, err := loadGameConfig(path)
	if err != nil {
		return nil, err
	}
	if len(cfg.Cases) == 0 {
		return nil, errors.New("cases not found in config")
	}

	cases := make([]config.Case, 0, len(cfg.Cases))
	for _, c := range cfg.Cases {
		if c.Price <= 0 || len(c.Items) == 0 {
			return nil, fmt.Errorf("invalid case %d: price must be positive and items non-empty", c.ID)
		}
		items := make([]config.CaseItem, 0, len(c.Items))
		for _, it := range c.Items {
			if it.DropRate <= 0 {
				return nil, fmt.Errorf("invalid item %d in case %d: drop_rate must be positive", it.ID, c.ID)
			}
			items = append(items, config.CaseItem{
				ID:       it.ID,
				Name:     it.Name,
				Rarity:   it.Rarity,
				Price:    it.Price,
				DropRate: it.DropRate,
			})
		}
		cases = append(cases, config.Case{
			ID:    c.ID,
			Name:  c.Name,
			Price: c.Price,
			Items: items,
		})
	}

	return &casesConfig{cases: cases}, nil
}

func (cfg *casesConfig) Cases() []config.Case {
	return cfg.cases
}

type walletConfig struct {
	moneyAsset   string
	startBalance float64
}

func NewWalletConfigFromYAML(path string) (config.WalletConfig, error) {
	cfg, err := loadGameConfig(path)
	if err != nil {
		return nil, err
	}
	if len(cfg.Wallet.MoneyAsset) == 0 {
		return nil, errors.New("wallet money asset not found in config")
	}

	return &walletConfig{
		moneyAsset:   cfg.Wallet.MoneyAsset,
		startBalance: cfg.Wallet.StartBalance,
	}, nil
}

func (cfg *walletConfig) MoneyAsset() string {
	return cfg.moneyAsset
}

func (cfg *walletConfig) StartBalance() float64 {
	return cfg.startBalance
}
