package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const validConfig = `
wallet:
  money_asset: usd
  start_balance: 1000

slot:
  symbols:
    - {symbol: grape, weight: 0.7, multiplier: 2}
    - {symbol: seven, weight: 0.3, multiplier: 10}

roulette:
  payouts:
    red: 0.5
    black: 0.5
    green: 35
    straight: 35
    split: 17
    street: 11
    corner: 8
    line: 5

cases:
  - id: 1
    name: starter
    price: 50
    items:
      - {id: 101, name: rusty knife, rarity: common, price: 10, drop_rate: 0.9}
      - {id: 102, name: gold knife, rarity: rare, price: 200, drop_rate: 0.1}
`

func TestGameConfigFromYAML(t *testing.T) {
	path := writeConfig(t, validConfig)

	slotCfg, err := NewSlotConfigFromYAML(path)
	require.NoError(t, err)
	require.Len(t, slotCfg.Symbols(), 2)
	assert.Equal(t, "grape", slotCfg.Symbols()[0].Symbol)

	rouletteCfg, err := NewRouletteConfigFromYAML(path)
	require.NoError(t, err)
	assert.Equal(t, 35.0, rouletteCfg.PayoutMultipliers()["straight"])

	casesCfg, err := NewCasesConfigFromYAML(path)
	require.NoError(t, err)
	require.Len(t, casesCfg.Cases(), 1)
	assert.Len(t, casesCfg.Cases()[0].Items, 2)

	walletCfg, err := NewWalletConfigFromYAML(path)
	require.NoError(t, err)
	assert.Equal(t, "usd", walletCfg.MoneyAsset())
	assert.Equal(t, 1000.0, walletCfg.StartBalance())
}

func TestSlotConfig_WeightsMustSumToOne(t *testing.T) {
	path := writeConfig(t, `
slot:
  symbols:
    - {symbol: grape, weight: 0.7, multiplier: 2}
    - {symbol: seven, weight: 0.5, multiplier: 10}
`)

	_, err := NewSlotConfigFromYAML(path)
	assert.ErrorContains(t, err, "sum to 1.0")
}

func TestSlotConfig_RejectsNonPositiveWeight(t *testing.T) {
	path := writeConfig(t, `
slot:
  symbols:
    - {symbol: grape, weight: -0.5, multiplier: 2}
    - {symbol: seven, weight: 1.5, multiplier: 10}
`)

	_, err := NewSlotConfigFromYAML(path)
	assert.ErrorContains(t, err, "must be positive")
}

func TestCasesConfig_RejectsBadDropRate(t *testing.T) {
	path := writeConfig(t, `
cases:
  - id: 1
    name: broken
    price: 50
    items:
      - {id: 101, name: knife, rarity: common, price: 10, drop_rate: 0}
`)

	_, err := NewCasesConfigFromYAML(path)
	assert.ErrorContains(t, err, "drop_rate")
}

func TestConfig_MissingSections(t *testing.T) {
	path := writeConfig(t, "wallet:\n  money_asset: usd\n")

	_, err := NewSlotConfigFromYAML(path)
	assert.Error(t, err)

	_, err = NewRouletteConfigFromYAML(path)
	assert.Error(t, err)

	_, err = NewCasesConfigFromYAML(path)
	assert.Error(t, err)
}
