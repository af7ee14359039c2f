package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/lukasz-zimnoch/trading"
	"github.com/lukasz-zimnoch/trading/inmem"
	"github.com/lukasz-zimnoch/trading/logrus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrading_TraderConfig(t *testing.T) {
	config := defaultConfig().Trading
	config.Pair = "BTCUSDT"
	config.Environment = "sandbox"
	config.Strategy = "EMA"
	config.Lookback = 9
	config.Interval = "15m"
	config.TradePercentage = "0.25"

	traderConfig, err := config.traderConfig()
	require.NoError(t, err)

	assert.Equal(t, trading.Pair{Base: "BTC", Quote: "USDT"}, traderConfig.Pair)
	assert.Equal(t, trading.EnvironmentSandbox, traderConfig.Environment)
	assert.Equal(t, trading.StrategyExponential, traderConfig.Strategy.Kind)
	assert.Equal(t, 9, traderConfig.Strategy.LookbackPeriods)
	assert.Equal(t, trading.CandleInterval("15m"), traderConfig.Strategy.CandleInterval)
	assert.True(t, decimal.RequireFromString("0.25").Equal(traderConfig.TradePercentage))
}

func TestTrading_TraderConfigErrors(t *testing.T) {
	tests := map[string]func(config *Trading){
		"invalid pair":          func(config *Trading) { config.Pair = "ADA" },
		"invalid environment":   func(config *Trading) { config.Environment = "STAGING" },
		"invalid strategy":      func(config *Trading) { config.Strategy = "WEIGHTED" },
		"invalid interval":      func(config *Trading) { config.Interval = "7m" },
		"zero lookback":         func(config *Trading) { config.Lookback = 0 },
		"negative lookback":     func(config *Trading) { config.Lookback = -3 },
		"malformed percentage":  func(config *Trading) { config.TradePercentage = "half" },
		"zero percentage":       func(config *Trading) { config.TradePercentage = "0" },
		"percentage above one":  func(config *Trading) { config.TradePercentage = "1.01" },
		"zero refresh interval": func(config *Trading) { config.RefreshMinutes = 0 },
	}

	for name, modify := range tests {
		t.Run(name, func(t *testing.T) {
			config := defaultConfig().Trading
			modify(&config)

			_, err := config.traderConfig()
			assert.ErrorIs(t, err, trading.ErrConfiguration)
		})
	}
}

func TestSimulation_Ledger(t *testing.T) {
	ledger, err := defaultConfig().Simulation.ledger()
	require.NoError(t, err)

	assert.True(t, ledger.Balances().Base.IsZero())
	assert.True(t, inmem.DefaultQuoteBalance.Equal(ledger.Balances().Quote))
	assert.True(t, inmem.DefaultFeeRate.Equal(ledger.Fees().Taker))
	assert.False(t, ledger.Stale())
}

func TestSimulation_LedgerErrors(t *testing.T) {
	simulation := defaultConfig().Simulation
	simulation.QuoteBalance = "-1"

	_, err := simulation.ledger()
	assert.ErrorIs(t, err, trading.ErrConfiguration)

	simulation = defaultConfig().Simulation
	simulation.TakerFee = "a lot"

	_, err = simulation.ledger()
	assert.ErrorIs(t, err, trading.ErrConfiguration)
}

func TestBindEnvironment_Simulated(t *testing.T) {
	simulation := defaultConfig().Simulation

	ledger, executor, err := bindEnvironment(
		trading.EnvironmentSimulated,
		trading.Pair{Base: "ADA", Quote: "USDT"},
		&simulation,
		nil,
		logrus.NewDiscardLogger(),
	)
	require.NoError(t, err)

	assert.IsType(t, &inmem.SimulatedLedger{}, ledger)
	assert.IsType(t, &inmem.PaperExecutor{}, executor)
}

func TestBinanceConfig(t *testing.T) {
	config := &Binance{ApiKey: "key", SecretKey: "secret"}

	assert.True(t, binanceConfig(config, trading.EnvironmentSandbox).Testnet)
	assert.False(t, binanceConfig(config, trading.EnvironmentLive).Testnet)
	assert.False(t, binanceConfig(config, trading.EnvironmentSimulated).Testnet)
}

func TestInmemJournal_TradeRecords(t *testing.T) {
	ada := trading.Pair{Base: "ADA", Quote: "USDT"}
	btc := trading.Pair{Base: "BTC", Quote: "USDT"}

	journal := &inmemJournal{inmem.NewTradeRecordRepository(10)}

	start := time.Date(2021, 6, 11, 15, 0, 0, 0, time.UTC)
	for i, pair := range []trading.Pair{ada, btc, ada, ada} {
		require.NoError(t, journal.CreateTradeRecord(&trading.TradeRecord{
			Time: start.Add(time.Duration(i) * time.Minute),
			Pair: pair,
		}))
	}

	records, err := journal.TradeRecords(ada, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, start.Add(3*time.Minute), records[0].Time)
	assert.Equal(t, start.Add(2*time.Minute), records[1].Time)

	for _, limit := range []int{0, -1} {
		records, err := journal.TradeRecords(ada, limit)
		require.NoError(t, err)
		assert.Empty(t, records)
	}
}

func TestRecordsCommand_NonPositiveLimit(t *testing.T) {
	for _, args := range [][]string{
		{"records", "-n", "-1"},
		{"records", "--limit=0"},
	} {
		var output bytes.Buffer

		cmd := newRootCommand()
		cmd.SetOut(&output)
		cmd.SetErr(&output)
		cmd.SetArgs(args)

		err := cmd.Execute()
		assert.ErrorIs(t, err, trading.ErrConfiguration, "args: %v", args)
	}
}

func TestPrintRecords_Empty(t *testing.T) {
	var output bytes.Buffer

	require.NoError(t, printRecords(&output, nil))
	assert.Equal(t, "no trade records\n", output.String())
}

func TestVersionCommand(t *testing.T) {
	var output bytes.Buffer

	cmd := newRootCommand()
	cmd.SetOut(&output)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "trading version dev\n", output.String())
}
