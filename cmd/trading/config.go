package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/lukasz-zimnoch/trading"
	"github.com/lukasz-zimnoch/trading/inmem"
	"github.com/shopspring/decimal"
	"github.com/sherifabdlnaby/configuro"
)

// Config values can be set using either environment variables with `CONFIG_`
// prefix or config.yml file placed in working directory.
// See https://github.com/sherifabdlnaby/configuro.
type Config struct {
	Logging    Logging
	Trading    Trading
	Simulation Simulation
	Binance    Binance
	Journal    Journal
	Database   Database
	PubSub     PubSub
}

type Logging struct {
	Level  string
	Format string
}

type Trading struct {
	Pair        string
	Environment string
	Strategy    string
	Lookback    int
	Interval    string

	// TradePercentage is a decimal fraction of the quote balance, e.g. "0.5".
	TradePercentage string
	RefreshMinutes  int
}

// Simulation holds the starting point of the SIMULATED environment ledger.
// Amounts are decimal strings.
type Simulation struct {
	BaseBalance  string
	QuoteBalance string
	MakerFee     string
	TakerFee     string
}

type Binance struct {
	ApiKey    string
	SecretKey string
	BaseURL   string
}

type Journal struct {
	// Driver is one of none, sqlite or postgres.
	Driver     string
	SQLitePath string
}

type Database struct {
	Address      string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MigrationDir string
}

type PubSub struct {
	ProjectID string
	TopicID   string
}

func defaultConfig() *Config {
	return &Config{
		Logging: Logging{
			Level: "info",
		},
		Trading: Trading{
			Pair:            "ADA/USDT",
			Environment:     "SIMULATED",
			Strategy:        "SIMPLE",
			Lookback:        20,
			Interval:        "1m",
			TradePercentage: "1",
			RefreshMinutes:  1,
		},
		Simulation: Simulation{
			BaseBalance:  "0",
			QuoteBalance: inmem.DefaultQuoteBalance.String(),
			MakerFee:     inmem.DefaultFeeRate.String(),
			TakerFee:     inmem.DefaultFeeRate.String(),
		},
		Journal: Journal{
			Driver:     "none",
			SQLitePath: "trading.sqlite",
		},
		Database: Database{
			Address:  "localhost:5432",
			User:     "postgres",
			Password: "postgres",
			Name:     "postgres",
			SSLMode:  "disable",
		},
	}
}

// readConfig loads the optional dotenv file into the process environment
// and then lets configuro overlay config.yml and environment variables on
// top of the defaults.
func readConfig(envFile string) (*Config, error) {
	if len(envFile) > 0 {
		if err := godotenv.Load(envFile); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf(
				"could not load env file [%v]: [%v]",
				envFile,
				err,
			)
		}
	}

	loader, err := configuro.NewConfig()
	if err != nil {
		return nil, err
	}

	config := defaultConfig()

	err = loader.Load(config)
	if err != nil {
		return nil, err
	}

	err = loader.Validate(config)
	if err != nil {
		return nil, err
	}

	return config, nil
}

func (t *Trading) traderConfig() (trading.TraderConfig, error) {
	pair, err := trading.ParsePair(t.Pair)
	if err != nil {
		return trading.TraderConfig{}, configurationError(err)
	}

	environment, err := trading.ParseEnvironment(t.Environment)
	if err != nil {
		return trading.TraderConfig{}, configurationError(err)
	}

	kind, err := trading.ParseStrategyKind(t.Strategy)
	if err != nil {
		return trading.TraderConfig{}, configurationError(err)
	}

	interval, err := trading.ParseCandleInterval(t.Interval)
	if err != nil {
		return trading.TraderConfig{}, configurationError(err)
	}

	tradePercentage, err := decimal.NewFromString(t.TradePercentage)
	if err != nil {
		return trading.TraderConfig{}, configurationError(err)
	}

	config := trading.TraderConfig{
		Pair:        pair,
		Environment: environment,
		Strategy: trading.StrategyConfig{
			Kind:            kind,
			LookbackPeriods: t.Lookback,
			CandleInterval:  interval,
		},
		TradePercentage: tradePercentage,
	}

	if err := config.Validate(); err != nil {
		return trading.TraderConfig{}, err
	}

	if t.RefreshMinutes <= 0 {
		return trading.TraderConfig{}, fmt.Errorf(
			"%w: refresh minutes must be positive: [%v]",
			trading.ErrConfiguration,
			t.RefreshMinutes,
		)
	}

	return config, nil
}

func (s *Simulation) ledger() (*inmem.SimulatedLedger, error) {
	amounts := make([]decimal.Decimal, 4)
	for index, text := range []string{
		s.BaseBalance,
		s.QuoteBalance,
		s.MakerFee,
		s.TakerFee,
	} {
		amount, err := decimal.NewFromString(text)
		if err != nil {
			return nil, configurationError(err)
		}

		amounts[index] = amount
	}

	return inmem.NewSimulatedLedger(
		trading.Balances{Base: amounts[0], Quote: amounts[1]},
		trading.Fees{Maker: amounts[2], Taker: amounts[3]},
	)
}

func configurationError(err error) error {
	if errors.Is(err, trading.ErrConfiguration) {
		return err
	}

	return fmt.Errorf("%w: [%v]", trading.ErrConfiguration, err)
}
