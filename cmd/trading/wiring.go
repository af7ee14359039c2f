package main

import (
	"context"
	"fmt"
	"io"

	"github.com/lukasz-zimnoch/trading"
	"github.com/lukasz-zimnoch/trading/binance"
	"github.com/lukasz-zimnoch/trading/inmem"
	"github.com/lukasz-zimnoch/trading/postgres"
	"github.com/lukasz-zimnoch/trading/pubsub"
	"github.com/lukasz-zimnoch/trading/sqlite"
	"github.com/lukasz-zimnoch/trading/uuid"
)

const inmemRecordWindow = 1000

// tradeRecordStore is a trade journal the records command can read back.
type tradeRecordStore interface {
	trading.TradeRecordRepository

	TradeRecords(pair trading.Pair, limit int) ([]*trading.TradeRecord, error)
}

// closers releases resources in reverse order of acquisition.
type closers []io.Closer

func (c closers) Close() error {
	var err error
	for i := len(c) - 1; i >= 0; i-- {
		if closeErr := c[i].Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}

	return err
}

// binanceConfig binds SANDBOX to the spot testnet. SIMULATED reads real
// market data from production without touching the account.
func binanceConfig(
	config *Binance,
	environment trading.Environment,
) *binance.Config {
	return &binance.Config{
		ApiKey:    config.ApiKey,
		SecretKey: config.SecretKey,
		Testnet:   environment == trading.EnvironmentSandbox,
		BaseURL:   config.BaseURL,
	}
}

// bindEnvironment chooses the ledger and the order executor. This is the
// only place where the environment changes behaviour.
func bindEnvironment(
	environment trading.Environment,
	pair trading.Pair,
	simulation *Simulation,
	exchange *binance.ExchangeService,
	logger trading.Logger,
) (trading.Ledger, trading.OrderExecutor, error) {
	switch environment {
	case trading.EnvironmentSimulated:
		ledger, err := simulation.ledger()
		if err != nil {
			return nil, nil, err
		}

		return ledger, inmem.NewPaperExecutor(logger), nil
	case trading.EnvironmentSandbox, trading.EnvironmentLive:
		return trading.NewExchangeLedger(pair, exchange), exchange, nil
	default:
		return nil, nil, fmt.Errorf(
			"%w: unknown environment: [%v]",
			trading.ErrConfiguration,
			environment,
		)
	}
}

func openJournal(
	ctx context.Context,
	logger trading.Logger,
	config *Config,
	idService trading.IDService,
) (tradeRecordStore, io.Closer, error) {
	switch config.Journal.Driver {
	case "", "none":
		return &inmemJournal{
			inmem.NewTradeRecordRepository(inmemRecordWindow),
		}, closers{}, nil
	case "sqlite":
		client, err := sqlite.NewClient(config.Journal.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite journal: [%v]", err)
		}

		return sqlite.NewTradeRecordRepository(client, idService), client, nil
	case "postgres":
		client, err := connectPostgres(ctx, logger, &config.Database)
		if err != nil {
			return nil, nil, err
		}

		return postgres.NewTradeRecordRepository(client, idService), client, nil
	default:
		return nil, nil, fmt.Errorf(
			"%w: unknown journal driver: [%v]",
			trading.ErrConfiguration,
			config.Journal.Driver,
		)
	}
}

func connectPostgres(
	ctx context.Context,
	logger trading.Logger,
	config *Database,
) (*postgres.Client, error) {
	if err := postgres.RunMigration(
		logger,
		(*postgres.Config)(config),
	); err != nil {
		return nil, fmt.Errorf(
			"could not run postgres migration: [%v]",
			err,
		)
	}

	client, err := postgres.NewClient(
		ctx,
		logger,
		(*postgres.Config)(config),
	)
	if err != nil {
		return nil, fmt.Errorf(
			"could not create postgres client: [%v]",
			err,
		)
	}

	return client, nil
}

func openEventService(
	ctx context.Context,
	logger trading.Logger,
	config *PubSub,
) (trading.EventService, io.Closer, error) {
	if len(config.ProjectID) == 0 {
		return inmem.NewEventService(logger), closers{}, nil
	}

	client, err := pubsub.NewClient(ctx, config.ProjectID, config.TopicID)
	if err != nil {
		return nil, nil, err
	}

	return pubsub.NewEventService(client, logger), client, nil
}

// newTrader assembles a trader from the configuration. The returned closer
// releases journal and event service connections.
func newTrader(
	ctx context.Context,
	logger trading.Logger,
	config *Config,
) (*trading.Trader, io.Closer, error) {
	traderConfig, err := config.Trading.traderConfig()
	if err != nil {
		return nil, nil, err
	}

	exchange, err := binance.NewExchangeService(
		ctx,
		binanceConfig(&config.Binance, traderConfig.Environment),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("could not create binance handle: [%v]", err)
	}

	strategy, err := trading.NewMovingAverageStrategy(
		traderConfig.Strategy,
		exchange,
		logger,
	)
	if err != nil {
		return nil, nil, err
	}

	ledger, executor, err := bindEnvironment(
		traderConfig.Environment,
		traderConfig.Pair,
		&config.Simulation,
		exchange,
		logger,
	)
	if err != nil {
		return nil, nil, err
	}

	idService := uuid.NewIDService()

	journal, journalCloser, err := openJournal(ctx, logger, config, idService)
	if err != nil {
		return nil, nil, err
	}

	eventService, eventCloser, err := openEventService(ctx, logger, &config.PubSub)
	if err != nil {
		_ = journalCloser.Close()
		return nil, nil, err
	}

	trader, err := trading.NewTrader(
		traderConfig,
		strategy,
		ledger,
		executor,
		idService,
		journal,
		eventService,
		logger,
	)
	if err != nil {
		_ = closers{journalCloser, eventCloser}.Close()
		return nil, nil, err
	}

	return trader, closers{journalCloser, eventCloser}, nil
}

// inmemJournal adapts the in-memory repository to the journal reader used
// by the records command.
type inmemJournal struct {
	*inmem.TradeRecordRepository
}

func (ij *inmemJournal) TradeRecords(
	pair trading.Pair,
	limit int,
) ([]*trading.TradeRecord, error) {
	if limit < 1 {
		return nil, nil
	}

	all := ij.TradeRecordRepository.TradeRecords()

	records := make([]*trading.TradeRecord, 0, limit)
	for i := len(all) - 1; i >= 0 && len(records) < limit; i-- {
		if all[i].Pair == pair {
			records = append(records, all[i])
		}
	}

	return records, nil
}
