package trading

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type StrategyKind int

const (
	StrategySimple StrategyKind = iota
	StrategyExponential
)

func ParseStrategyKind(value string) (StrategyKind, error) {
	switch strings.ToUpper(value) {
	case "SIMPLE", "SMA":
		return StrategySimple, nil
	case "EXPONENTIAL", "EMA":
		return StrategyExponential, nil
	}

	return -1, fmt.Errorf(
		"%w: unknown strategy kind: [%v]",
		ErrConfiguration,
		value,
	)
}

func (sk StrategyKind) String() string {
	switch sk {
	case StrategySimple:
		return "SIMPLE"
	case StrategyExponential:
		return "EXPONENTIAL"
	default:
		return fmt.Sprintf("StrategyKind(%d)", int(sk))
	}
}

type StrategyConfig struct {
	Kind            StrategyKind
	LookbackPeriods int
	CandleInterval  CandleInterval
}

func (sc StrategyConfig) Validate() error {
	if sc.Kind != StrategySimple && sc.Kind != StrategyExponential {
		return fmt.Errorf("%w: invalid strategy kind: [%v]", ErrConfiguration, sc.Kind)
	}

	if sc.LookbackPeriods <= 0 {
		return fmt.Errorf(
			"%w: lookback periods must be positive: [%v]",
			ErrConfiguration,
			sc.LookbackPeriods,
		)
	}

	if _, err := ParseCandleInterval(string(sc.CandleInterval)); err != nil {
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	return nil
}

// CandlesRequired is the number of candles the moving average is computed
// from. The exponential variant needs lookback-1 extra candles to walk
// forward from its seed.
func (sc StrategyConfig) CandlesRequired() int {
	if sc.Kind == StrategyExponential {
		return 2*sc.LookbackPeriods - 1
	}

	return sc.LookbackPeriods
}

// MovingAverageStrategy emits crossover signals against a simple or an
// exponential moving average. It holds no state between evaluations.
type MovingAverageStrategy struct {
	config  StrategyConfig
	candles ExchangeCandleService
	logger  Logger
}

func NewMovingAverageStrategy(
	config StrategyConfig,
	candles ExchangeCandleService,
	logger Logger,
) (*MovingAverageStrategy, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &MovingAverageStrategy{
		config:  config,
		candles: candles,
		logger:  logger,
	}, nil
}

func (mas *MovingAverageStrategy) Config() StrategyConfig {
	return mas.config
}

// Evaluate fails with ErrDataUnavailable whenever any of the price
// fetches fails or the exchange returns too few candles.
func (mas *MovingAverageStrategy) Evaluate(
	ctx context.Context,
	pair Pair,
) (*Signal, error) {
	snapshot, err := mas.Snapshot(ctx, pair)
	if err != nil {
		return nil, err
	}

	signal := &Signal{
		Type:     Decide(snapshot),
		Price:    snapshot.CurrentPrice,
		Snapshot: snapshot,
	}

	mas.logger.Debugf("evaluated signal [%v] from [%v]", signal, snapshot)

	return signal, nil
}

func (mas *MovingAverageStrategy) Snapshot(
	ctx context.Context,
	pair Pair,
) (*PriceSnapshot, error) {
	previousClose, err := mas.previousClose(ctx, pair)
	if err != nil {
		return nil, err
	}

	movingAverage, err := mas.movingAverage(ctx, pair)
	if err != nil {
		return nil, err
	}

	currentPrice, err := mas.candles.TickerPrice(ctx, pair)
	if err != nil {
		return nil, dataUnavailable("could not get ticker price", err)
	}

	return &PriceSnapshot{
		PreviousClose: previousClose,
		MovingAverage: movingAverage,
		CurrentPrice:  currentPrice,
	}, nil
}

// previousClose is the close of the older one of the two latest completed
// candles.
func (mas *MovingAverageStrategy) previousClose(
	ctx context.Context,
	pair Pair,
) (decimal.Decimal, error) {
	closes, err := mas.closes(ctx, pair, 2)
	if err != nil {
		return decimal.Zero, err
	}

	return closes[0], nil
}

func (mas *MovingAverageStrategy) movingAverage(
	ctx context.Context,
	pair Pair,
) (decimal.Decimal, error) {
	closes, err := mas.closes(ctx, pair, mas.config.CandlesRequired())
	if err != nil {
		return decimal.Zero, err
	}

	switch mas.config.Kind {
	case StrategyExponential:
		return ExponentialMovingAverage(closes, mas.config.LookbackPeriods)
	default:
		return SimpleMovingAverage(closes, mas.config.LookbackPeriods)
	}
}

func (mas *MovingAverageStrategy) closes(
	ctx context.Context,
	pair Pair,
	count int,
) ([]decimal.Decimal, error) {
	candles, err := mas.candles.Candles(
		ctx,
		pair,
		mas.config.CandleInterval,
		count,
	)
	if err != nil {
		return nil, dataUnavailable("could not get candles", err)
	}

	if len(candles) < count {
		return nil, fmt.Errorf(
			"%w: need [%v] candles, got [%v]: [%w]",
			ErrDataUnavailable,
			count,
			len(candles),
			ErrInsufficientData,
		)
	}

	return ClosePrices(candles[len(candles)-count:]), nil
}

func dataUnavailable(message string, err error) error {
	if errors.Is(err, ErrDataUnavailable) {
		return fmt.Errorf("%v: [%w]", message, err)
	}

	return fmt.Errorf("%w: %v: [%w]", ErrDataUnavailable, message, err)
}
