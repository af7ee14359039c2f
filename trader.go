package trading

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
)

// TraderConfig is fixed for the trader lifetime.
type TraderConfig struct {
	Pair        Pair
	Environment Environment
	Strategy    StrategyConfig

	// TradePercentage is the fraction in (0, 1] of the quote balance a
	// single buy may commit.
	TradePercentage decimal.Decimal
}

func (tc TraderConfig) Validate() error {
	if len(tc.Pair.Base) == 0 || len(tc.Pair.Quote) == 0 {
		return fmt.Errorf("%w: pair is not set", ErrConfiguration)
	}

	switch tc.Environment {
	case EnvironmentSimulated, EnvironmentSandbox, EnvironmentLive:
	default:
		return fmt.Errorf(
			"%w: invalid environment: [%v]",
			ErrConfiguration,
			tc.Environment,
		)
	}

	if err := tc.Strategy.Validate(); err != nil {
		return err
	}

	if !tc.TradePercentage.IsPositive() || tc.TradePercentage.GreaterThan(one) {
		return fmt.Errorf(
			"%w: trade percentage must be within (0, 1]: [%v]",
			ErrConfiguration,
			tc.TradePercentage,
		)
	}

	return nil
}

// Trader runs decision cycles for a single pair. Cycles never overlap: a
// Trade call made while another one is running returns ErrCycleInProgress.
type Trader struct {
	config           TraderConfig
	signalGenerator  SignalGenerator
	ledger           Ledger
	orderExecutor    OrderExecutor
	orderFactory     *OrderFactory
	idService        IDService
	recordRepository TradeRecordRepository
	eventService     EventService
	logger           Logger

	running atomic.Bool
}

func NewTrader(
	config TraderConfig,
	signalGenerator SignalGenerator,
	ledger Ledger,
	orderExecutor OrderExecutor,
	idService IDService,
	recordRepository TradeRecordRepository,
	eventService EventService,
	logger Logger,
) (*Trader, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Trader{
		config:           config,
		signalGenerator:  signalGenerator,
		ledger:           ledger,
		orderExecutor:    orderExecutor,
		orderFactory:     NewOrderFactory(idService),
		idService:        idService,
		recordRepository: recordRepository,
		eventService:     eventService,
		logger: logger.WithFields(map[string]interface{}{
			"pair":        config.Pair.String(),
			"environment": config.Environment.String(),
		}),
	}, nil
}

func (t *Trader) Config() TraderConfig {
	return t.config
}

func (t *Trader) Balances() Balances {
	return t.ledger.Balances()
}

// Trade runs one decision cycle and returns its record. Missing price data
// and insufficient balances end the cycle with a NONE record and no error.
// A rejected order ends it with a FAILED record and an error wrapping
// ErrOrderRejected. Balances are mutated only after the order has been
// confirmed.
func (t *Trader) Trade(ctx context.Context) (*TradeRecord, error) {
	if !t.running.CompareAndSwap(false, true) {
		return nil, ErrCycleInProgress
	}
	defer t.running.Store(false)

	record := &TradeRecord{
		ID:          t.idService.NewID(),
		Time:        time.Now(),
		Pair:        t.config.Pair,
		Environment: t.config.Environment,
		Side:        SignalNone,
		Status:      TradeSkipped,
		Quantity:    decimal.Zero,
		Fee:         decimal.Zero,
	}

	cycleLogger := t.logger.WithField("cycle", record.ID.String())

	err := t.runCycle(ctx, cycleLogger, record)

	record.Balances = t.ledger.Balances()
	record.StaleBalances = t.ledger.Stale()
	record.PortfolioValue = portfolioValue(record.Balances, record.Price)

	t.report(cycleLogger, record)

	return record, err
}

// portfolioValue is unknown when no price was observed and some base asset
// is held.
func portfolioValue(
	balances Balances,
	price decimal.Decimal,
) decimal.NullDecimal {
	switch {
	case price.IsPositive():
		return decimal.NewNullDecimal(balances.PortfolioValue(price))
	case balances.Base.IsZero():
		return decimal.NewNullDecimal(balances.Quote)
	default:
		return decimal.NullDecimal{}
	}
}

func (t *Trader) runCycle(
	ctx context.Context,
	cycleLogger Logger,
	record *TradeRecord,
) error {
	if err := t.ledger.Refresh(ctx); err != nil {
		cycleLogger.Warningf(
			"proceeding with last known balances [%v]: [%v]",
			t.ledger.Balances(),
			err,
		)
	}

	signal, err := t.signalGenerator.Evaluate(ctx, t.config.Pair)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			record.Status = TradeFailed
			record.Note = "cycle aborted"
			return fmt.Errorf("cycle aborted: [%w]", ctxErr)
		}

		cycleLogger.Warningf("no signal for this cycle: [%v]", err)
		record.Note = "price data unavailable"
		return nil
	}

	record.Price = signal.Price

	side, ok := signal.Type.OrderSide()
	if !ok {
		return nil
	}

	quantity, reason := SizeOrder(
		side,
		signal.Price,
		t.ledger.Balances(),
		t.ledger.Fees(),
		t.config.TradePercentage,
	)
	if len(reason) > 0 {
		cycleLogger.Infof("dropping [%v] signal because: [%v]", signal.Type, reason)
		record.Note = reason
		return nil
	}

	order := t.orderFactory.CreateLimitOrder(
		t.config.Pair,
		side,
		quantity,
		signal.Price,
	)

	record.Side = signal.Type
	record.Quantity = quantity
	record.Fee = quantity.Mul(signal.Price).Mul(t.ledger.Fees().Taker)

	cycleLogger.Infof("executing order [%v] with ID [%v]", order, order.ID)

	fill, err := t.orderExecutor.ExecuteOrder(ctx, order)
	if err != nil {
		record.Status = TradeFailed
		record.Note = err.Error()
		return fmt.Errorf("could not execute order [%v]: [%w]", order.ID, err)
	}

	if err := t.ledger.Apply(fill); err != nil {
		record.Status = TradeFailed
		record.Note = err.Error()
		return fmt.Errorf("could not apply order [%v] fill: [%w]", order.ID, err)
	}

	record.Status = TradeExecuted

	if err := t.ledger.Refresh(ctx); err != nil {
		cycleLogger.Warningf("could not refresh balances after trade: [%v]", err)
	}

	return nil
}

// SizeOrder computes the quantity of an order. A buy commits the trade
// percentage of the quote balance including the taker fee, floored to
// QuantityPlaces, so its total cost never exceeds the quote balance. A sell
// liquidates the whole base balance. A non-empty reason means the order
// must not be placed.
func SizeOrder(
	side OrderSide,
	price decimal.Decimal,
	balances Balances,
	fees Fees,
	tradePercentage decimal.Decimal,
) (decimal.Decimal, string) {
	if !price.IsPositive() {
		return decimal.Zero, fmt.Sprintf("invalid price [%v]", price)
	}

	switch side {
	case SideBuy:
		unitCost := price.Mul(one.Add(fees.Taker))
		budget := balances.Quote.Mul(tradePercentage)

		quantity := FloorQuo(budget, unitCost, QuantityPlaces)
		if !quantity.IsPositive() {
			return decimal.Zero, "buy quantity rounds to zero"
		}

		if quantity.Mul(unitCost).GreaterThan(balances.Quote) {
			return decimal.Zero, "insufficient quote balance"
		}

		return quantity, ""
	case SideSell:
		if !balances.Base.IsPositive() {
			return decimal.Zero, "nothing to sell"
		}

		return balances.Base, ""
	default:
		return decimal.Zero, "unknown order side"
	}
}

// report never fails the cycle; persistence and notification errors are
// only logged.
func (t *Trader) report(cycleLogger Logger, record *TradeRecord) {
	switch record.Status {
	case TradeExecuted:
		cycleLogger.Infof(
			"%v [%v] at price [%v] for total [%v] - fees [%v] - portfolio [%v]",
			pastTense(record.Side),
			record.Quantity,
			record.Price,
			record.Quantity.Mul(record.Price),
			record.Fee,
			formatPortfolioValue(record.PortfolioValue, -1),
		)
	case TradeFailed:
		cycleLogger.Errorf("trading cycle failed: [%v]", record)
	default:
		cycleLogger.Infof("trading cycle completed: [%v]", record)
	}

	cycleLogger.Infof("balances: [%v]", record.Balances)

	if err := t.recordRepository.CreateTradeRecord(record); err != nil {
		cycleLogger.Errorf("could not persist trade record: [%v]", err)
	}

	switch record.Status {
	case TradeExecuted:
		t.eventService.Publish(NewTradeExecutedEvent(record))
	case TradeFailed:
		t.eventService.Publish(NewTradeFailedEvent(record))
	}
}

func pastTense(side SignalType) string {
	switch side {
	case SignalBuy:
		return "bought"
	case SignalSell:
		return "sold"
	default:
		return "traded"
	}
}
