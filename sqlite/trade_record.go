package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lukasz-zimnoch/trading"
	"github.com/shopspring/decimal"
)

type TradeRecordRepository struct {
	client    *Client
	idService trading.IDService
}

func NewTradeRecordRepository(
	client *Client,
	idService trading.IDService,
) *TradeRecordRepository {
	return &TradeRecordRepository{client, idService}
}

func (trr *TradeRecordRepository) CreateTradeRecord(
	record *trading.TradeRecord,
) error {
	query := `INSERT INTO trade_record 
		(id, time, pair, environment, side, status, quantity, price, fee, 
		 portfolio_value, base_balance, quote_balance, stale_balances, note) 
		VALUES (:id, :time, :pair, :environment, :side, :status, :quantity, 
		        :price, :fee, :portfolio_value, :base_balance, :quote_balance, 
		        :stale_balances, :note)`

	_, err := trr.client.database.NamedExec(query, new(tradeRecordRow).wrap(record))
	if err != nil {
		return fmt.Errorf(
			"could not execute command for trade record [%v]: [%v]",
			record.ID,
			err,
		)
	}

	return nil
}

// TradeRecords returns up to limit most recent records of the pair, newest
// first.
func (trr *TradeRecordRepository) TradeRecords(
	pair trading.Pair,
	limit int,
) ([]*trading.TradeRecord, error) {
	var recordRows []tradeRecordRow

	query := `SELECT * FROM trade_record WHERE pair = ? 
		ORDER BY time DESC LIMIT ?`

	err := trr.client.database.Select(&recordRows, query, pair.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("could not execute query: [%v]", err)
	}

	records := make([]*trading.TradeRecord, len(recordRows))
	for index := range recordRows {
		record, err := recordRows[index].unwrap(trr.idService)
		if err != nil {
			return nil, fmt.Errorf(
				"could not convert trade record [%v] from row: [%v]",
				recordRows[index].ID,
				err,
			)
		}

		records[index] = record
	}

	return records, nil
}

type tradeRecordRow struct {
	ID             string
	Time           int64
	Pair           string
	Environment    string
	Side           string
	Status         string
	Quantity       string
	Price          string
	Fee            string
	PortfolioValue sql.NullString `db:"portfolio_value"`
	BaseBalance    string         `db:"base_balance"`
	QuoteBalance   string         `db:"quote_balance"`
	StaleBalances  bool           `db:"stale_balances"`
	Note           string
}

func (trr *tradeRecordRow) wrap(record *trading.TradeRecord) *tradeRecordRow {
	trr.ID = record.ID.String()
	trr.Time = record.Time.UnixNano()
	trr.Pair = record.Pair.String()
	trr.Environment = record.Environment.String()
	trr.Side = record.Side.String()
	trr.Status = record.Status.String()
	trr.Quantity = record.Quantity.String()
	trr.Price = record.Price.String()
	trr.Fee = record.Fee.String()
	trr.PortfolioValue = sql.NullString{
		String: record.PortfolioValue.Decimal.String(),
		Valid:  record.PortfolioValue.Valid,
	}
	trr.BaseBalance = record.Balances.Base.String()
	trr.QuoteBalance = record.Balances.Quote.String()
	trr.StaleBalances = record.StaleBalances
	trr.Note = record.Note

	return trr
}

func (trr *tradeRecordRow) unwrap(
	idService trading.IDService,
) (*trading.TradeRecord, error) {
	ID, err := idService.NewIDFromString(trr.ID)
	if err != nil {
		return nil, err
	}

	pair, err := trading.ParsePair(trr.Pair)
	if err != nil {
		return nil, err
	}

	environment, err := trading.ParseEnvironment(trr.Environment)
	if err != nil {
		return nil, err
	}

	side, err := trading.ParseSignalType(trr.Side)
	if err != nil {
		return nil, err
	}

	status, err := trading.ParseTradeStatus(trr.Status)
	if err != nil {
		return nil, err
	}

	values := make([]decimal.Decimal, 5)
	for index, text := range []string{
		trr.Quantity,
		trr.Price,
		trr.Fee,
		trr.BaseBalance,
		trr.QuoteBalance,
	} {
		values[index], err = decimal.NewFromString(text)
		if err != nil {
			return nil, err
		}
	}

	var portfolioValue decimal.NullDecimal
	if trr.PortfolioValue.Valid {
		value, err := decimal.NewFromString(trr.PortfolioValue.String)
		if err != nil {
			return nil, err
		}

		portfolioValue = decimal.NewNullDecimal(value)
	}

	return &trading.TradeRecord{
		ID:             ID,
		Time:           time.Unix(0, trr.Time).UTC(),
		Pair:           pair,
		Environment:    environment,
		Side:           side,
		Status:         status,
		Quantity:       values[0],
		Price:          values[1],
		Fee:            values[2],
		PortfolioValue: portfolioValue,
		Balances: trading.Balances{
			Base:  values[3],
			Quote: values[4],
		},
		StaleBalances: trr.StaleBalances,
		Note:          trr.Note,
	}, nil
}
