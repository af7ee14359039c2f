package postgres

import (
	"fmt"
	"time"

	"github.com/jackc/pgtype"
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
	query := `INSERT INTO 
    	trade_record (id, time, pair, environment, side, status, quantity, 
    	              price, fee, portfolio_value, base_balance, quote_balance, 
    	              stale_balances, note) 
    	VALUES (:id, :time, :pair, :environment, :side, :status, :quantity, 
    	        :price, :fee, :portfolio_value, :base_balance, :quote_balance, 
    	        :stale_balances, :note)`

	recordRow, err := new(tradeRecordRow).wrap(record)
	if err != nil {
		return fmt.Errorf(
			"could not convert trade record [%v] to pg row: [%v]",
			record.ID,
			err,
		)
	}

	_, err = trr.client.instance().NamedExec(query, recordRow)
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

	query := `SELECT * FROM trade_record WHERE pair = $1 
		ORDER BY time DESC LIMIT $2`

	err := trr.client.instance().Select(
		&recordRows,
		query,
		pair.String(),
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("could not execute query: [%v]", err)
	}

	records := make([]*trading.TradeRecord, len(recordRows))
	for index := range recordRows {
		record, err := recordRows[index].unwrap(trr.idService)
		if err != nil {
			return nil, fmt.Errorf(
				"could not convert trade record [%v] from pg row: [%v]",
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
	Time           time.Time
	Pair           string
	Environment    string
	Side           string
	Status         string
	Quantity       pgtype.Numeric
	Price          pgtype.Numeric
	Fee            pgtype.Numeric
	PortfolioValue pgtype.Numeric `db:"portfolio_value"`
	BaseBalance    pgtype.Numeric `db:"base_balance"`
	QuoteBalance   pgtype.Numeric `db:"quote_balance"`
	StaleBalances  bool           `db:"stale_balances"`
	Note           string
}

func (trr *tradeRecordRow) wrap(
	record *trading.TradeRecord,
) (*tradeRecordRow, error) {
	numerics := []*pgtype.Numeric{
		&trr.Quantity,
		&trr.Price,
		&trr.Fee,
		&trr.BaseBalance,
		&trr.QuoteBalance,
	}

	values := []decimal.Decimal{
		record.Quantity,
		record.Price,
		record.Fee,
		record.Balances.Base,
		record.Balances.Quote,
	}

	for index, numeric := range numerics {
		value, err := decimalToNumeric(values[index])
		if err != nil {
			return nil, err
		}

		*numeric = value
	}

	portfolioValue, err := nullDecimalToNumeric(record.PortfolioValue)
	if err != nil {
		return nil, err
	}
	trr.PortfolioValue = portfolioValue

	trr.ID = record.ID.String()
	trr.Time = record.Time
	trr.Pair = record.Pair.String()
	trr.Environment = record.Environment.String()
	trr.Side = record.Side.String()
	trr.Status = record.Status.String()
	trr.StaleBalances = record.StaleBalances
	trr.Note = record.Note

	return trr, nil
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

	record := &trading.TradeRecord{
		ID:            ID,
		Time:          trr.Time,
		Pair:          pair,
		Environment:   environment,
		Side:          side,
		Status:        status,
		StaleBalances: trr.StaleBalances,
		Note:          trr.Note,
	}

	numerics := []pgtype.Numeric{
		trr.Quantity,
		trr.Price,
		trr.Fee,
		trr.BaseBalance,
		trr.QuoteBalance,
	}

	targets := []*decimal.Decimal{
		&record.Quantity,
		&record.Price,
		&record.Fee,
		&record.Balances.Base,
		&record.Balances.Quote,
	}

	for index, numeric := range numerics {
		value, err := numericToDecimal(numeric)
		if err != nil {
			return nil, err
		}

		*targets[index] = value
	}

	record.PortfolioValue, err = numericToNullDecimal(trr.PortfolioValue)
	if err != nil {
		return nil, err
	}

	return record, nil
}
