package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Time is kept as Unix nanoseconds so that ordering is numeric.
const schema = `
CREATE TABLE IF NOT EXISTS trade_record (
	id TEXT PRIMARY KEY,
	time INTEGER NOT NULL,
	pair TEXT NOT NULL,
	environment TEXT NOT NULL,
	side TEXT NOT NULL,
	status TEXT NOT NULL,
	quantity TEXT NOT NULL,
	price TEXT NOT NULL,
	fee TEXT NOT NULL,
	portfolio_value TEXT,
	base_balance TEXT NOT NULL,
	quote_balance TEXT NOT NULL,
	stale_balances BOOLEAN NOT NULL,
	note TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS trade_record_pair_time_idx ON trade_record(pair, time);
`

// Client holds a SQLite database file acting as the local trade journal.
type Client struct {
	database *sqlx.DB
}

func NewClient(path string) (*Client, error) {
	database, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("could not open database [%v]: [%v]", path, err)
	}

	// SQLite allows a single writer at a time.
	database.SetMaxOpenConns(1)

	if _, err := database.Exec(schema); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("could not create schema: [%v]", err)
	}

	return &Client{database: database}, nil
}

func (c *Client) Close() error {
	return c.database.Close()
}
