package postgres

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgtype"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/lukasz-zimnoch/trading"
	"github.com/shopspring/decimal"
)

const databaseModeCheckInterval = 1 * time.Minute

type Config struct {
	Address      string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MigrationDir string
}

func (c *Config) address() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		c.User,
		c.Password,
		c.Address,
		c.Name,
		c.SSLMode,
	)
}

type Client struct {
	mutex    sync.RWMutex
	database *sqlx.DB
	logger   trading.Logger
}

func NewClient(
	ctx context.Context,
	logger trading.Logger,
	config *Config,
) (*Client, error) {
	database, err := connectDatabase(config)
	if err != nil {
		return nil, err
	}

	client := &Client{database: database, logger: logger}

	go client.monitorDatabaseMode(ctx, config)

	return client, nil
}

func connectDatabase(config *Config) (*sqlx.DB, error) {
	database, err := sqlx.Connect("pgx", config.address())
	if err != nil {
		return nil, fmt.Errorf("could not connect database: [%v]", err)
	}

	return database, nil
}

func (c *Client) monitorDatabaseMode(ctx context.Context, config *Config) {
	ticker := time.NewTicker(databaseModeCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			var isReadonly bool
			err := c.instance().Get(&isReadonly, "SELECT pg_is_in_recovery()")
			if err != nil {
				c.logger.Errorf(
					"could not determine database mode: [%v]",
					err,
				)
				continue
			}

			if isReadonly {
				c.logger.Infof(
					"database instance demoted to read-only mode; " +
						"reconnecting master database",
				)

				newDatabase, err := connectDatabase(config)
				if err != nil {
					c.logger.Errorf(
						"could not reconnect master database: [%v]",
						err,
					)
					continue
				}

				c.mutex.Lock()
				_ = c.database.Close()
				c.database = newDatabase
				c.mutex.Unlock()

				c.logger.Infof("reconnected master database")
			}
		case <-ctx.Done():
			_ = c.instance().Close()
			return
		}
	}
}

func (c *Client) instance() *sqlx.DB {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.database
}

func (c *Client) Close() error {
	return c.instance().Close()
}

func RunMigration(
	logger trading.Logger,
	config *Config,
) error {
	if len(config.MigrationDir) == 0 {
		logger.Infof("postgres migration disabled")
		return nil
	}

	logger.Infof("starting postgres migration")

	migrationsDir := "file://" + config.MigrationDir

	migration, err := migrate.New(migrationsDir, config.address())
	if err != nil {
		return err
	}

	err = migration.Up()
	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Infof("postgres migration skipped as there are no changes")
			return nil
		}

		return err
	}

	logger.Infof("postgres migration performed successfully")

	return nil
}

func decimalToNumeric(value decimal.Decimal) (pgtype.Numeric, error) {
	var result pgtype.Numeric

	if err := result.Set(value.String()); err != nil {
		return pgtype.Numeric{}, err
	}

	return result, nil
}

func nullDecimalToNumeric(value decimal.NullDecimal) (pgtype.Numeric, error) {
	if !value.Valid {
		return pgtype.Numeric{Status: pgtype.Null}, nil
	}

	return decimalToNumeric(value.Decimal)
}

func numericToNullDecimal(value pgtype.Numeric) (decimal.NullDecimal, error) {
	if value.Status != pgtype.Present {
		return decimal.NullDecimal{}, nil
	}

	result, err := numericToDecimal(value)
	if err != nil {
		return decimal.NullDecimal{}, err
	}

	return decimal.NewNullDecimal(result), nil
}

func numericToDecimal(value pgtype.Numeric) (decimal.Decimal, error) {
	text, err := value.EncodeText(nil, nil)
	if err != nil {
		return decimal.Zero, err
	}

	return decimal.NewFromString(string(text))
}
