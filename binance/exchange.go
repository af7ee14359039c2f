package binance

import (
	"context"
	"fmt"
	"time"

	"github.com/adshao/go-binance"
)

const (
	requestTimeout = 1 * time.Minute

	productionBaseURL = "https://api.binance.com"
	testnetBaseURL    = "https://testnet.binance.vision"
)

type Config struct {
	ApiKey    string
	SecretKey string

	// Testnet binds the service to the spot testnet instead of production.
	Testnet bool

	// BaseURL overrides the endpoint chosen by Testnet when not empty.
	BaseURL string
}

func (c *Config) baseURL() string {
	if len(c.BaseURL) > 0 {
		return c.BaseURL
	}

	if c.Testnet {
		return testnetBaseURL
	}

	return productionBaseURL
}

// ExchangeService talks to the Binance spot REST API. Market data endpoints
// are public, so the service works without credentials as long as no
// account or order method is called.
type ExchangeService struct {
	client       *binance.Client
	exchangeInfo *binance.ExchangeInfo
}

func NewExchangeService(
	ctx context.Context,
	config *Config,
) (*ExchangeService, error) {
	client := binance.NewClient(config.ApiKey, config.SecretKey)
	client.BaseURL = config.baseURL()

	requestCtx, cancelRequestCtx := context.WithTimeout(ctx, requestTimeout)
	defer cancelRequestCtx()

	exchangeInfo, err := client.NewExchangeInfoService().Do(requestCtx)
	if err != nil {
		return nil, fmt.Errorf("could not get exchange info: [%v]", err)
	}

	return &ExchangeService{
		client:       client,
		exchangeInfo: exchangeInfo,
	}, nil
}

func (es *ExchangeService) ExchangeName() string {
	return "binance"
}

func (es *ExchangeService) findSymbolInfo(
	symbol string,
) (*binance.Symbol, bool) {
	for _, symbolInfo := range es.exchangeInfo.Symbols {
		if symbolInfo.Symbol == symbol {
			return &symbolInfo, true
		}
	}

	return nil, false
}

func parseMilliseconds(milliseconds int64) time.Time {
	return time.Unix(0, milliseconds*int64(time.Millisecond))
}
