package main

import (
	"fmt"

	"github.com/lukasz-zimnoch/trading"
	"github.com/lukasz-zimnoch/trading/binance"
	"github.com/spf13/cobra"
)

func newCancelOrdersCommand(options *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel-orders",
		Short: "Cancel all open orders of the configured pair",
		Long: `Cancel-orders cancels every open order of the configured pair on
the exchange bound to the configured environment. It is an administrative
operation and has nothing to cancel in the SIMULATED environment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, logger, err := options.setup()
			if err != nil {
				return err
			}

			traderConfig, err := config.Trading.traderConfig()
			if err != nil {
				return err
			}

			if traderConfig.Environment == trading.EnvironmentSimulated {
				logger.Infof("no open orders in simulated environment")
				return nil
			}

			exchange, err := binance.NewExchangeService(
				cmd.Context(),
				binanceConfig(&config.Binance, traderConfig.Environment),
			)
			if err != nil {
				return fmt.Errorf("could not create binance handle: [%v]", err)
			}

			cancelled, err := exchange.CancelOpenOrders(
				cmd.Context(),
				traderConfig.Pair,
			)
			if err != nil {
				logger.Errorf("could not cancel open orders: [%v]", err)
				return err
			}

			logger.Infof(
				"cancelled [%v] open orders of [%v]",
				cancelled,
				traderConfig.Pair,
			)

			return nil
		},
	}
}
