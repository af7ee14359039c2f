package main

import (
	"fmt"
	"os"

	"github.com/lukasz-zimnoch/trading"
	"github.com/lukasz-zimnoch/trading/logrus"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type rootOptions struct {
	envFile string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	options := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "trading",
		Short: "Moving average crossover trading agent for Binance spot pairs",
		Long: `Trading periodically evaluates a moving average crossover signal for
a single pair and buys or sells against a simulated ledger, the Binance
spot testnet or a live Binance account.

Configuration is read from config.yml in the working directory and from
CONFIG_* environment variables, e.g. CONFIG_TRADING_PAIR=ADA/USDT.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(
		&options.envFile,
		"env-file",
		".env",
		"dotenv file loaded into the environment before reading config",
	)

	cmd.AddCommand(
		newRunCommand(options),
		newCancelOrdersCommand(options),
		newRecordsCommand(options),
		newVersionCommand(),
	)

	return cmd
}

// setup reads the configuration and configures the standard logger.
func (ro *rootOptions) setup() (*Config, trading.Logger, error) {
	config, err := readConfig(ro.envFile)
	if err != nil {
		return nil, nil, fmt.Errorf("could not read config: [%v]", err)
	}

	logger, err := logrus.ConfigureStandardLogger(
		config.Logging.Format,
		config.Logging.Level,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("could not configure logger: [%v]", err)
	}

	return config, logger, nil
}
