package main

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/lukasz-zimnoch/trading/daemon"
	"github.com/spf13/cobra"
)

func newRunCommand(options *rootOptions) *cobra.Command {
	var cycles int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run trading cycles every refresh interval",
		Long: `Run executes one trading cycle immediately and then one per
refresh interval until interrupted. Cycles never overlap.

Example:
  CONFIG_TRADING_ENVIRONMENT=SANDBOX trading run --cycles 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, logger, err := options.setup()
			if err != nil {
				return err
			}

			ctx, cancelCtx := signal.NotifyContext(
				cmd.Context(),
				syscall.SIGINT,
				syscall.SIGTERM,
			)
			defer cancelCtx()

			trader, closer, err := newTrader(ctx, logger, config)
			if err != nil {
				logger.Errorf("could not create trader: [%v]", err)
				return err
			}
			defer func() {
				if err := closer.Close(); err != nil {
					logger.Warningf("could not release resources: [%v]", err)
				}
			}()

			interval := time.Duration(config.Trading.RefreshMinutes) * time.Minute

			logger.Infof(
				"starting [%v] trader for [%v] with [%v] strategy",
				trader.Config().Environment,
				trader.Config().Pair,
				trader.Config().Strategy,
			)

			scheduler := daemon.RunScheduler(ctx, logger, trader, interval, cycles)

			select {
			case <-scheduler.Done():
			case <-ctx.Done():
				<-scheduler.Done()
			}

			logger.Infof(
				"trader stopped after [%v] cycles with [%v] failures; "+
					"final balances [%v]",
				scheduler.Cycles(),
				scheduler.FailedCycles(),
				trader.Balances(),
			)

			return nil
		},
	}

	cmd.Flags().IntVar(
		&cycles,
		"cycles",
		0,
		"stop after the given number of cycles; 0 runs until interrupted",
	)

	return cmd
}

