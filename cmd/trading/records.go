package main

import (
	"fmt"
	"io"

	"github.com/lukasz-zimnoch/trading"
	"github.com/lukasz-zimnoch/trading/uuid"
	"github.com/spf13/cobra"
)

func newRecordsCommand(options *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "records",
		Short: "Print the most recent trade records of the configured pair",
		Long: `Records reads the configured journal (sqlite or postgres) and prints
the most recent trade records of the configured pair, newest first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 1 {
				return fmt.Errorf(
					"%w: limit must be positive: [%v]",
					trading.ErrConfiguration,
					limit,
				)
			}

			config, logger, err := options.setup()
			if err != nil {
				return err
			}

			pair, err := trading.ParsePair(config.Trading.Pair)
			if err != nil {
				return configurationError(err)
			}

			journal, closer, err := openJournal(
				cmd.Context(),
				logger,
				config,
				uuid.NewIDService(),
			)
			if err != nil {
				return err
			}
			defer closer.Close()

			records, err := journal.TradeRecords(pair, limit)
			if err != nil {
				return fmt.Errorf("could not read trade records: [%v]", err)
			}

			return printRecords(cmd.OutOrStdout(), records)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of records to print")

	return cmd
}

func printRecords(output io.Writer, records []*trading.TradeRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(output, "no trade records")
		return err
	}

	for _, record := range records {
		if _, err := fmt.Fprintln(output, record); err != nil {
			return err
		}
	}

	return nil
}
