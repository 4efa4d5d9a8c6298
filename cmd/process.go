package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"payments-engine/app"
	"payments-engine/config"
	"payments-engine/domain"
	"payments-engine/logging"
)

var configPath string

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process <transactions.csv>",
	Short: "Process a CSV transaction stream and print final balances",
	Long: `Reads the given CSV transaction file, applies every record in
order, and writes the final account snapshot to stdout. Rejected records
are reported to stderr with the line number they occupy; business
rejections (e.g. insufficient funds) are suppressed unless enabled in the
configuration.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		if configPath != "" {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
		}

		logger, err := logging.New(cfg.Log.Level)
		if err != nil {
			return err
		}
		defer logger.Sync()

		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer file.Close()

		service := app.Service{
			Input:     file,
			Output:    os.Stdout,
			Precision: cfg.Output.Precision,
			Logger:    logger,
			Errors: func(line uint64, err error) {
				if domain.IsAccountError(err) && !cfg.Reporting.IncludeAccountErrors {
					// Business rejections are expected outcomes of a valid
					// stream; keep them out of the operator-facing report.
					logger.Debug("record rejected", zap.Uint64("line", line), zap.Error(err))
					return
				}
				logger.Warn("record rejected", zap.Uint64("line", line), zap.Error(err))
			},
		}
		return service.Run()
	},
}

func init() {
	processCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML configuration file")
}
