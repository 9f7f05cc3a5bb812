package cmd

import (
	"github.com/spf13/cobra"

	"farecast/internal/modules/fare"
)

var (
	predictFlags  tripFlags
	predictOffset int
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Forecast how the fare changes over the next hour",
	Long: `Forecast the fare 15, 30 and 60 minutes ahead.

The offsets forecast depend on --offset: below 30 only +15m, below 60
+15m and +30m, otherwise all three.`,
	Args: cobra.NoArgs,
	RunE: runPredict,
}

func init() {
	rootCmd.AddCommand(predictCmd)
	predictFlags.register(predictCmd)
	predictCmd.Flags().IntVar(&predictOffset, "offset", fare.DefaultOffset, "forecast horizon in minutes")
}

func runPredict(cmd *cobra.Command, args []string) error {
	cfg, log := loadConfig()
	if err := predictFlags.resolveRoute(cmd.Context(), cfg); err != nil {
		return err
	}
	req, err := predictFlags.request()
	if err != nil {
		return err
	}
	forecast := newEngine(cfg, log).Predict(fare.PredictRequest{EstimateRequest: req, OffsetMinutes: predictOffset})

	if asJSON {
		return writeJSON(cmd.OutOrStdout(), forecast)
	}
	renderForecast(cmd.OutOrStdout(), newUI(), forecast)
	return nil
}
