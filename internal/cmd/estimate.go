package cmd

import (
	"github.com/spf13/cobra"
)

var estimateFlags tripFlags

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate the fare for a trip under current simulated conditions",
	Args:  cobra.NoArgs,
	RunE:  runEstimate,
}

func init() {
	rootCmd.AddCommand(estimateCmd)
	estimateFlags.register(estimateCmd)
}

func runEstimate(cmd *cobra.Command, args []string) error {
	cfg, log := loadConfig()
	if err := estimateFlags.resolveRoute(cmd.Context(), cfg); err != nil {
		return err
	}
	req, err := estimateFlags.request()
	if err != nil {
		return err
	}
	est := newEngine(cfg, log).Estimate(req)

	if asJSON {
		return writeJSON(cmd.OutOrStdout(), est)
	}
	renderEstimate(cmd.OutOrStdout(), newUI(), est)
	return nil
}
