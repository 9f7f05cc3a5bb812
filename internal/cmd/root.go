package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"farecast/internal/config"
	"farecast/internal/infra"
	"farecast/internal/ui"
)

var (
	verbose bool
	noColor bool
	asJSON  bool
	seed    int64
)

var rootCmd = &cobra.Command{
	Use:   "farectl",
	Short: "Taxi fare estimation and prediction from the command line",
	Long: `farectl prices taxi trips with simulated traffic, weather and demand.

Example usage:
  farectl estimate --distance 12 --duration 25 --vehicle Electric --location "New York"
  farectl predict --distance 8 --duration 20 --period evening_rush --offset 60
  farectl classify 17 --advance 120
  farectl rates list`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colors")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "print raw JSON instead of styled output")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 uses FARECAST_SEED or a random seed)")
}

func newUI() *ui.UI {
	u := ui.New()
	if noColor {
		u.SetNoColor(true)
	}
	return u
}

func loadConfig() (config.Config, zerolog.Logger) {
	cfg, _ := config.Load()
	level := "warn"
	if verbose {
		level = "debug"
	}
	log := infra.NewLogger(level, "console")
	infra.LogConfigWarnings(log, cfg)
	if seed != 0 {
		cfg.Seed = seed
	}
	return cfg, log
}
