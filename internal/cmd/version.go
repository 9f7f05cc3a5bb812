package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"farecast/internal/ui"
)

// Version information, set at build time via ldflags.
var (
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		u := newUI()
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, u.Header("farectl"))
		fmt.Fprintln(w, u.SummaryBox("Build", []ui.KV{
			{Key: "Version", Value: Version},
			{Key: "Git Commit", Value: GitCommit},
			{Key: "Built", Value: BuildDate},
			{Key: "Go Version", Value: runtime.Version()},
			{Key: "OS/Arch", Value: fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)},
		}))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
