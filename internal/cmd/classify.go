package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"farecast/internal/modules/conditions"
	"farecast/internal/modules/pricing"
	"farecast/internal/ui"
)

var classifyAdvance int

var classifyCmd = &cobra.Command{
	Use:   "classify <hour>",
	Short: "Show the time period for an hour and where it lands after an offset",
	Args:  cobra.ExactArgs(1),
	RunE:  runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().IntVar(&classifyAdvance, "advance", 0, "minutes to advance the period by")
}

type classifyResult struct {
	Hour     int                   `json:"hour"`
	Period   conditions.TimePeriod `json:"period"`
	Modifier float64               `json:"modifier"`
	Forecast conditions.TimePeriod `json:"forecast_period,omitempty"`
	Pricing  conditions.TimePeriod `json:"pricing_period,omitempty"`
}

func runClassify(cmd *cobra.Command, args []string) error {
	hour, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid hour %q: %w", args[0], err)
	}
	period := conditions.Classify(hour)
	res := classifyResult{Hour: hour, Period: period, Modifier: pricing.TimeModifier(period)}
	if classifyAdvance > 0 {
		res.Forecast = conditions.Advance(period, classifyAdvance, conditions.ForecastAnchors)
		res.Pricing = conditions.Advance(period, classifyAdvance, conditions.PricingAnchors)
	}

	if asJSON {
		return writeJSON(cmd.OutOrStdout(), res)
	}
	items := []ui.KV{
		{Key: "Hour", Value: strconv.Itoa(hour)},
		{Key: "Period", Value: string(period)},
		{Key: "Time modifier", Value: strconv.FormatFloat(res.Modifier, 'f', -1, 64)},
	}
	if classifyAdvance > 0 {
		after := "+" + strconv.Itoa(classifyAdvance) + "m"
		items = append(items,
			ui.KV{Key: "Traffic " + after, Value: string(res.Forecast)},
			ui.KV{Key: "Pricing " + after, Value: string(res.Pricing)},
		)
	}
	fmt.Fprintln(cmd.OutOrStdout(), newUI().SummaryBox("Time period", items))
	return nil
}
