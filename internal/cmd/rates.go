package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"farecast/internal/infra"
	"farecast/internal/modules/currency"
)

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "List or override exchange rates",
}

var ratesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List exchange rates, including Redis overrides when configured",
	Args:  cobra.NoArgs,
	RunE:  runRatesList,
}

var ratesUnsetCmd = &cobra.Command{
	Use:   "unset <code>",
	Short: "Remove a Redis exchange rate override",
	Args:  cobra.ExactArgs(1),
	RunE:  runRatesUnset,
}

var ratesSetCmd = &cobra.Command{
	Use:   "set <code> <rate>",
	Short: "Store a USD-relative exchange rate override in Redis",
	Args:  cobra.ExactArgs(2),
	RunE:  runRatesSet,
}

func init() {
	rootCmd.AddCommand(ratesCmd)
	ratesCmd.AddCommand(ratesListCmd, ratesSetCmd, ratesUnsetCmd)
}

func runRatesList(cmd *cobra.Command, args []string) error {
	cfg, log := loadConfig()
	list := newEngine(cfg, log).Currencies().List()

	if asJSON {
		return writeJSON(cmd.OutOrStdout(), list)
	}
	rows := make([][]string, 0, len(list))
	for _, c := range list {
		rows = append(rows, []string{c.Code, c.Symbol, strconv.FormatFloat(c.Rate, 'f', -1, 64)})
	}
	fmt.Fprint(cmd.OutOrStdout(), newUI().Table([]string{"Code", "Symbol", "Per USD"}, rows))
	return nil
}

func runRatesSet(cmd *cobra.Command, args []string) error {
	rate, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid rate %q: %w", args[1], err)
	}
	code := currency.Normalize(args[0])
	u := newUI()
	if !currency.NewTable().Known(code) {
		fmt.Fprintln(cmd.OutOrStdout(), u.Warning(code+" is not a built-in currency; it will be shown with the $ symbol"))
	}

	err = withFxStore(cmd, func(ctx context.Context, store *currency.Store) error {
		return store.SetRate(ctx, code, rate)
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), u.Success(fmt.Sprintf("%s set to %s per USD", code, args[1])))
	return nil
}

func runRatesUnset(cmd *cobra.Command, args []string) error {
	code := currency.Normalize(args[0])
	err := withFxStore(cmd, func(ctx context.Context, store *currency.Store) error {
		return store.DeleteRate(ctx, code)
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), newUI().Success(code+" override removed"))
	return nil
}

func withFxStore(cmd *cobra.Command, fn func(context.Context, *currency.Store) error) error {
	cfg, _ := loadConfig()
	if cfg.Redis.Addr == "" {
		return errors.New("FARECAST_REDIS_ADDR is not set")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()
	client, err := infra.NewRedis(ctx, cfg.Redis.Addr)
	if err != nil {
		return err
	}
	defer client.Close()

	return fn(ctx, currency.NewStore(client))
}
