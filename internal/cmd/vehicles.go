package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"farecast/internal/infra"
	"farecast/internal/modules/pricing"
	"farecast/internal/ui"
)

var vehiclesCmd = &cobra.Command{
	Use:   "vehicles",
	Short: "Inspect or override per-class vehicle rates in Postgres",
}

var vehiclesGetCmd = &cobra.Command{
	Use:   "get <class>",
	Short: "Show the stored rate for a vehicle class",
	Args:  cobra.ExactArgs(1),
	RunE:  runVehiclesGet,
}

var vehiclesSetCmd = &cobra.Command{
	Use:   "set <class> <base_fare> <per_km> <per_minute>",
	Short: "Store a rate override for a vehicle class",
	Args:  cobra.ExactArgs(4),
	RunE:  runVehiclesSet,
}

func init() {
	rootCmd.AddCommand(vehiclesCmd)
	vehiclesCmd.AddCommand(vehiclesGetCmd, vehiclesSetCmd)
}

func parseVehicleClass(s string) (pricing.VehicleClass, error) {
	class, ok := pricing.ParseVehicleClass(s)
	if !ok {
		return "", fmt.Errorf("unknown vehicle class %q (want one of %v)", s, pricing.VehicleClasses)
	}
	return class, nil
}

func runVehiclesGet(cmd *cobra.Command, args []string) error {
	class, err := parseVehicleClass(args[0])
	if err != nil {
		return err
	}

	var rate pricing.Rate
	err = withRateStore(cmd, func(ctx context.Context, store *pricing.Store) error {
		rate, err = store.GetRate(ctx, class)
		return err
	})
	if errors.Is(err, pricing.ErrRateNotFound) {
		fmt.Fprintln(cmd.OutOrStdout(), newUI().Muted(string(class)+" has no stored override; built-in rates apply"))
		return nil
	}
	if err != nil {
		return err
	}

	if asJSON {
		return writeJSON(cmd.OutOrStdout(), rate)
	}
	fmt.Fprintln(cmd.OutOrStdout(), newUI().SummaryBox(string(rate.Class), []ui.KV{
		{Key: "Base fare", Value: strconv.FormatFloat(rate.BaseFare, 'f', 2, 64)},
		{Key: "Per km", Value: strconv.FormatFloat(rate.PerKm, 'f', 2, 64)},
		{Key: "Per minute", Value: strconv.FormatFloat(rate.PerMinute, 'f', 2, 64)},
	}))
	return nil
}

func runVehiclesSet(cmd *cobra.Command, args []string) error {
	class, err := parseVehicleClass(args[0])
	if err != nil {
		return err
	}
	rate := pricing.Rate{Class: class}
	for i, dst := range []*float64{&rate.BaseFare, &rate.PerKm, &rate.PerMinute} {
		v, err := strconv.ParseFloat(args[i+1], 64)
		if err != nil || v < 0 {
			return fmt.Errorf("invalid amount %q", args[i+1])
		}
		*dst = v
	}

	err = withRateStore(cmd, func(ctx context.Context, store *pricing.Store) error {
		return store.UpsertRate(ctx, rate)
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), newUI().Success(string(class)+" rates stored"))
	return nil
}

func withRateStore(cmd *cobra.Command, fn func(context.Context, *pricing.Store) error) error {
	cfg, _ := loadConfig()
	if cfg.DB.DSN == "" {
		return errors.New("FARECAST_DB_DSN is not set")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()
	pool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	return fn(ctx, pricing.NewStore(pool))
}
