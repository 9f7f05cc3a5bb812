package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"farecast/internal/config"
	"farecast/internal/maps"
	"farecast/internal/modules/conditions"
	"farecast/internal/modules/currency"
	"farecast/internal/modules/fare"
	"farecast/internal/types"
	"farecast/internal/ui"
)

// tripFlags are shared by estimate and predict.
type tripFlags struct {
	distance   float64
	duration   float64
	vehicle    string
	location   string
	currency   string
	period     string
	hour       int
	passengers int
	pickup     string
	dropoff    string
}

func (f *tripFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&f.distance, "distance", "d", 0, "trip distance in km")
	cmd.Flags().Float64VarP(&f.duration, "duration", "t", 0, "trip duration in minutes")
	cmd.Flags().StringVar(&f.vehicle, "vehicle", fare.DefaultVehicle, "vehicle class (Sedan, SUV, Electric, Luxury)")
	cmd.Flags().StringVar(&f.location, "location", fare.DefaultLocation, "city profile")
	cmd.Flags().StringVar(&f.currency, "currency", fare.DefaultCurrency, "ISO currency code")
	cmd.Flags().StringVar(&f.period, "period", fare.DefaultPeriod, "time period")
	cmd.Flags().IntVar(&f.hour, "hour", -1, "hour of day; overrides --period when set")
	cmd.Flags().IntVarP(&f.passengers, "passengers", "p", 1, "passenger count (capped at 5)")
	cmd.Flags().StringVar(&f.pickup, "pickup", "", `pickup as "lat,lng" or an address (addresses need FARECAST_MAPS_API_KEY)`)
	cmd.Flags().StringVar(&f.dropoff, "dropoff", "", "dropoff, same format as --pickup")
}

// resolveRoute fills distance and duration from --pickup and --dropoff.
func (f *tripFlags) resolveRoute(ctx context.Context, cfg config.Config) error {
	if f.pickup == "" && f.dropoff == "" {
		return nil
	}
	if f.pickup == "" || f.dropoff == "" {
		return fmt.Errorf("--pickup and --dropoff must be set together")
	}

	var directions maps.Resolver
	if cfg.Maps.APIKey != "" {
		svc, err := maps.NewRouteService(cfg.Maps.APIKey, 1)
		if err != nil {
			return err
		}
		directions = svc
	}

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	route, err := maps.NewCoordinateResolver(directions).Resolve(ctx, f.pickup, f.dropoff)
	if err != nil {
		return fmt.Errorf("resolve route: %w", err)
	}
	f.distance = route.DistanceKm
	f.duration = route.DurationMin
	return nil
}

func (f *tripFlags) request() (fare.EstimateRequest, error) {
	if f.distance < 0 || f.duration < 0 {
		return fare.EstimateRequest{}, fmt.Errorf("distance and duration must be non-negative")
	}
	if f.passengers < 1 {
		return fare.EstimateRequest{}, fmt.Errorf("passengers must be at least 1")
	}
	period := f.period
	if f.hour >= 0 {
		period = string(conditions.Classify(f.hour))
	}
	return fare.EstimateRequest{
		DistanceKm:     f.distance,
		DurationMin:    f.duration,
		Vehicle:        f.vehicle,
		Location:       f.location,
		Currency:       f.currency,
		Period:         period,
		PassengerCount: f.passengers,
	}, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func money(amount float64, code string) string {
	return types.Money{Amount: amount, Currency: code}.Format(currency.Symbol(code))
}

func modifier(label string, m float64) string {
	return label + " (x" + strconv.FormatFloat(m, 'f', -1, 64) + ")"
}

func renderEstimate(w io.Writer, u *ui.UI, est fare.Estimate) {
	code := est.Currency
	fmt.Fprintln(w, u.SummaryBox("Fare estimate", []ui.KV{
		{Key: "Base fare", Value: money(est.BaseFare, code)},
		{Key: "Distance fare", Value: money(est.DistanceFare, code)},
		{Key: "Time fare", Value: money(est.TimeFare, code)},
		{Key: "Adjusted fare", Value: money(est.AdjustedFare, code)},
		{Key: "Passengers", Value: strconv.Itoa(est.PassengerCount)},
		{Key: "Total", Value: money(est.TotalFare, code)},
		{Key: "Traffic", Value: modifier(string(est.Factors.Traffic.Condition), est.Factors.Traffic.Modifier)},
		{Key: "Weather", Value: modifier(string(est.Factors.Weather.Condition), est.Factors.Weather.Modifier)},
		{Key: "Time", Value: modifier(string(est.Factors.Time.Period), est.Factors.Time.Modifier)},
		{Key: "Demand", Value: modifier(string(est.Factors.Demand.Level), est.Factors.Demand.Modifier)},
		{Key: "Eco score", Value: strconv.Itoa(est.EcoScore) + "/100"},
		{Key: "CO2", Value: strconv.FormatFloat(est.CO2Emissions.TotalG, 'f', 2, 64) + " g"},
	}))
	for _, s := range est.Suggestions {
		fmt.Fprintln(w, u.Muted("  - "+s.Text))
	}
}

func renderForecast(w io.Writer, u *ui.UI, f fare.Forecast) {
	code := f.Current.Currency
	fmt.Fprintln(w, u.Header("Fare forecast"))
	fmt.Fprintf(w, "Now: %s (%s, %s, %s)\n\n",
		money(f.Current.AdjustedFare, code),
		f.Current.Factors.Traffic.Condition,
		f.Current.Factors.Weather.Condition,
		f.Current.Factors.Time.Period,
	)
	rows := make([][]string, 0, len(f.Predictions))
	for _, p := range f.Predictions {
		rows = append(rows, []string{
			"+" + strconv.Itoa(p.TimeOffset) + "m",
			money(p.Fare, code),
			string(p.Traffic),
			string(p.Weather),
			string(p.TimeOfDay),
			u.Change(p.ChangePercentage),
		})
	}
	fmt.Fprint(w, u.Table([]string{"Offset", "Fare", "Traffic", "Weather", "Period", "Change"}, rows))
}
