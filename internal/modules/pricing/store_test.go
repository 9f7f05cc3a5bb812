package pricing

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TestStoreRates(t *testing.T) {
	dsn := os.Getenv("FARECAST_TEST_DB_DSN")
	if dsn == "" {
		t.Skip("Skipping: FARECAST_TEST_DB_DSN not set")
	}
	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS vehicle_rates (
            vehicle_class TEXT PRIMARY KEY,
            base_fare DOUBLE PRECISION NOT NULL,
            per_km DOUBLE PRECISION NOT NULL,
            per_minute DOUBLE PRECISION NOT NULL
        )`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	defer db.Exec(ctx, `DELETE FROM vehicle_rates WHERE vehicle_class = 'SUV'`)

	store := NewStore(db)
	if err := store.UpsertRate(ctx, Rate{Class: SUV, BaseFare: 4.25, PerKm: 2.1, PerMinute: 0.5}); err != nil {
		t.Fatalf("UpsertRate: %v", err)
	}
	got, err := store.GetRate(ctx, SUV)
	if err != nil {
		t.Fatalf("GetRate: %v", err)
	}
	if got.BaseFare != 4.25 || got.Class != SUV {
		t.Errorf("GetRate = %+v", got)
	}
	if _, err := store.GetRate(ctx, "Zeppelin"); !errors.Is(err, ErrRateNotFound) {
		t.Errorf("missing class err = %v", err)
	}

	rates, err := store.LoadRates(ctx)
	if err != nil {
		t.Fatalf("LoadRates: %v", err)
	}
	table := NewRateTable()
	table.Apply(rates)
	if table.Get(SUV).BaseFare != 4.25 {
		t.Errorf("table SUV base = %v", table.Get(SUV).BaseFare)
	}
}
