package currency

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
)

func TestTableRate(t *testing.T) {
	table := NewTable()
	tests := []struct {
		code string
		want float64
	}{
		{"USD", 1.0},
		{"eur", 0.85},
		{" Inr ", 74.5},
		{"JPY", 110.0},
		{"XYZ", 1.0},
		{"", 1.0},
	}
	for _, tt := range tests {
		if got := table.Rate(tt.code); got != tt.want {
			t.Errorf("Rate(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestSymbol(t *testing.T) {
	tests := map[string]string{
		"usd": "$",
		"EUR": "€",
		"GBP": "£",
		"CAD": "C$",
		"INR": "₹",
		"CNY": "¥",
		"BTC": "$",
	}
	for code, want := range tests {
		if got := Symbol(code); got != want {
			t.Errorf("Symbol(%q) = %q, want %q", code, got, want)
		}
	}
}

func TestTableApply(t *testing.T) {
	table := NewTable()
	skipped := table.Apply(map[string]float64{"eur": 0.9, "SEK": 10.5, "GBP": 0, "CHF": -1})
	if table.Rate("EUR") != 0.9 {
		t.Errorf("EUR override not applied: %v", table.Rate("EUR"))
	}
	if table.Rate("sek") != 10.5 || !table.Known("SEK") {
		t.Errorf("SEK not added")
	}
	if table.Rate("GBP") != 0.73 {
		t.Errorf("GBP should keep built-in rate, got %v", table.Rate("GBP"))
	}
	if len(skipped) != 2 || skipped[0] != "CHF" || skipped[1] != "GBP" {
		t.Errorf("skipped = %v", skipped)
	}
}

func TestTableList(t *testing.T) {
	list := NewTable().List()
	if len(list) != 8 {
		t.Fatalf("len(List()) = %d, want 8", len(list))
	}
	if list[0].Code != "AUD" || list[0].Symbol != "A$" {
		t.Errorf("first entry = %+v", list[0])
	}
}

func TestStoreRoundTrip(t *testing.T) {
	addr := os.Getenv("FARECAST_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("Skipping: FARECAST_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	store := NewStore(client)
	if err := store.SetRate(ctx, "zzz", 0); !errors.Is(err, ErrInvalidRate) {
		t.Fatalf("SetRate(0) err = %v", err)
	}
	if err := store.SetRate(ctx, "zzz", 2.5); err != nil {
		t.Fatalf("SetRate: %v", err)
	}
	defer store.DeleteRate(ctx, "ZZZ")

	rates, err := store.LoadRates(ctx)
	if err != nil {
		t.Fatalf("LoadRates: %v", err)
	}
	if rates["ZZZ"] != 2.5 {
		t.Errorf("ZZZ = %v, want 2.5", rates["ZZZ"])
	}
}
