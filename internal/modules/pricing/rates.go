// README: Rate table resolves per-class rates, with built-in defaults.
package pricing

import "sync"

func builtinRates() map[VehicleClass]Rate {
	return map[VehicleClass]Rate{
		Sedan:    {Class: Sedan, BaseFare: 2.50, PerKm: 1.50, PerMinute: 0.35},
		SUV:      {Class: SUV, BaseFare: 3.50, PerKm: 2.00, PerMinute: 0.45},
		Electric: {Class: Electric, BaseFare: 3.00, PerKm: 1.60, PerMinute: 0.40},
		Luxury:   {Class: Luxury, BaseFare: 5.00, PerKm: 2.80, PerMinute: 0.60},
	}
}

// RateTable always holds an entry for every VehicleClass.
type RateTable struct {
	mu    sync.RWMutex
	rates map[VehicleClass]Rate
}

func NewRateTable() *RateTable {
	return &RateTable{rates: builtinRates()}
}

// Get returns the rate for v, or the Sedan rate for unknown classes.
func (t *RateTable) Get(v VehicleClass) Rate {
	if !v.IsValid() {
		v = DefaultVehicleClass
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.rates[v]
}

// Apply replaces rates for known classes and returns the classes it ignored.
func (t *RateTable) Apply(rates []Rate) (ignored []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, r := range rates {
		if !r.Class.IsValid() {
			ignored = append(ignored, string(r.Class))
			continue
		}
		t.rates[r.Class] = r
	}
	return ignored
}

// List returns rates in VehicleClasses order.
func (t *RateTable) List() []Rate {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Rate, 0, len(VehicleClasses))
	for _, v := range VehicleClasses {
		out = append(out, t.rates[v])
	}
	return out
}
