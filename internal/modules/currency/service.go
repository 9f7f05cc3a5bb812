// README: Currency table resolves exchange rates; lookups never fail.
package currency

import (
	"sort"
	"sync"
)

// Table is safe for concurrent use. Overrides loaded from the store replace
// built-in entries.
type Table struct {
	mu    sync.RWMutex
	rates map[string]float64
}

func NewTable() *Table {
	return &Table{rates: builtinRates()}
}

// Rate returns the USD-relative rate for code (case-insensitive), or
// DefaultRate when the code is unknown.
func (t *Table) Rate(code string) float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if r, ok := t.rates[Normalize(code)]; ok {
		return r
	}
	return DefaultRate
}

// Known reports whether code has an entry.
func (t *Table) Known(code string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.rates[Normalize(code)]
	return ok
}

// Apply merges overrides. Non-positive rates are skipped and returned.
func (t *Table) Apply(overrides map[string]float64) (skipped []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for code, rate := range overrides {
		code = Normalize(code)
		if code == "" || rate <= 0 {
			skipped = append(skipped, code)
			continue
		}
		t.rates[code] = rate
	}
	sort.Strings(skipped)
	return skipped
}

// List returns every currency sorted by code.
func (t *Table) List() []Info {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Info, 0, len(t.rates))
	for code, rate := range t.rates {
		out = append(out, Info{Code: code, Rate: rate, Symbol: Symbol(code)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
