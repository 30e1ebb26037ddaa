package domain

import "time"

// Built-in rates used before any cache or network refresh succeeds.
// Expressed as units of the currency per 1 EUR.
const (
	DefaultRateGBP = 0.86
	DefaultRateUSD = 1.08
	DefaultRateRUB = 98.0
)

// RateTable is a snapshot of EUR-based exchange rates. UpdatedAt is nil while
// the table still holds built-in defaults that were never refreshed.
type RateTable struct {
	Rates     map[CurrencyCode]float64 `json:"rates"`
	UpdatedAt *time.Time               `json:"updatedAt"`
}

// DefaultRateTable returns the built-in rate table. EUR is fixed at 1.
func DefaultRateTable() RateTable {
	return RateTable{
		Rates: map[CurrencyCode]float64{
			CurrencyEUR: 1,
			CurrencyGBP: DefaultRateGBP,
			CurrencyUSD: DefaultRateUSD,
			CurrencyRUB: DefaultRateRUB,
		},
	}
}

// Rate returns the stored rate for a currency, or 0 when the entry is
// missing. Callers treat a non-positive rate as "convert as identity".
func (t RateTable) Rate(code CurrencyCode) float64 {
	if t.Rates == nil {
		return 0
	}
	return t.Rates[code]
}

// Clone returns a deep copy so callers can hold a snapshot without racing
// the owning store.
func (t RateTable) Clone() RateTable {
	out := RateTable{Rates: make(map[CurrencyCode]float64, len(t.Rates))}
	for code, rate := range t.Rates {
		out.Rates[code] = rate
	}
	if t.UpdatedAt != nil {
		ts := *t.UpdatedAt
		out.UpdatedAt = &ts
	}
	return out
}

// RatePoint is one persisted observation of a currency's EUR rate, kept so
// rate drift can be charted later.
type RatePoint struct {
	PointID      string       `json:"pointID"`
	CurrencyCode CurrencyCode `json:"currencyCode"`
	Rate         float64      `json:"rate"`
	FetchedAt    time.Time    `json:"fetchedAt"`
}
