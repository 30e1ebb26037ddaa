package domain

// Preference is a user's display selection. It only affects rendering;
// canonical EUR amounts and square-meter areas are never rewritten when it
// changes.
type Preference struct {
	UserID       string       `json:"userID"`
	CurrencyCode CurrencyCode `json:"currencyCode"`
	UnitSystem   UnitSystem   `json:"unitSystem"`
	AuditFields
}

// DefaultPreference is what a user gets before they ever pick anything, and
// what an invalid stored value degrades to.
func DefaultPreference(userID string) Preference {
	return Preference{
		UserID:       userID,
		CurrencyCode: CurrencyEUR,
		UnitSystem:   UnitMetric,
	}
}
