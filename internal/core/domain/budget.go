package domain

// BudgetExpression is the parsed form of a free-text budget: a single
// amount, a closed range, or an open-ended lower bound. Amounts are
// canonical EUR. Sides that failed to parse stay nil; the parser does not
// reorder a range whose sides arrive high-to-low.
//
// The struct is transient: persisted budgets are always the rendered string.
type BudgetExpression struct {
	Low     *float64 `json:"low"`
	High    *float64 `json:"high"`
	HasPlus bool     `json:"hasPlus"`
}

// Parseable reports whether at least one side yielded an amount. When false,
// formatting layers must return the original text untouched.
func (b BudgetExpression) Parseable() bool {
	return b.Low != nil || b.High != nil
}
