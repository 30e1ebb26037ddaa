package fx

import (
	"math"
	"strings"

	"github.com/casavera/fx_backend/internal/core/domain"
)

// Currency markers that may decorate a typed budget. They are noise at parse
// time: budgets are authored against the canonical currency and converted
// afterwards.
var currencyMarkers = []string{"EUR", "USD", "GBP", "RUB", "€", "$", "£", "₽"}

// ParseBudget parses expressions like "1.5M - 2M", "800K+" or "2,500,000"
// into canonical EUR amounts. A side that fails to parse stays nil; callers
// rendering an expression where both sides are nil must fall back to the
// original text rather than blanking it.
func ParseBudget(text string) domain.BudgetExpression {
	s := strings.ToUpper(text)
	s = strings.ReplaceAll(s, " ", "")
	for _, marker := range currencyMarkers {
		s = strings.ReplaceAll(s, marker, "")
	}

	var expr domain.BudgetExpression
	if strings.HasSuffix(s, "+") {
		expr.HasPlus = true
		s = strings.TrimSuffix(s, "+")
	}

	s = strings.ReplaceAll(s, "–", "-") // en-dash typed ranges
	parts := strings.SplitN(s, "-", 2)

	expr.Low = parseBudgetSide(parts[0])
	if len(parts) == 2 {
		expr.High = parseBudgetSide(parts[1])
	}
	return expr
}

// parseBudgetSide resolves one side of a budget expression, applying a
// trailing K/M multiplier before normalization.
func parseBudgetSide(part string) *float64 {
	if part == "" {
		return nil
	}
	multiplier := 1.0
	switch {
	case strings.HasSuffix(part, "M"):
		multiplier = 1_000_000
		part = strings.TrimSuffix(part, "M")
	case strings.HasSuffix(part, "K"):
		multiplier = 1_000
		part = strings.TrimSuffix(part, "K")
	}
	v, ok := ParseAmount(part)
	if !ok || math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	v *= multiplier
	return &v
}
