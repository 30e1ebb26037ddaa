package fx

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/casavera/fx_backend/internal/core/domain"
)

// SqFtPerSqM is the square-feet-per-square-meter factor used for imperial
// surface rendering.
const SqFtPerSqM = 10.7639

// DefaultFractionDigits bounds money rendering when callers do not ask for
// anything else.
const DefaultFractionDigits = 2

// FormatMoney renders a canonical EUR amount in the given currency: converts
// with the supplied rate, groups digits per the currency's locale, and places
// the symbol on the configured side (e.g. "$1,234.00" vs "1.234,00 €").
func FormatMoney(amountEUR float64, cfg domain.CurrencyConfig, rate float64, minFrac, maxFrac int) string {
	display := ToDisplay(amountEUR, rate)
	p := message.NewPrinter(language.Make(cfg.Locale))
	magnitude := p.Sprint(number.Decimal(display,
		number.MinFractionDigits(minFrac),
		number.MaxFractionDigits(maxFrac),
	))
	if cfg.Position == domain.SymbolPrefix {
		return cfg.Symbol + magnitude
	}
	return magnitude + " " + cfg.Symbol
}

// FormatCompact renders an already-converted display amount in K/M notation:
// one decimal at the scale boundary unless the scaled value is an integer,
// plain rounded integer below a thousand.
func FormatCompact(display float64) string {
	abs := math.Abs(display)
	switch {
	case abs >= 1_000_000:
		return compactScaled(display/1_000_000) + "M"
	case abs >= 1_000:
		return compactScaled(display/1_000) + "K"
	}
	return strconv.FormatFloat(math.Round(display), 'f', 0, 64)
}

func compactScaled(scaled float64) string {
	s := strconv.FormatFloat(scaled, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

// FormatSurface renders a square-meter area under the chosen unit system.
// Values are rounded to whole units; metric output is grouped per the given
// locale, imperial is the plain rounded square-feet figure.
func FormatSurface(squareMeters float64, unit domain.UnitSystem, locale string) string {
	if unit == domain.UnitImperial {
		sqft := math.Round(squareMeters * SqFtPerSqM)
		return strconv.FormatFloat(sqft, 'f', 0, 64) + " sq ft"
	}
	p := message.NewPrinter(language.Make(locale))
	sqm := math.Round(squareMeters)
	return p.Sprint(number.Decimal(sqm, number.MaxFractionDigits(0))) + " m²"
}

// FormatBudgetText re-renders a free-text budget in the given display
// currency, keeping the single/range/open-ended shape and the "+" marker.
// Text that parses on neither side comes back unchanged so the field never
// blanks.
func FormatBudgetText(text string, cfg domain.CurrencyConfig, rate float64) string {
	expr := ParseBudget(text)
	if !expr.Parseable() {
		return text
	}

	sides := make([]string, 0, 2)
	if expr.Low != nil {
		sides = append(sides, FormatCompact(ToDisplay(*expr.Low, rate)))
	}
	if expr.High != nil {
		sides = append(sides, FormatCompact(ToDisplay(*expr.High, rate)))
	}

	out := strings.Join(sides, "-")
	if expr.HasPlus {
		out += "+"
	}
	return out + " " + string(cfg.Code)
}
