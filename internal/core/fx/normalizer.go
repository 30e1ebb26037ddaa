// Package fx holds the pure numeric engine: free-text normalization, budget
// parsing, EUR conversion and locale-aware rendering. Everything here is a
// function of its inputs; rate and preference state live in the services
// that call it.
package fx

import (
	"strconv"
	"strings"
)

// NormalizeNumericText turns a human-typed number into an unambiguous numeric
// literal: single dot as decimal separator, no grouping separators. It
// resolves EU ("1.234,56") and US ("1,234.56") conventions by treating
// whichever separator occurs last as the decimal one. A separator kind that
// occurs more than once is always grouping, never decimal, so "1,234,567"
// comes out as 1234567. Returns "" when the input holds no digits.
func NormalizeNumericText(raw string) string {
	var b strings.Builder
	negative := false
	seenDigit := false
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			seenDigit = true
			b.WriteRune(r)
		case r == ',' || r == '.':
			b.WriteRune(r)
		case r == '-' && !seenDigit:
			negative = true
		}
	}
	if !seenDigit {
		return ""
	}

	s := b.String()
	lastComma := strings.LastIndexByte(s, ',')
	lastDot := strings.LastIndexByte(s, '.')
	commas := strings.Count(s, ",")
	dots := strings.Count(s, ".")

	// Pick the decimal separator: the kind seen last wins, but a kind that
	// repeats is grouping regardless of position.
	var decimalSep byte
	switch {
	case commas > 0 && dots > 0:
		if lastComma > lastDot {
			decimalSep = ','
		} else {
			decimalSep = '.'
		}
	case commas > 0:
		decimalSep = ','
	case dots > 0:
		decimalSep = '.'
	}
	if decimalSep == ',' && commas > 1 {
		decimalSep = 0
	}
	if decimalSep == '.' && dots > 1 {
		decimalSep = 0
	}

	var out strings.Builder
	if negative {
		out.WriteByte('-')
	}
	lastSep := strings.LastIndexAny(s, ",.")
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ',' || c == '.' {
			if c == decimalSep && i == lastSep {
				out.WriteByte('.')
			}
			continue
		}
		out.WriteByte(c)
	}
	return out.String()
}

// ParseAmount normalizes and parses free text into a float. The boolean is
// false when the text holds no usable number.
func ParseAmount(raw string) (float64, bool) {
	normalized := NormalizeNumericText(raw)
	if normalized == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
