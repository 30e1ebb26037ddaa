package fx_test

import (
	"testing"

	"github.com/casavera/fx_backend/internal/core/fx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeNumericText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"eu convention", "1.234,56", "1234.56"},
		{"us convention", "1,234.56", "1234.56"},
		{"repeated commas are grouping", "1,234,567", "1234567"},
		{"repeated dots are grouping", "1.234.567", "1234567"},
		{"eu with repeated grouping dots", "1.234.567,89", "1234567.89"},
		{"us with repeated grouping commas", "1,234,567.89", "1234567.89"},
		{"single comma is decimal", "1,5", "1.5"},
		{"single dot is decimal", "1.5", "1.5"},
		{"plain integer", "2500000", "2500000"},
		{"currency noise stripped", "€ 1 200", "1200"},
		{"negative eu", "-2.500,75", "-2500.75"},
		{"negative with symbol", "$ -42.50", "-42.50"},
		{"no digits", "N/A", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fx.NormalizeNumericText(tt.in))
		})
	}
}

func TestNormalizeNumericText_ConventionsAgree(t *testing.T) {
	// The same magnitude typed under either convention must come out equal.
	eu, okEU := fx.ParseAmount("1.234,56")
	us, okUS := fx.ParseAmount("1,234.56")
	require.True(t, okEU)
	require.True(t, okUS)
	assert.Equal(t, eu, us)
	assert.InDelta(t, 1234.56, eu, 1e-9)
}

func TestParseAmount(t *testing.T) {
	v, ok := fx.ParseAmount("2,500,000")
	require.True(t, ok)
	assert.InDelta(t, 2_500_000, v, 1e-9)

	_, ok = fx.ParseAmount("price on request")
	assert.False(t, ok)
}
