package fx_test

import (
	"testing"

	"github.com/casavera/fx_backend/internal/core/fx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBudget_Range(t *testing.T) {
	expr := fx.ParseBudget("1.5M - 2M EUR")
	require.NotNil(t, expr.Low)
	require.NotNil(t, expr.High)
	assert.InDelta(t, 1_500_000, *expr.Low, 1e-6)
	assert.InDelta(t, 2_000_000, *expr.High, 1e-6)
	assert.False(t, expr.HasPlus)
}

func TestParseBudget_OpenEnded(t *testing.T) {
	expr := fx.ParseBudget("800K+")
	require.NotNil(t, expr.Low)
	assert.Nil(t, expr.High)
	assert.InDelta(t, 800_000, *expr.Low, 1e-6)
	assert.True(t, expr.HasPlus)
}

func TestParseBudget_SingleAmount(t *testing.T) {
	expr := fx.ParseBudget("2,500,000")
	require.NotNil(t, expr.Low)
	assert.Nil(t, expr.High)
	assert.InDelta(t, 2_500_000, *expr.Low, 1e-6)
}

func TestParseBudget_EnDashAndCase(t *testing.T) {
	expr := fx.ParseBudget("750k–1.2m")
	require.NotNil(t, expr.Low)
	require.NotNil(t, expr.High)
	assert.InDelta(t, 750_000, *expr.Low, 1e-6)
	assert.InDelta(t, 1_200_000, *expr.High, 1e-6)
}

func TestParseBudget_CurrencyNoise(t *testing.T) {
	expr := fx.ParseBudget("$ 900K - $ 1.1M")
	require.NotNil(t, expr.Low)
	require.NotNil(t, expr.High)
	assert.InDelta(t, 900_000, *expr.Low, 1e-6)
	assert.InDelta(t, 1_100_000, *expr.High, 1e-6)
}

func TestParseBudget_Unparseable(t *testing.T) {
	expr := fx.ParseBudget("N/A")
	assert.Nil(t, expr.Low)
	assert.Nil(t, expr.High)
	assert.False(t, expr.Parseable())
}

func TestParseBudget_PartialRange(t *testing.T) {
	// One bad side does not poison the other.
	expr := fx.ParseBudget("abc-2M")
	assert.Nil(t, expr.Low)
	require.NotNil(t, expr.High)
	assert.InDelta(t, 2_000_000, *expr.High, 1e-6)
	assert.True(t, expr.Parseable())
}
