package services

import (
	"context"

	"github.com/casavera/fx_backend/internal/core/domain"
)

// RenderOptions pin down the display currency and unit system for one render
// or parse call. Empty fields fall back to the user's stored preference, then
// to the defaults.
type RenderOptions struct {
	UserID       string
	CurrencyCode string
	UnitSystem   string
}

// RenderSvcFacade is the consumer-facing surface of the engine: everything a
// CRM view needs to show or accept a monetary value, a budget or an area.
type RenderSvcFacade interface {
	// MoneyText renders a canonical EUR amount in the active currency.
	MoneyText(ctx context.Context, amountEUR float64, minFrac, maxFrac int, opts RenderOptions) (string, error)

	// BudgetText re-renders a free-text budget in the active currency,
	// returning the input unchanged when it does not parse.
	BudgetText(ctx context.Context, text string, opts RenderOptions) (string, error)

	// SurfaceText renders a square-meter area under the active unit system.
	SurfaceText(ctx context.Context, squareMeters float64, opts RenderOptions) (string, error)

	// ParseBudget parses budget text into canonical EUR bounds.
	ParseBudget(ctx context.Context, text string) domain.BudgetExpression

	// ParseAmount parses display-currency text into a canonical EUR amount.
	// ok is false when the text holds no number.
	ParseAmount(ctx context.Context, text string, opts RenderOptions) (amountEUR float64, ok bool, err error)
}
