package services

import (
	"context"

	"github.com/casavera/fx_backend/internal/core/domain"
)

// CurrencyReaderSvc exposes the closed currency catalogue. There is no writer
// counterpart: adding a currency is a code change, not an API call.
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves the config for a supported currency.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.CurrencyConfig, error)

	// ListCurrencies retrieves all supported currency configs.
	ListCurrencies(ctx context.Context) ([]domain.CurrencyConfig, error)
}

// CurrencySvcFacade combines all currency-related service interfaces.
type CurrencySvcFacade interface {
	CurrencyReaderSvc
}
