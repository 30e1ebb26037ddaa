package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/casavera/fx_backend/internal/apperrors"
	"github.com/casavera/fx_backend/internal/core/domain"
)

// CurrencyService serves the closed currency catalogue. The set lives in the
// domain package; there is deliberately no storage behind it.
type CurrencyService struct{}

func NewCurrencyService() *CurrencyService {
	return &CurrencyService{}
}

func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.CurrencyConfig, error) {
	code, ok := domain.ParseCurrencyCode(strings.ToUpper(currencyCode))
	if !ok {
		return nil, fmt.Errorf("%w: unsupported currency code '%s'", apperrors.ErrNotFound, currencyCode)
	}
	cfg, _ := domain.ConfigForCurrency(code)
	return &cfg, nil
}

func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.CurrencyConfig, error) {
	return domain.SupportedCurrencies(), nil
}
