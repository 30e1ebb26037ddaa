package dto

import "github.com/casavera/fx_backend/internal/core/domain"

// CurrencyResponse defines the data returned for a supported currency.
type CurrencyResponse struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Locale   string `json:"locale"`
	Symbol   string `json:"symbol"`
	Position string `json:"position"`
}

// ToCurrencyResponse converts a domain.CurrencyConfig to CurrencyResponse DTO
func ToCurrencyResponse(cfg *domain.CurrencyConfig) CurrencyResponse {
	return CurrencyResponse{
		Code:     string(cfg.Code),
		Name:     cfg.Name,
		Locale:   cfg.Locale,
		Symbol:   cfg.Symbol,
		Position: string(cfg.Position),
	}
}

// ToListCurrencyResponse converts a slice of domain.CurrencyConfig to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(configs []domain.CurrencyConfig) []CurrencyResponse {
	res := make([]CurrencyResponse, len(configs))
	for i, cfg := range configs {
		res[i] = ToCurrencyResponse(&cfg)
	}
	return res
}
