package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/casavera/fx_backend/internal/core/domain"
)

// RateTableResponse is the wire form of the current rate table. Rates go out
// as decimals so clients never see binary-float noise like 0.8599999.
type RateTableResponse struct {
	Base      string                     `json:"base"`
	Rates     map[string]decimal.Decimal `json:"rates"`
	UpdatedAt *time.Time                 `json:"updatedAt"`
}

// ToRateTableResponse converts a domain.RateTable to RateTableResponse DTO
func ToRateTableResponse(table domain.RateTable) RateTableResponse {
	rates := make(map[string]decimal.Decimal, len(table.Rates))
	for code, rate := range table.Rates {
		rates[string(code)] = decimal.NewFromFloat(rate).Round(6)
	}
	return RateTableResponse{
		Base:      string(domain.CurrencyEUR),
		Rates:     rates,
		UpdatedAt: table.UpdatedAt,
	}
}

// RatePointResponse is one historical rate observation.
type RatePointResponse struct {
	PointID      string          `json:"pointID"`
	CurrencyCode string          `json:"currencyCode"`
	Rate         decimal.Decimal `json:"rate"`
	FetchedAt    time.Time       `json:"fetchedAt"`
}

// ListRateHistoryResponse wraps a history page with its continuation token.
type ListRateHistoryResponse struct {
	Points        []RatePointResponse `json:"points"`
	NextPageToken string              `json:"nextPageToken,omitempty"`
}

// ToListRateHistoryResponse converts history points and token to the DTO.
func ToListRateHistoryResponse(points []domain.RatePoint, nextPageToken string) ListRateHistoryResponse {
	res := ListRateHistoryResponse{
		Points:        make([]RatePointResponse, len(points)),
		NextPageToken: nextPageToken,
	}
	for i, p := range points {
		res.Points[i] = RatePointResponse{
			PointID:      p.PointID,
			CurrencyCode: string(p.CurrencyCode),
			Rate:         decimal.NewFromFloat(p.Rate).Round(6),
			FetchedAt:    p.FetchedAt,
		}
	}
	return res
}
