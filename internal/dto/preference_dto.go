package dto

import (
	"time"

	"github.com/casavera/fx_backend/internal/core/domain"
)

// UpdatePreferenceRequest defines the data needed to change a user's display
// preference. Values are validated against the closed sets by the service.
type UpdatePreferenceRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,uppercase,len=3"`
	UnitSystem   string `json:"unitSystem" binding:"required,oneof=metric imperial"`
}

// PreferenceResponse defines the data returned for a preference.
type PreferenceResponse struct {
	UserID        string    `json:"userID"`
	CurrencyCode  string    `json:"currencyCode"`
	UnitSystem    string    `json:"unitSystem"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToPreferenceResponse converts a domain.Preference to PreferenceResponse DTO
func ToPreferenceResponse(pref *domain.Preference) PreferenceResponse {
	return PreferenceResponse{
		UserID:        pref.UserID,
		CurrencyCode:  string(pref.CurrencyCode),
		UnitSystem:    string(pref.UnitSystem),
		LastUpdatedAt: pref.LastUpdatedAt,
	}
}
