package services

import (
	"context"

	"github.com/casavera/fx_backend/internal/core/domain"
)

// PreferenceReaderSvc reads a user's display preference.
type PreferenceReaderSvc interface {
	// GetPreference returns the stored preference, degraded to defaults when
	// nothing valid was ever saved.
	GetPreference(ctx context.Context, userID string) (domain.Preference, error)
}

// PreferenceWriterSvc updates a user's display preference.
type PreferenceWriterSvc interface {
	// SetPreference validates against the closed currency/unit sets and
	// persists synchronously.
	SetPreference(ctx context.Context, userID string, currencyCode, unitSystem string) (*domain.Preference, error)
}

// PreferenceSvcFacade combines all preference service interfaces.
type PreferenceSvcFacade interface {
	PreferenceReaderSvc
	PreferenceWriterSvc
}
