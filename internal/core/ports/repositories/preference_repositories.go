package repositories

import (
	"context"

	"github.com/casavera/fx_backend/internal/core/domain"
)

// PreferenceReader defines read operations for display preferences.
type PreferenceReader interface {
	// FindPreference retrieves a user's stored preference, or
	// apperrors.ErrNotFound when they never saved one.
	FindPreference(ctx context.Context, userID string) (*domain.Preference, error)
}

// PreferenceWriter defines write operations for display preferences.
type PreferenceWriter interface {
	// SavePreference inserts or updates a user's preference.
	SavePreference(ctx context.Context, pref domain.Preference) error
}

// PreferenceRepositoryFacade combines all preference repository interfaces.
type PreferenceRepositoryFacade interface {
	PreferenceReader
	PreferenceWriter
}
