package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/casavera/fx_backend/internal/apperrors"
	"github.com/casavera/fx_backend/internal/core/domain"
)

// PgxPreferenceRepository persists per-user display preferences.
type PgxPreferenceRepository struct {
	BaseRepository
}

// NewPgxPreferenceRepository creates a new PgxPreferenceRepository.
func NewPgxPreferenceRepository(db *pgxpool.Pool) *PgxPreferenceRepository {
	return &PgxPreferenceRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// SavePreference upserts a user's preference row.
func (r *PgxPreferenceRepository) SavePreference(ctx context.Context, pref domain.Preference) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO user_preferences (user_id, currency_code, unit_system, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			currency_code = EXCLUDED.currency_code,
			unit_system = EXCLUDED.unit_system,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;`,
		pref.UserID,
		string(pref.CurrencyCode),
		string(pref.UnitSystem),
		pref.CreatedAt,
		pref.CreatedBy,
		pref.LastUpdatedAt,
		pref.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save preference", err)
	}
	return nil
}

// FindPreference retrieves a user's stored preference.
func (r *PgxPreferenceRepository) FindPreference(ctx context.Context, userID string) (*domain.Preference, error) {
	var pref domain.Preference
	var code, unit string
	err := r.Pool.QueryRow(ctx, `
		SELECT user_id, currency_code, unit_system, created_at, created_by, last_updated_at, last_updated_by
		FROM user_preferences
		WHERE user_id = $1;`,
		userID,
	).Scan(&pref.UserID, &code, &unit, &pref.CreatedAt, &pref.CreatedBy, &pref.LastUpdatedAt, &pref.LastUpdatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("preference not found for user " + userID)
		}
		return nil, apperrors.NewAppError(500, "failed to find preference", err)
	}
	pref.CurrencyCode = domain.CurrencyCode(code)
	pref.UnitSystem = domain.UnitSystem(unit)
	return &pref, nil
}
