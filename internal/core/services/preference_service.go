package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/casavera/fx_backend/internal/apperrors"
	"github.com/casavera/fx_backend/internal/core/domain"
	portsrepo "github.com/casavera/fx_backend/internal/core/ports/repositories"
)

// PreferenceService manages per-user display preferences. Reads never fail:
// anything missing or out of domain degrades to (EUR, metric).
type PreferenceService struct {
	BaseService
	prefRepo portsrepo.PreferenceRepositoryFacade
}

func NewPreferenceService(prefRepo portsrepo.PreferenceRepositoryFacade) *PreferenceService {
	return &PreferenceService{prefRepo: prefRepo}
}

func (s *PreferenceService) GetPreference(ctx context.Context, userID string) (domain.Preference, error) {
	pref, err := s.prefRepo.FindPreference(ctx, userID)
	if err != nil || pref == nil {
		if err != nil {
			s.GetLogger(ctx).Warn("Preference lookup failed, using defaults",
				slog.String("user_id", userID), slog.String("error", err.Error()))
		}
		return domain.DefaultPreference(userID), nil
	}

	// Stored values outside the closed sets are discarded per field, never
	// trusted as-is.
	out := domain.DefaultPreference(userID)
	if code, ok := domain.ParseCurrencyCode(string(pref.CurrencyCode)); ok {
		out.CurrencyCode = code
	}
	if unit, ok := domain.ParseUnitSystem(string(pref.UnitSystem)); ok {
		out.UnitSystem = unit
	}
	out.AuditFields = pref.AuditFields
	return out, nil
}

func (s *PreferenceService) SetPreference(ctx context.Context, userID string, currencyCode, unitSystem string) (*domain.Preference, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user ID is required", apperrors.ErrValidation)
	}
	code, ok := domain.ParseCurrencyCode(strings.ToUpper(currencyCode))
	if !ok {
		return nil, fmt.Errorf("%w: unsupported currency code '%s'", apperrors.ErrValidation, currencyCode)
	}
	unit, ok := domain.ParseUnitSystem(strings.ToLower(unitSystem))
	if !ok {
		return nil, fmt.Errorf("%w: unsupported unit system '%s'", apperrors.ErrValidation, unitSystem)
	}

	now := time.Now()
	pref := domain.Preference{
		UserID:       userID,
		CurrencyCode: code,
		UnitSystem:   unit,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.prefRepo.SavePreference(ctx, pref); err != nil {
		return nil, fmt.Errorf("failed to save preference: %w", err)
	}
	return &pref, nil
}
