package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/casavera/fx_backend/internal/apperrors"
	"github.com/casavera/fx_backend/internal/core/domain"
	"github.com/casavera/fx_backend/internal/core/fx"
	portssvc "github.com/casavera/fx_backend/internal/core/ports/services"
)

// RenderService composes the pure fx engine with the rate and preference
// stores. It holds no state of its own: every call reads the freshest rate
// snapshot and the caller's active preference.
type RenderService struct {
	BaseService
	prefs portssvc.PreferenceReaderSvc
	rates portssvc.RateReaderSvc
}

func NewRenderService(prefs portssvc.PreferenceReaderSvc, rates portssvc.RateReaderSvc) *RenderService {
	return &RenderService{prefs: prefs, rates: rates}
}

// resolve pins down the currency config, unit system and rate for one call.
// Explicit options win over the stored preference, which wins over defaults.
func (s *RenderService) resolve(ctx context.Context, opts portssvc.RenderOptions) (domain.CurrencyConfig, domain.UnitSystem, float64, error) {
	pref := domain.DefaultPreference(opts.UserID)
	if opts.UserID != "" {
		loaded, err := s.prefs.GetPreference(ctx, opts.UserID)
		if err == nil {
			pref = loaded
		}
	}

	code := pref.CurrencyCode
	if opts.CurrencyCode != "" {
		parsed, ok := domain.ParseCurrencyCode(strings.ToUpper(opts.CurrencyCode))
		if !ok {
			return domain.CurrencyConfig{}, "", 0, fmt.Errorf("%w: unsupported currency code '%s'", apperrors.ErrValidation, opts.CurrencyCode)
		}
		code = parsed
	}

	unit := pref.UnitSystem
	if opts.UnitSystem != "" {
		parsed, ok := domain.ParseUnitSystem(strings.ToLower(opts.UnitSystem))
		if !ok {
			return domain.CurrencyConfig{}, "", 0, fmt.Errorf("%w: unsupported unit system '%s'", apperrors.ErrValidation, opts.UnitSystem)
		}
		unit = parsed
	}

	cfg, _ := domain.ConfigForCurrency(code)
	rate := s.rates.Snapshot().Rate(code)
	return cfg, unit, rate, nil
}

func (s *RenderService) MoneyText(ctx context.Context, amountEUR float64, minFrac, maxFrac int, opts portssvc.RenderOptions) (string, error) {
	cfg, _, rate, err := s.resolve(ctx, opts)
	if err != nil {
		return "", err
	}
	if minFrac < 0 {
		minFrac = fx.DefaultFractionDigits
	}
	if maxFrac < minFrac {
		maxFrac = minFrac
	}
	return fx.FormatMoney(amountEUR, cfg, rate, minFrac, maxFrac), nil
}

func (s *RenderService) BudgetText(ctx context.Context, text string, opts portssvc.RenderOptions) (string, error) {
	cfg, _, rate, err := s.resolve(ctx, opts)
	if err != nil {
		return "", err
	}
	return fx.FormatBudgetText(text, cfg, rate), nil
}

func (s *RenderService) SurfaceText(ctx context.Context, squareMeters float64, opts portssvc.RenderOptions) (string, error) {
	cfg, unit, _, err := s.resolve(ctx, opts)
	if err != nil {
		return "", err
	}
	return fx.FormatSurface(squareMeters, unit, cfg.Locale), nil
}

func (s *RenderService) ParseBudget(ctx context.Context, text string) domain.BudgetExpression {
	return fx.ParseBudget(text)
}

func (s *RenderService) ParseAmount(ctx context.Context, text string, opts portssvc.RenderOptions) (float64, bool, error) {
	_, _, rate, err := s.resolve(ctx, opts)
	if err != nil {
		return 0, false, err
	}
	v, ok := fx.ParseAmount(text)
	if !ok {
		return 0, false, nil
	}
	return fx.ToEUR(v, rate), true, nil
}
