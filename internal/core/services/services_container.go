package services

import (
	"log/slog"

	"github.com/casavera/fx_backend/internal/core/ports/repositories"
	portssvc "github.com/casavera/fx_backend/internal/core/ports/services"
	"github.com/casavera/fx_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos repositories.RepositoryProvider, source portssvc.RateSource, logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService()
	container.Rate = NewRateService(repos.RateRepo, source, logger, cfg.FxRefreshInterval)
	container.Preference = NewPreferenceService(repos.PreferenceRepo)
	container.Render = NewRenderService(container.Preference, container.Rate)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CurrencySvcFacade   = (*CurrencyService)(nil)
	_ portssvc.RateSvcFacade       = (*RateService)(nil)
	_ portssvc.PreferenceSvcFacade = (*PreferenceService)(nil)
	_ portssvc.RenderSvcFacade     = (*RenderService)(nil)
)
