package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/casavera/fx_backend/internal/apperrors"
	"github.com/casavera/fx_backend/internal/core/domain"
	portsrepo "github.com/casavera/fx_backend/internal/core/ports/repositories"
	portssvc "github.com/casavera/fx_backend/internal/core/ports/services"
	"github.com/casavera/fx_backend/internal/utils/pagination"
)

// RateService owns the EUR-based rate table and its refresh lifecycle.
//
// Built-in defaults are adopted synchronously at construction so converters
// always have a usable table; Init then layers a persisted cache on top and
// starts the periodic refresh. Every failure along the way is swallowed and
// logged: the last known-good table stays authoritative, per-key.
type RateService struct {
	BaseService
	rateRepo portsrepo.RateRepositoryFacade
	source   portssvc.RateSource
	logger   *slog.Logger
	interval time.Duration

	mu    sync.RWMutex
	table domain.RateTable

	scheduler  *cron.Cron
	refreshing atomic.Bool
	stopped    atomic.Bool
}

// NewRateService creates a RateService holding the built-in default table.
func NewRateService(rateRepo portsrepo.RateRepositoryFacade, source portssvc.RateSource, logger *slog.Logger, interval time.Duration) *RateService {
	if interval <= 0 {
		interval = portssvc.RefreshInterval
	}
	return &RateService{
		rateRepo: rateRepo,
		source:   source,
		logger:   logger.With(slog.String("service", "rates")),
		interval: interval,
		table:    domain.DefaultRateTable(),
	}
}

// Init adopts the persisted cache if one exists, schedules the periodic
// refresh, and kicks an immediate asynchronous one. Cache problems are
// non-fatal; only a broken schedule spec is an error.
func (s *RateService) Init(ctx context.Context) error {
	cached, err := s.rateRepo.LoadRateTable(ctx)
	switch {
	case err == nil && cached != nil:
		s.adopt(*cached, cached.UpdatedAt)
		s.logger.Info("Adopted persisted rate table", slog.Any("updated_at", cached.UpdatedAt))
	case err != nil && !errors.Is(err, apperrors.ErrNotFound):
		s.logger.Warn("Failed to load persisted rate table, keeping defaults", slog.String("error", err.Error()))
	}

	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@every "+s.interval.String(), func() {
		s.Refresh(context.Background())
	}); err != nil {
		return fmt.Errorf("failed to schedule rate refresh: %w", err)
	}
	scheduler.Start()
	s.scheduler = scheduler

	go s.Refresh(context.Background())
	return nil
}

// Refresh performs one fetch-merge-persist cycle. At most one refresh runs at
// a time; a second call while one is in flight is a no-op.
func (s *RateService) Refresh(ctx context.Context) {
	if s.stopped.Load() {
		return
	}
	if !s.refreshing.CompareAndSwap(false, true) {
		return
	}
	defer s.refreshing.Store(false)

	fetched, err := s.source.FetchRates(ctx)
	if err != nil {
		s.logger.Warn("Rate refresh failed, previous table retained", slog.String("error", err.Error()))
		return
	}
	if s.stopped.Load() {
		// Stop raced the fetch; the result is stale by definition.
		return
	}

	now := time.Now()
	next := s.adopt(domain.RateTable{Rates: fetched}, &now)

	if err := s.rateRepo.SaveRateTable(ctx, next); err != nil {
		s.logger.Warn("Failed to persist refreshed rate table", slog.String("error", err.Error()))
	} else {
		s.logger.Info("Rate table refreshed", slog.Int("currencies", len(fetched)))
	}
}

// adopt merges incoming rates over the current table per key. Unknown codes,
// EUR overrides and non-positive values are dropped so one bad key never
// corrupts the rest. Returns the table that became current.
func (s *RateService) adopt(incoming domain.RateTable, updatedAt *time.Time) domain.RateTable {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.table.Clone()
	for code, rate := range incoming.Rates {
		if code == domain.CurrencyEUR {
			continue
		}
		if _, ok := domain.ConfigForCurrency(code); !ok {
			continue
		}
		if rate <= 0 {
			s.logger.Warn("Ignoring non-positive rate", slog.String("currency", string(code)), slog.Float64("rate", rate))
			continue
		}
		next.Rates[code] = rate
	}
	if updatedAt != nil {
		ts := *updatedAt
		next.UpdatedAt = &ts
	}
	s.table = next
	return next
}

// Snapshot returns a copy of the current table without blocking on I/O.
func (s *RateService) Snapshot() domain.RateTable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.Clone()
}

// ListRateHistory pages through persisted observations, newest first.
func (s *RateService) ListRateHistory(ctx context.Context, currencyCode domain.CurrencyCode, limit int, pageToken string) ([]domain.RatePoint, string, error) {
	if _, ok := domain.ConfigForCurrency(currencyCode); !ok {
		return nil, "", fmt.Errorf("%w: unsupported currency code '%s'", apperrors.ErrValidation, currencyCode)
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	before := time.Now()
	if pageToken != "" {
		decoded, err := pagination.DecodeDateBasedToken(pageToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		before = decoded
	}

	points, err := s.rateRepo.ListRateHistory(ctx, currencyCode, limit, before)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list rate history: %w", err)
	}

	nextToken := ""
	if len(points) == limit {
		nextToken = pagination.EncodeDateBasedToken(points[len(points)-1].FetchedAt)
	}
	return points, nextToken, nil
}

// Stop tears the scheduler down. A fetch already in flight completes but its
// result is discarded.
func (s *RateService) Stop() {
	s.stopped.Store(true)
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
