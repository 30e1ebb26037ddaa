package services

import (
	"context"
	"time"

	"github.com/casavera/fx_backend/internal/core/domain"
)

// RateSource fetches fresh EUR-based rates from an external provider.
// Implementations return only the keys the provider answered; the store
// merges them per key over the previous table.
type RateSource interface {
	FetchRates(ctx context.Context) (map[domain.CurrencyCode]float64, error)
}

// RateReaderSvc exposes the freshest known rate table.
type RateReaderSvc interface {
	// Snapshot returns a copy of the current table. Never blocks on I/O.
	Snapshot() domain.RateTable

	// ListRateHistory pages through persisted rate observations.
	ListRateHistory(ctx context.Context, currencyCode domain.CurrencyCode, limit int, pageToken string) ([]domain.RatePoint, string, error)
}

// RateRefresherSvc controls the refresh lifecycle.
type RateRefresherSvc interface {
	// Init adopts built-in defaults, then any persisted cache, then starts
	// the periodic refresh.
	Init(ctx context.Context) error

	// Refresh performs one fetch-merge-persist cycle now. Failures are
	// swallowed by design; the previous table stays authoritative.
	Refresh(ctx context.Context)

	// Stop tears the scheduler down. Fetches still in flight complete but
	// their results are discarded.
	Stop()
}

// RateSvcFacade combines all rate-store service interfaces.
type RateSvcFacade interface {
	RateReaderSvc
	RateRefresherSvc
}

// RefreshInterval is the default cadence of the periodic rate refresh.
const RefreshInterval = 10 * time.Minute
