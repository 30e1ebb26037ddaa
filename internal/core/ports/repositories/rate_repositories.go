package repositories

import (
	"context"
	"time"

	"github.com/casavera/fx_backend/internal/core/domain"
)

// RateCacheReader defines read operations for the persisted rate table.
type RateCacheReader interface {
	// LoadRateTable retrieves the last persisted rate table, or
	// apperrors.ErrNotFound when no refresh ever succeeded.
	LoadRateTable(ctx context.Context) (*domain.RateTable, error)
}

// RateCacheWriter defines write operations for the persisted rate table.
type RateCacheWriter interface {
	// SaveRateTable persists the table so the next boot starts from it, and
	// appends the rates to the history log.
	SaveRateTable(ctx context.Context, table domain.RateTable) error
}

// RateHistoryReader lists persisted rate observations, newest first.
type RateHistoryReader interface {
	// ListRateHistory returns up to limit points fetched strictly before the
	// token's timestamp, plus the token for the next page ("" when done).
	ListRateHistory(ctx context.Context, currencyCode domain.CurrencyCode, limit int, before time.Time) ([]domain.RatePoint, error)
}

// RateRepositoryFacade combines all rate-related repository interfaces.
type RateRepositoryFacade interface {
	RateCacheReader
	RateCacheWriter
	RateHistoryReader
}
