package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/casavera/fx_backend/internal/apperrors"
	"github.com/casavera/fx_backend/internal/core/domain"
)

// PgxRateRepository persists the rate cache and the rate history using
// pgxpool. Rates are stored as NUMERIC and scanned through decimal so the
// database never sees binary-float artifacts.
type PgxRateRepository struct {
	BaseRepository
}

// NewPgxRateRepository creates a new PgxRateRepository.
func NewPgxRateRepository(db *pgxpool.Pool) *PgxRateRepository {
	return &PgxRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// SaveRateTable upserts the cache row per currency and appends history rows,
// all inside one transaction so a half-written table can never be loaded.
func (r *PgxRateRepository) SaveRateTable(ctx context.Context, table domain.RateTable) error {
	if table.UpdatedAt == nil {
		return apperrors.NewValidationError("refusing to persist a rate table without a timestamp")
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	for code, rate := range table.Rates {
		if code == domain.CurrencyEUR {
			continue
		}
		rateDec := decimal.NewFromFloat(rate)

		_, err = tx.Exec(ctx, `
			INSERT INTO fx_rate_cache (currency_code, rate, updated_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (currency_code) DO UPDATE SET
				rate = EXCLUDED.rate,
				updated_at = EXCLUDED.updated_at;`,
			string(code), rateDec, *table.UpdatedAt,
		)
		if err != nil {
			_ = r.Rollback(ctx, tx)
			return apperrors.NewAppError(500, "failed to upsert rate cache", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO fx_rate_history (point_id, currency_code, rate, fetched_at)
			VALUES ($1, $2, $3, $4);`,
			uuid.NewString(), string(code), rateDec, *table.UpdatedAt,
		)
		if err != nil {
			_ = r.Rollback(ctx, tx)
			return apperrors.NewAppError(500, "failed to append rate history", err)
		}
	}

	return r.Commit(ctx, tx)
}

// LoadRateTable reads the persisted cache. Returns apperrors.ErrNotFound when
// no refresh ever persisted anything.
func (r *PgxRateRepository) LoadRateTable(ctx context.Context) (*domain.RateTable, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT currency_code, rate, updated_at
		FROM fx_rate_cache;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to load rate cache", err)
	}
	defer rows.Close()

	table := domain.RateTable{Rates: map[domain.CurrencyCode]float64{domain.CurrencyEUR: 1}}
	var newest *time.Time
	for rows.Next() {
		var code string
		var rateDec decimal.Decimal
		var updatedAt time.Time
		if err := rows.Scan(&code, &rateDec, &updatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan rate cache row", err)
		}
		parsed, ok := domain.ParseCurrencyCode(code)
		if !ok {
			continue
		}
		rate, _ := rateDec.Float64()
		table.Rates[parsed] = rate
		if newest == nil || updatedAt.After(*newest) {
			ts := updatedAt
			newest = &ts
		}
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read rate cache", err)
	}

	if newest == nil {
		return nil, apperrors.NewNotFoundError("no cached rate table")
	}
	table.UpdatedAt = newest
	return &table, nil
}

// ListRateHistory returns up to limit observations for a currency fetched
// strictly before the given timestamp, newest first.
func (r *PgxRateRepository) ListRateHistory(ctx context.Context, currencyCode domain.CurrencyCode, limit int, before time.Time) ([]domain.RatePoint, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT point_id, currency_code, rate, fetched_at
		FROM fx_rate_history
		WHERE currency_code = $1 AND fetched_at < $2
		ORDER BY fetched_at DESC
		LIMIT $3;`,
		string(currencyCode), before, limit,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.RatePoint{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to list rate history", err)
	}
	defer rows.Close()

	var points []domain.RatePoint
	for rows.Next() {
		var point domain.RatePoint
		var code string
		var rateDec decimal.Decimal
		if err := rows.Scan(&point.PointID, &code, &rateDec, &point.FetchedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan rate history row", err)
		}
		point.CurrencyCode = domain.CurrencyCode(code)
		point.Rate, _ = rateDec.Float64()
		points = append(points, point)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read rate history", err)
	}
	if points == nil {
		points = []domain.RatePoint{}
	}
	return points, nil
}
