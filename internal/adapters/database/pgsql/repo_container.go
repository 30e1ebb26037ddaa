package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/casavera/fx_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository against one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) repositories.RepositoryProvider {
	return repositories.RepositoryProvider{
		RateRepo:       NewPgxRateRepository(pool),
		PreferenceRepo: NewPgxPreferenceRepository(pool),
	}
}

var (
	_ repositories.RateRepositoryFacade       = (*PgxRateRepository)(nil)
	_ repositories.PreferenceRepositoryFacade = (*PgxPreferenceRepository)(nil)
	_ repositories.TransactionManager         = (*BaseRepository)(nil)
)
