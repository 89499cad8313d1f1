package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/oclock/event_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		RefreshTokenRepo: newPgxRefreshTokenRepository(dbPool),
		EventRepo:        newPgxEventRepository(dbPool),
		LocationRepo:     newPgxLocationRepository(dbPool),
		SponsorRepo:      newPgxSponsorRepository(dbPool),
		Tx:               newPgxTxManager(dbPool),
	}
}
