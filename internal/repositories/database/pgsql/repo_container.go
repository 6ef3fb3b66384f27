package pgsql

import (
	portsrepo "github.com/SscSPs/profit_first_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:   newPgxAccountRepository(dbPool),
		CadenceRepo:   newPgxCadenceRepository(dbPool),
		WorkspaceRepo: newPgxWorkspaceRepository(dbPool),
	}
}
