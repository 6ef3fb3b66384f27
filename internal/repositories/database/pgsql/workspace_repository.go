package pgsql

import (
	"context"
	"errors"
	"net/http"

	"github.com/SscSPs/profit_first_app/internal/apperrors"
	"github.com/SscSPs/profit_first_app/internal/core/domain"
	portsrepo "github.com/SscSPs/profit_first_app/internal/core/ports/repositories"
	"github.com/SscSPs/profit_first_app/internal/models"
	"github.com/SscSPs/profit_first_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxWorkspaceRepository struct {
	BaseRepository
}

// newPgxWorkspaceRepository creates a new repository for companies and memberships.
func newPgxWorkspaceRepository(pool *pgxpool.Pool) portsrepo.WorkspaceRepositoryFacade {
	return &PgxWorkspaceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxWorkspaceRepository implements portsrepo.WorkspaceRepositoryFacade
var _ portsrepo.WorkspaceRepositoryFacade = (*PgxWorkspaceRepository)(nil)

const companySelectQuery = `
SELECT c.company_id, c.firm_id, c.name, c.description, c.is_demo, c.active_since
FROM companies c
`

// getCompanies runs the company select with the given filter.
func (r *PgxWorkspaceRepository) getCompanies(ctx context.Context, filterQuery string, args ...any) ([]domain.Company, error) {
	rows, err := r.Pool.Query(ctx, companySelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query companies", err)
	}
	companies, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Company])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect company rows", err)
	}
	return mapping.ToDomainCompanies(companies), nil
}

func (r *PgxWorkspaceRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	rows, err := r.Pool.Query(ctx, companySelectQuery+`WHERE c.company_id = $1;`, companyID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query company", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Company])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("company " + companyID + " not found")
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to read company", err)
	}
	company := mapping.ToDomainCompany(row)
	return &company, nil
}

func (r *PgxWorkspaceRepository) ListCompaniesByIDs(ctx context.Context, companyIDs []string) ([]domain.Company, error) {
	if len(companyIDs) == 0 {
		return []domain.Company{}, nil
	}
	return r.getCompanies(ctx, `WHERE c.company_id = ANY($1) ORDER BY c.name;`, companyIDs)
}

func (r *PgxWorkspaceRepository) ListCompaniesByFirmIDs(ctx context.Context, firmIDs []string) ([]domain.Company, error) {
	if len(firmIDs) == 0 {
		return []domain.Company{}, nil
	}
	return r.getCompanies(ctx, `WHERE c.firm_id = ANY($1) ORDER BY c.name;`, firmIDs)
}

func (r *PgxWorkspaceRepository) ListDemoCompanies(ctx context.Context) ([]domain.Company, error) {
	return r.getCompanies(ctx, `WHERE c.is_demo ORDER BY c.name;`)
}

func (r *PgxWorkspaceRepository) ListCompanyMembershipsByUser(ctx context.Context, userID string) ([]domain.CompanyMembership, error) {
	query := `
		SELECT company_id, user_id, access_level, invited_at, accepted_at
		FROM company_members
		WHERE user_id = $1
		ORDER BY invited_at;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query company memberships", err)
	}
	members, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.CompanyMember])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect company membership rows", err)
	}
	out := make([]domain.CompanyMembership, 0, len(members))
	for _, m := range members {
		out = append(out, mapping.ToDomainCompanyMembership(m))
	}
	return out, nil
}

func (r *PgxWorkspaceRepository) ListFirmMembershipsByUser(ctx context.Context, userID string) ([]domain.FirmMembership, error) {
	query := `
		SELECT firm_id, user_id, role, invited_at, accepted_at
		FROM firm_members
		WHERE user_id = $1
		ORDER BY invited_at;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query firm memberships", err)
	}
	members, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.FirmMember])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect firm membership rows", err)
	}
	out := make([]domain.FirmMembership, 0, len(members))
	for _, m := range members {
		out = append(out, mapping.ToDomainFirmMembership(m))
	}
	return out, nil
}
