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

type PgxCadenceRepository struct {
	BaseRepository
}

// newPgxCadenceRepository creates a new repository for allocation cadence settings.
func newPgxCadenceRepository(pool *pgxpool.Pool) portsrepo.CadenceRepositoryFacade {
	return &PgxCadenceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxCadenceRepository implements portsrepo.CadenceRepositoryFacade
var _ portsrepo.CadenceRepositoryFacade = (*PgxCadenceRepository)(nil)

const cadenceColumns = `
	company_id, cadence, weekly_day_of_week, twice_monthly_first_day, twice_monthly_second_day,
	monthly_day, next_allocation_date, created_at, updated_at
`

func (r *PgxCadenceRepository) FindCadenceByCompanyID(ctx context.Context, companyID string) (*domain.CadenceSettings, error) {
	query := `SELECT ` + cadenceColumns + ` FROM allocation_cadence_settings WHERE company_id = $1;`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query cadence settings", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.CadenceSettings])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no cadence configured for company " + companyID)
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to read cadence settings", err)
	}
	settings := mapping.ToDomainCadence(row)
	return &settings, nil
}

// UpsertCadence stores the single settings row of a company, replacing every
// parameter column so stale values of a previous cadence are cleared.
func (r *PgxCadenceRepository) UpsertCadence(ctx context.Context, settings domain.CadenceSettings) (*domain.CadenceSettings, error) {
	m, err := mapping.ToModelCadence(settings)
	if err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}

	query := `
		INSERT INTO allocation_cadence_settings (
			company_id, cadence, weekly_day_of_week, twice_monthly_first_day, twice_monthly_second_day,
			monthly_day, next_allocation_date, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
		ON CONFLICT (company_id) DO UPDATE SET
			cadence = EXCLUDED.cadence,
			weekly_day_of_week = EXCLUDED.weekly_day_of_week,
			twice_monthly_first_day = EXCLUDED.twice_monthly_first_day,
			twice_monthly_second_day = EXCLUDED.twice_monthly_second_day,
			monthly_day = EXCLUDED.monthly_day,
			next_allocation_date = EXCLUDED.next_allocation_date,
			updated_at = now()
		RETURNING ` + cadenceColumns + `;`

	rows, err := r.Pool.Query(ctx, query,
		m.CompanyID,
		m.Cadence,
		m.WeeklyDayOfWeek,
		m.TwiceMonthlyFirstDay,
		m.TwiceMonthlySecondDay,
		m.MonthlyDay,
		m.NextAllocationDate,
	)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to save cadence settings", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.CadenceSettings])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to save cadence settings", err)
	}
	saved := mapping.ToDomainCadence(row)
	return &saved, nil
}
