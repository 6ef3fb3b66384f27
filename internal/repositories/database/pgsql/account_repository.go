package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/profit_first_app/internal/apperrors"
	"github.com/SscSPs/profit_first_app/internal/core/domain"
	portsrepo "github.com/SscSPs/profit_first_app/internal/core/ports/repositories"
	"github.com/SscSPs/profit_first_app/internal/models"
	"github.com/SscSPs/profit_first_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for Profit First accounts.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryWithTx {
	return &PgxAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryWithTx
var _ portsrepo.AccountRepositoryWithTx = (*PgxAccountRepository)(nil)

const accountColumns = `
	a.account_id, a.company_id, a.account_type, a.account_group, a.name, a.description,
	a.allocation_percent, a.custom_position, a.is_active, a.created_at, a.updated_at
`

func (r *PgxAccountRepository) ListAccountsByCompany(ctx context.Context, companyID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + `
		FROM profit_first_accounts a
		WHERE a.company_id = $1
		ORDER BY a.account_group, a.custom_position NULLS FIRST, a.created_at;
	`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query accounts", err)
	}
	accounts, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect account rows", err)
	}
	return mapping.ToDomainAccounts(accounts), nil
}

func (r *PgxAccountRepository) UpsertAccounts(ctx context.Context, accounts []domain.Account) ([]domain.Account, error) {
	if len(accounts) == 0 {
		return []domain.Account{}, nil
	}
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	saved, err := r.UpsertAccountsInTx(ctx, tx, accounts)
	if err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *PgxAccountRepository) UpsertAccountsInTx(ctx context.Context, tx pgx.Tx, accounts []domain.Account) ([]domain.Account, error) {
	return upsertAccounts(ctx, tx, accounts)
}

func upsertAccounts(ctx context.Context, q querier, accounts []domain.Account) ([]domain.Account, error) {
	query := `
		INSERT INTO profit_first_accounts AS a (
			account_id, company_id, account_type, account_group, name, description,
			allocation_percent, custom_position, is_active, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
		ON CONFLICT (account_id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			allocation_percent = EXCLUDED.allocation_percent,
			custom_position = EXCLUDED.custom_position,
			is_active = EXCLUDED.is_active,
			updated_at = now()
		WHERE a.company_id = EXCLUDED.company_id
		RETURNING ` + accountColumns + `;`

	saved := make([]domain.Account, 0, len(accounts))
	for _, acc := range accounts {
		if !acc.IsPersisted() {
			return nil, apperrors.NewValidationFailedError("account id must be assigned before saving")
		}
		m := mapping.ToModelAccount(acc)
		rows, err := q.Query(ctx, query,
			m.AccountID,
			m.CompanyID,
			m.AccountType,
			m.AccountGroup,
			m.Name,
			m.Description,
			m.AllocationPercent,
			m.CustomPosition,
			m.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to upsert account %s: %w", m.AccountID, err)
		}
		row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Account])
		if err != nil {
			if isUniqueViolation(err) {
				return nil, apperrors.NewConflictError(
					fmt.Sprintf("company %s already has a %s account", m.CompanyID, m.AccountType))
			}
			if errors.Is(err, pgx.ErrNoRows) {
				// the id exists but belongs to another company
				return nil, apperrors.NewNotFoundError("account " + m.AccountID + " not found")
			}
			return nil, fmt.Errorf("failed to upsert account %s: %w", m.AccountID, err)
		}
		saved = append(saved, mapping.ToDomainAccount(row))
	}
	return saved, nil
}

func (r *PgxAccountRepository) DeactivateAccounts(ctx context.Context, companyID string, accountIDs []string) error {
	return deactivateAccounts(ctx, r.Pool, companyID, accountIDs)
}

func (r *PgxAccountRepository) DeactivateAccountsInTx(ctx context.Context, tx pgx.Tx, companyID string, accountIDs []string) error {
	return deactivateAccounts(ctx, tx, companyID, accountIDs)
}

func deactivateAccounts(ctx context.Context, q querier, companyID string, accountIDs []string) error {
	if len(accountIDs) == 0 {
		return nil
	}
	query := `
		UPDATE profit_first_accounts
		SET is_active = FALSE, allocation_percent = 0, updated_at = now()
		WHERE company_id = $1 AND account_id = ANY($2);
	`
	cmdTag, err := q.Exec(ctx, query, companyID, accountIDs)
	if err != nil {
		return fmt.Errorf("failed to deactivate accounts for company %s: %w", companyID, err)
	}
	if cmdTag.RowsAffected() != int64(len(accountIDs)) {
		return apperrors.NewNotFoundError(
			fmt.Sprintf("expected to deactivate %d accounts, found %d", len(accountIDs), cmdTag.RowsAffected()))
	}
	return nil
}

// SaveAllocations deactivates removed accounts and upserts the rest in one transaction.
func (r *PgxAccountRepository) SaveAllocations(ctx context.Context, companyID string, upserts []domain.Account, deactivateIDs []string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.DeactivateAccountsInTx(ctx, tx, companyID, deactivateIDs); err != nil {
		return err
	}
	if _, err := r.UpsertAccountsInTx(ctx, tx, upserts); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}
