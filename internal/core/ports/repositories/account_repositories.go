package repositories

import (
	"context"

	"github.com/SscSPs/profit_first_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// ListAccountsByCompany returns every account of a company, inactive ones included,
	// ordered by group and custom position.
	ListAccountsByCompany(ctx context.Context, companyID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// UpsertAccounts inserts new accounts and updates existing ones, returning
	// them with their ids populated.
	UpsertAccounts(ctx context.Context, accounts []domain.Account) ([]domain.Account, error)

	// DeactivateAccounts retires accounts of a company: is_active=false and a zero percent.
	DeactivateAccounts(ctx context.Context, companyID string, accountIDs []string) error

	// SaveAllocations applies upserts and deactivations for one company atomically.
	SaveAllocations(ctx context.Context, companyID string, upserts []domain.Account, deactivateIDs []string) error
}

// AccountTransactionSupport defines operations that run inside a caller owned transaction
type AccountTransactionSupport interface {
	UpsertAccountsInTx(ctx context.Context, tx pgx.Tx, accounts []domain.Account) ([]domain.Account, error)
	DeactivateAccountsInTx(ctx context.Context, tx pgx.Tx, companyID string, accountIDs []string) error
}

// AccountRepositoryFacade combines the account operations services rely on
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}

// AccountRepositoryWithTx extends AccountRepositoryFacade with transaction capabilities
type AccountRepositoryWithTx interface {
	AccountRepositoryFacade
	AccountTransactionSupport
	TransactionManager
}
