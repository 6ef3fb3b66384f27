package services

import (
	"context"

	"github.com/SscSPs/profit_first_app/internal/core/domain"
	"github.com/SscSPs/profit_first_app/internal/utils/allocation"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// ListAccounts returns the active accounts of a company in display order.
	ListAccounts(ctx context.Context, companyID string, userID string) ([]domain.Account, error)
}

// AllocationValidatorSvc checks proposed account sets without saving them
type AllocationValidatorSvc interface {
	ValidateAllocations(ctx context.Context, group domain.AccountGroup, accounts []domain.Account) (allocation.Result, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// SaveAllocations validates and persists one group's accounts. Nothing is
	// written when any rule fails.
	SaveAllocations(ctx context.Context, companyID string, group domain.AccountGroup, changes domain.AllocationChangeSet, userID string) ([]domain.Account, error)

	// NextCustomAccount builds, without saving, the custom account added next in group.
	NextCustomAccount(ctx context.Context, companyID string, group domain.AccountGroup, userID string) (*domain.Account, error)

	// InitializeCompanyAccounts creates any missing required blueprint accounts.
	InitializeCompanyAccounts(ctx context.Context, companyID string, userID string) ([]domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AllocationValidatorSvc
	AccountWriterSvc
}
