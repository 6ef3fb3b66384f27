package repositories

import (
	"context"

	"github.com/SscSPs/profit_first_app/internal/core/domain"
)

// MembershipReader defines lookups of a user's direct and firm level access
type MembershipReader interface {
	// ListCompanyMembershipsByUser returns the direct company memberships of a user.
	ListCompanyMembershipsByUser(ctx context.Context, userID string) ([]domain.CompanyMembership, error)

	// ListFirmMembershipsByUser returns the firm memberships of a user.
	ListFirmMembershipsByUser(ctx context.Context, userID string) ([]domain.FirmMembership, error)
}

// CompanyReader defines read operations for company data
type CompanyReader interface {
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
	ListCompaniesByIDs(ctx context.Context, companyIDs []string) ([]domain.Company, error)
	ListCompaniesByFirmIDs(ctx context.Context, firmIDs []string) ([]domain.Company, error)
	ListDemoCompanies(ctx context.Context) ([]domain.Company, error)
}

// WorkspaceRepositoryFacade combines the reads needed to resolve workspaces
type WorkspaceRepositoryFacade interface {
	MembershipReader
	CompanyReader
}
