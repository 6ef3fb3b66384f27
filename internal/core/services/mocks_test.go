package services_test

import (
	"context"

	"github.com/SscSPs/profit_first_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) ListAccountsByCompany(ctx context.Context, companyID string) ([]domain.Account, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpsertAccounts(ctx context.Context, accounts []domain.Account) ([]domain.Account, error) {
	args := m.Called(ctx, accounts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) DeactivateAccounts(ctx context.Context, companyID string, accountIDs []string) error {
	args := m.Called(ctx, companyID, accountIDs)
	return args.Error(0)
}

func (m *MockAccountRepository) SaveAllocations(ctx context.Context, companyID string, upserts []domain.Account, deactivateIDs []string) error {
	args := m.Called(ctx, companyID, upserts, deactivateIDs)
	return args.Error(0)
}

// MockCadenceRepository is a mock type for the CadenceRepositoryFacade interface
type MockCadenceRepository struct {
	mock.Mock
}

func (m *MockCadenceRepository) FindCadenceByCompanyID(ctx context.Context, companyID string) (*domain.CadenceSettings, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CadenceSettings), args.Error(1)
}

func (m *MockCadenceRepository) UpsertCadence(ctx context.Context, settings domain.CadenceSettings) (*domain.CadenceSettings, error) {
	args := m.Called(ctx, settings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CadenceSettings), args.Error(1)
}

// MockWorkspaceRepository is a mock type for the WorkspaceRepositoryFacade interface
type MockWorkspaceRepository struct {
	mock.Mock
}

func (m *MockWorkspaceRepository) ListCompanyMembershipsByUser(ctx context.Context, userID string) ([]domain.CompanyMembership, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyMembership), args.Error(1)
}

func (m *MockWorkspaceRepository) ListFirmMembershipsByUser(ctx context.Context, userID string) ([]domain.FirmMembership, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FirmMembership), args.Error(1)
}

func (m *MockWorkspaceRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockWorkspaceRepository) ListCompaniesByIDs(ctx context.Context, companyIDs []string) ([]domain.Company, error) {
	args := m.Called(ctx, companyIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockWorkspaceRepository) ListCompaniesByFirmIDs(ctx context.Context, firmIDs []string) ([]domain.Company, error) {
	args := m.Called(ctx, firmIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockWorkspaceRepository) ListDemoCompanies(ctx context.Context) ([]domain.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

// MockAuthorizer is a mock type for the WorkspaceAuthorizerSvc interface
type MockAuthorizer struct {
	mock.Mock
}

func (m *MockAuthorizer) AuthorizeCompanyAction(ctx context.Context, userID, companyID string, action domain.WorkspaceAction) (*domain.Workspace, error) {
	args := m.Called(ctx, userID, companyID, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}
