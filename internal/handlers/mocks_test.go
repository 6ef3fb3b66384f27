package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/profit_first_app/internal/core/domain"
	portssvc "github.com/SscSPs/profit_first_app/internal/core/ports/services"
	"github.com/SscSPs/profit_first_app/internal/utils/allocation"
	"github.com/stretchr/testify/mock"
)

// --- Mock Services ---

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) ListAccounts(ctx context.Context, companyID string, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, companyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) ValidateAllocations(ctx context.Context, group domain.AccountGroup, accounts []domain.Account) (allocation.Result, error) {
	args := m.Called(ctx, group, accounts)
	return args.Get(0).(allocation.Result), args.Error(1)
}

func (m *MockAccountService) SaveAllocations(ctx context.Context, companyID string, group domain.AccountGroup, changes domain.AllocationChangeSet, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, companyID, group, changes, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) NextCustomAccount(ctx context.Context, companyID string, group domain.AccountGroup, userID string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, group, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) InitializeCompanyAccounts(ctx context.Context, companyID string, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, companyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

type MockCadenceService struct {
	mock.Mock
}

func (m *MockCadenceService) GetCadence(ctx context.Context, companyID string, userID string) (*domain.CadenceSettings, error) {
	args := m.Called(ctx, companyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CadenceSettings), args.Error(1)
}

func (m *MockCadenceService) UpdateCadence(ctx context.Context, companyID string, input domain.CadenceInput, userID string) (*domain.CadenceSettings, error) {
	args := m.Called(ctx, companyID, input, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CadenceSettings), args.Error(1)
}

func (m *MockCadenceService) AdvanceNextAllocationDate(ctx context.Context, companyID string, now time.Time, userID string) (*domain.CadenceSettings, error) {
	args := m.Called(ctx, companyID, now, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CadenceSettings), args.Error(1)
}

var _ portssvc.CadenceSvcFacade = (*MockCadenceService)(nil)

type MockWorkspaceService struct {
	mock.Mock
}

func (m *MockWorkspaceService) ResolveWorkspaces(ctx context.Context, userID string, expectedRole *domain.PlatformRole) domain.WorkspaceResult {
	args := m.Called(ctx, userID, expectedRole)
	return args.Get(0).(domain.WorkspaceResult)
}

func (m *MockWorkspaceService) AuthorizeCompanyAction(ctx context.Context, userID, companyID string, action domain.WorkspaceAction) (*domain.Workspace, error) {
	args := m.Called(ctx, userID, companyID, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}

var _ portssvc.WorkspaceSvcFacade = (*MockWorkspaceService)(nil)
