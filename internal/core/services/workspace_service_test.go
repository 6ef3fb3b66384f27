package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/profit_first_app/internal/apperrors"
	"github.com/SscSPs/profit_first_app/internal/core/domain"
	portssvc "github.com/SscSPs/profit_first_app/internal/core/ports/services"
	"github.com/SscSPs/profit_first_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func rolePtr(r domain.PlatformRole) *domain.PlatformRole { return &r }

var (
	demoFirmID = "00000000-0000-0000-0000-00000000d001"
	clientFirm = "firm-1"

	demoA = domain.Company{CompanyID: "demo-a", Name: "Triumph Demo", IsDemo: true, FirmID: &demoFirmID}
	demoB = domain.Company{CompanyID: "demo-b", Name: "Acme Plumbing", IsDemo: true, FirmID: &demoFirmID}

	zeta  = domain.Company{CompanyID: "c-zeta", Name: "Zeta Coffee", FirmID: &clientFirm}
	alpha = domain.Company{CompanyID: "c-alpha", Name: "alpha Bakery", FirmID: &clientFirm}
)

type WorkspaceServiceTestSuite struct {
	suite.Suite
	mockRepo *MockWorkspaceRepository
	service  portssvc.WorkspaceSvcFacade
	ctx      context.Context
}

func (suite *WorkspaceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockWorkspaceRepository)
	suite.service = services.NewWorkspaceService(suite.mockRepo)
	suite.ctx = context.Background()
}

func (suite *WorkspaceServiceTestSuite) memberships(userID string, ms ...domain.CompanyMembership) {
	if ms == nil {
		ms = []domain.CompanyMembership{}
	}
	suite.mockRepo.On("ListCompanyMembershipsByUser", mock.Anything, userID).Return(ms, nil).Once()
}

func (suite *WorkspaceServiceTestSuite) firmMemberships(userID string, ms ...domain.FirmMembership) {
	if ms == nil {
		ms = []domain.FirmMembership{}
	}
	suite.mockRepo.On("ListFirmMembershipsByUser", mock.Anything, userID).Return(ms, nil).Once()
}

func (suite *WorkspaceServiceTestSuite) demos(companies ...domain.Company) {
	suite.mockRepo.On("ListDemoCompanies", mock.Anything).Return(companies, nil).Once()
}

func names(ws []domain.Workspace) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.Name)
	}
	return out
}

func (suite *WorkspaceServiceTestSuite) TestResolveWorkspaces_CompanyOwnerNeverSeesOtherDemos() {
	userID := "owner-1"
	suite.memberships(userID, domain.CompanyMembership{CompanyID: demoA.CompanyID, UserID: userID, AccessLevel: domain.RoleCompanyOwner})
	suite.mockRepo.On("ListCompaniesByIDs", mock.Anything, []string{demoA.CompanyID}).Return([]domain.Company{demoA}, nil).Once()

	result := suite.service.ResolveWorkspaces(suite.ctx, userID, nil)

	assert.Empty(suite.T(), result.Assigned)
	assert.Equal(suite.T(), []string{"Triumph Demo"}, names(result.Demos))
	assert.Equal(suite.T(), domain.RoleCompanyOwner, *result.Demos[0].AccessLevel)
	assert.Empty(suite.T(), result.Errors)
	_, found := result.Find(demoB.CompanyID)
	assert.False(suite.T(), found)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListDemoCompanies", mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListFirmMembershipsByUser", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WorkspaceServiceTestSuite) TestResolveWorkspaces_ExpectedCompanyOwnerWithoutMemberships() {
	userID := "owner-2"
	suite.memberships(userID)

	result := suite.service.ResolveWorkspaces(suite.ctx, userID, rolePtr(domain.RoleCompanyOwner))

	assert.Empty(suite.T(), result.Assigned)
	assert.Empty(suite.T(), result.Demos)
	assert.NotNil(suite.T(), result.Errors)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListDemoCompanies", mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WorkspaceServiceTestSuite) TestResolveWorkspaces_MembershipFailureStillReturnsDemos() {
	userID := "user-1"
	suite.mockRepo.On("ListCompanyMembershipsByUser", mock.Anything, userID).
		Return(nil, errors.New("connection reset")).Once()
	suite.firmMemberships(userID)
	suite.demos(demoA, demoB)

	var result domain.WorkspaceResult
	assert.NotPanics(suite.T(), func() {
		result = suite.service.ResolveWorkspaces(suite.ctx, userID, nil)
	})

	assert.Equal(suite.T(), []string{"Unable to load company memberships."}, result.Errors)
	assert.Equal(suite.T(), []string{"Acme Plumbing", "Triumph Demo"}, names(result.Demos))
	assert.Empty(suite.T(), result.Assigned)
	for _, ws := range result.Demos {
		assert.Nil(suite.T(), ws.AccessLevel)
		assert.Equal(suite.T(), domain.WorkspaceDemo, ws.Type)
	}
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WorkspaceServiceTestSuite) TestResolveWorkspaces_EveryLookupFails() {
	userID := "user-1"
	suite.mockRepo.On("ListCompanyMembershipsByUser", mock.Anything, userID).Return(nil, errors.New("down")).Once()
	suite.mockRepo.On("ListFirmMembershipsByUser", mock.Anything, userID).Return(nil, errors.New("down")).Once()
	suite.mockRepo.On("ListDemoCompanies", mock.Anything).Return(nil, errors.New("down")).Once()

	result := suite.service.ResolveWorkspaces(suite.ctx, userID, nil)

	assert.Empty(suite.T(), result.Assigned)
	assert.Empty(suite.T(), result.Demos)
	assert.Equal(suite.T(), []string{
		"Unable to load company memberships.",
		"Unable to load firm memberships.",
		"Unable to load demo workspaces.",
	}, result.Errors)
}

func (suite *WorkspaceServiceTestSuite) TestResolveWorkspaces_FirmMembershipSortedByName() {
	userID := "firm-owner"
	since := time.Date(2023, time.January, 12, 0, 0, 0, 0, time.UTC)
	zetaSince := zeta
	zetaSince.ActiveSince = &since

	suite.memberships(userID)
	suite.firmMemberships(userID, domain.FirmMembership{FirmID: clientFirm, UserID: userID, Role: domain.RoleFirmOwner})
	suite.mockRepo.On("ListCompaniesByFirmIDs", mock.Anything, []string{clientFirm}).
		Return([]domain.Company{zetaSince, alpha}, nil).Once()
	suite.demos(demoB)

	result := suite.service.ResolveWorkspaces(suite.ctx, userID, nil)

	assert.Equal(suite.T(), []string{"alpha Bakery", "Zeta Coffee"}, names(result.Assigned))
	assert.Equal(suite.T(), domain.RoleFirmOwner, *result.Assigned[0].AccessLevel)
	assert.Equal(suite.T(), "—", result.Assigned[0].ActiveSince)
	assert.Equal(suite.T(), "January 2023", result.Assigned[1].ActiveSince)
	assert.Equal(suite.T(), domain.WorkspaceClient, result.Assigned[1].Type)
	assert.Equal(suite.T(), []string{"Acme Plumbing"}, names(result.Demos))
	assert.Empty(suite.T(), result.Errors)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WorkspaceServiceTestSuite) TestResolveWorkspaces_DirectMembershipWinsOverFirmRole() {
	userID := "employee-1"
	suite.memberships(userID,
		domain.CompanyMembership{CompanyID: zeta.CompanyID, UserID: userID, AccessLevel: domain.RoleFirmEmployee},
		domain.CompanyMembership{CompanyID: demoA.CompanyID, UserID: userID, AccessLevel: domain.RoleCompanyOwner},
	)
	suite.mockRepo.On("ListCompaniesByIDs", mock.Anything, []string{zeta.CompanyID, demoA.CompanyID}).
		Return([]domain.Company{zeta, demoA}, nil).Once()
	suite.firmMemberships(userID, domain.FirmMembership{FirmID: clientFirm, UserID: userID, Role: domain.RoleFirmOwner})
	suite.mockRepo.On("ListCompaniesByFirmIDs", mock.Anything, []string{clientFirm}).
		Return([]domain.Company{zeta, alpha}, nil).Once()
	suite.demos(demoA, demoB)

	result := suite.service.ResolveWorkspaces(suite.ctx, userID, nil)

	assert.Equal(suite.T(), []string{"alpha Bakery", "Zeta Coffee"}, names(result.Assigned))
	assert.Equal(suite.T(), domain.RoleFirmOwner, *result.Assigned[0].AccessLevel)
	assert.Equal(suite.T(), domain.RoleFirmEmployee, *result.Assigned[1].AccessLevel)

	assert.Equal(suite.T(), []string{"Acme Plumbing", "Triumph Demo"}, names(result.Demos))
	assert.Nil(suite.T(), result.Demos[0].AccessLevel)
	assert.Equal(suite.T(), domain.RoleCompanyOwner, *result.Demos[1].AccessLevel)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WorkspaceServiceTestSuite) TestResolveWorkspaces_AnonymousSeesDemosOnly() {
	suite.demos(demoA, demoB)

	result := suite.service.ResolveWorkspaces(suite.ctx, "", rolePtr(domain.RoleCompanyOwner))

	assert.Empty(suite.T(), result.Assigned)
	assert.Len(suite.T(), result.Demos, 2)
	assert.Equal(suite.T(), []string{}, result.Errors)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListCompanyMembershipsByUser", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WorkspaceServiceTestSuite) TestAuthorizeCompanyAction() {
	userID := "user-9"

	testCases := []struct {
		name        string
		companyID   string
		action      domain.WorkspaceAction
		expectedErr error
	}{
		{name: "view demo", companyID: demoB.CompanyID, action: domain.ActionView},
		{name: "edit demo without membership", companyID: demoB.CompanyID, action: domain.ActionEdit},
		{name: "view owned company", companyID: zeta.CompanyID, action: domain.ActionView},
		{name: "edit owned company is read only", companyID: zeta.CompanyID, action: domain.ActionEdit, expectedErr: apperrors.ErrForbidden},
		{name: "edit as firm employee", companyID: alpha.CompanyID, action: domain.ActionEdit},
		{name: "unknown company", companyID: "c-missing", action: domain.ActionView, expectedErr: apperrors.ErrNotFound},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			suite.memberships(userID,
				domain.CompanyMembership{CompanyID: zeta.CompanyID, UserID: userID, AccessLevel: domain.RoleCompanyOwner},
				domain.CompanyMembership{CompanyID: alpha.CompanyID, UserID: userID, AccessLevel: domain.RoleFirmEmployee},
			)
			suite.mockRepo.On("ListCompaniesByIDs", mock.Anything, []string{zeta.CompanyID, alpha.CompanyID}).
				Return([]domain.Company{zeta, alpha}, nil).Once()
			suite.firmMemberships(userID)
			suite.demos(demoB)

			ws, err := suite.service.AuthorizeCompanyAction(suite.ctx, userID, tc.companyID, tc.action)

			if tc.expectedErr != nil {
				assert.ErrorIs(suite.T(), err, tc.expectedErr)
				assert.Nil(suite.T(), ws)
				return
			}
			assert.NoError(suite.T(), err)
			assert.Equal(suite.T(), tc.companyID, ws.ID)
		})
	}
}

func (suite *WorkspaceServiceTestSuite) TestAuthorizeCompanyAction_LookupFailure() {
	userID := "user-3"
	suite.mockRepo.On("ListCompanyMembershipsByUser", mock.Anything, userID).Return(nil, errors.New("timeout")).Once()
	suite.firmMemberships(userID)
	suite.demos()

	ws, err := suite.service.AuthorizeCompanyAction(suite.ctx, userID, zeta.CompanyID, domain.ActionView)

	assert.Nil(suite.T(), ws)
	assert.ErrorIs(suite.T(), err, apperrors.ErrLookup)
	assert.Equal(suite.T(), "Unable to load company memberships.", apperrors.PublicMessage(err))
}

func TestWorkspaceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkspaceServiceTestSuite))
}
