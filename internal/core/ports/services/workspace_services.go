package services

import (
	"context"

	"github.com/SscSPs/profit_first_app/internal/core/domain"
)

// WorkspaceResolverSvc resolves the companies a user can see
type WorkspaceResolverSvc interface {
	// ResolveWorkspaces never fails: lookup problems are reported in the result's
	// Errors and the lists hold whatever could still be established. An empty
	// userID resolves demo workspaces only. expectedRole is an optional hint
	// from the sign in flow.
	ResolveWorkspaces(ctx context.Context, userID string, expectedRole *domain.PlatformRole) domain.WorkspaceResult
}

// WorkspaceAuthorizerSvc defines operations for company authorization
type WorkspaceAuthorizerSvc interface {
	// AuthorizeCompanyAction returns the workspace when userID may perform action
	// on companyID, apperrors.ErrNotFound when the company is not visible and
	// apperrors.ErrForbidden when it is visible but read only.
	AuthorizeCompanyAction(ctx context.Context, userID, companyID string, action domain.WorkspaceAction) (*domain.Workspace, error)
}

// WorkspaceSvcFacade combines all workspace service interfaces
type WorkspaceSvcFacade interface {
	WorkspaceResolverSvc
	WorkspaceAuthorizerSvc
}
