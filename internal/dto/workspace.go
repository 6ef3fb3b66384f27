package dto

import "github.com/SscSPs/profit_first_app/internal/core/domain"

// ListWorkspacesParams carries the optional sign in hint.
type ListWorkspacesParams struct {
	ExpectedRole *string `form:"expectedRole" binding:"omitempty,oneof=firm_owner firm_employee company_owner"`
}

// Role returns the parsed hint, nil when absent.
func (p ListWorkspacesParams) Role() *domain.PlatformRole {
	if p.ExpectedRole == nil || *p.ExpectedRole == "" {
		return nil
	}
	role := domain.PlatformRole(*p.ExpectedRole)
	return &role
}

// WorkspaceResponse is one company as the dashboard lists it.
type WorkspaceResponse struct {
	domain.Workspace
	CanEdit bool `json:"canEdit"`
}

// ListWorkspacesResponse splits workspaces into assigned and demo lists.
type ListWorkspacesResponse struct {
	Assigned []WorkspaceResponse `json:"assigned"`
	Demos    []WorkspaceResponse `json:"demos"`
	Errors   []string            `json:"errors"`
}

func toWorkspaceResponses(in []domain.Workspace) []WorkspaceResponse {
	out := make([]WorkspaceResponse, 0, len(in))
	for _, w := range in {
		canEdit := w.AccessLevel == nil && w.IsDemo()
		if w.AccessLevel != nil {
			canEdit = w.AccessLevel.CanEditAllocations()
		}
		out = append(out, WorkspaceResponse{Workspace: w, CanEdit: canEdit})
	}
	return out
}

// ToListWorkspacesResponse converts a resolver result. Lists are never null.
func ToListWorkspacesResponse(res domain.WorkspaceResult) ListWorkspacesResponse {
	errs := res.Errors
	if errs == nil {
		errs = []string{}
	}
	return ListWorkspacesResponse{
		Assigned: toWorkspaceResponses(res.Assigned),
		Demos:    toWorkspaceResponses(res.Demos),
		Errors:   errs,
	}
}

// RolesResponse lists the role catalog.
type RolesResponse struct {
	Roles []domain.RoleDefinition `json:"roles"`
}
