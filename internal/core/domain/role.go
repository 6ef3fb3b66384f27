package domain

import (
	"fmt"
	"strings"
)

// PlatformRole is the access level a user holds on a firm or company.
type PlatformRole string

const (
	RoleFirmOwner    PlatformRole = "firm_owner"
	RoleFirmEmployee PlatformRole = "firm_employee"
	RoleCompanyOwner PlatformRole = "company_owner"
)

// IsValid reports whether r is a known role.
func (r PlatformRole) IsValid() bool {
	switch r {
	case RoleFirmOwner, RoleFirmEmployee, RoleCompanyOwner:
		return true
	}
	return false
}

// ParsePlatformRole converts a raw string into a PlatformRole.
func ParsePlatformRole(raw string) (PlatformRole, error) {
	r := PlatformRole(strings.TrimSpace(raw))
	if !r.IsValid() {
		return "", fmt.Errorf("unknown platform role %q", raw)
	}
	return r, nil
}

// RoleScope says whether a role is granted on a firm or on a single company.
type RoleScope string

const (
	ScopeFirm    RoleScope = "firm"
	ScopeCompany RoleScope = "company"
)

// RoleDefinition is the descriptive catalog entry for a role.
type RoleDefinition struct {
	ID           PlatformRole `json:"id"`
	Title        string       `json:"title"`
	Summary      string       `json:"summary"`
	Badge        string       `json:"badge"`
	Permissions  []string     `json:"permissions"`
	DefaultScope RoleScope    `json:"defaultScope"`
}

// Definition returns the catalog entry for r.
func (r PlatformRole) Definition() RoleDefinition {
	switch r {
	case RoleFirmOwner:
		return RoleDefinition{
			ID:      r,
			Title:   "Firm Owner",
			Summary: "Leads the accounting or bookkeeping practice and oversees every client workspace connected to their firm.",
			Badge:   "Full access",
			Permissions: []string{
				"Create and manage all company profiles within the firm",
				"Grant or revoke access for firm employees",
				"Invite company owners to review their forecasts",
			},
			DefaultScope: ScopeFirm,
		}
	case RoleFirmEmployee:
		return RoleDefinition{
			ID:      r,
			Title:   "Firm Employee",
			Summary: "Collaborates on client forecasts with permissions tailored to the companies they support.",
			Badge:   "Scoped access",
			Permissions: []string{
				"Assigned to specific companies by the firm owner",
				"Review and update cash flow forecasts for their clients",
				"Work alongside firm owners with scoped access",
			},
			DefaultScope: ScopeCompany,
		}
	case RoleCompanyOwner:
		return RoleDefinition{
			ID:      r,
			Title:   "Company Owner",
			Summary: "Business stakeholder invited to monitor the health of their Profit First forecast without altering firm data.",
			Badge:   "Read only",
			Permissions: []string{
				"Read-only insight into their company forecast",
				"Stay informed on projected cash flow and allocations",
				"Collaborate with their firm without risking edits",
			},
			DefaultScope: ScopeCompany,
		}
	}
	return RoleDefinition{ID: r, Title: string(r)}
}

// RoleDefinitions lists the catalog for every role.
func RoleDefinitions() []RoleDefinition {
	return []RoleDefinition{
		RoleFirmOwner.Definition(),
		RoleFirmEmployee.Definition(),
		RoleCompanyOwner.Definition(),
	}
}

// CanEditAllocations reports whether the role may change accounts or cadence.
// Company owners get a read-only view.
func (r PlatformRole) CanEditAllocations() bool {
	switch r {
	case RoleFirmOwner, RoleFirmEmployee:
		return true
	case RoleCompanyOwner:
		return false
	}
	return false
}
