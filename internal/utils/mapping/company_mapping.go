package mapping

import (
	"github.com/SscSPs/profit_first_app/internal/core/domain"
	"github.com/SscSPs/profit_first_app/internal/models"
)

// ToDomainCompany converts a model Company to a domain Company
func ToDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		CompanyID:   m.CompanyID,
		FirmID:      m.FirmID,
		Name:        m.Name,
		Description: m.Description,
		IsDemo:      m.IsDemo,
		ActiveSince: m.ActiveSince,
	}
}

// ToDomainCompanies converts a slice of model Companies
func ToDomainCompanies(ms []models.Company) []domain.Company {
	out := make([]domain.Company, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToDomainCompany(m))
	}
	return out
}

// ToDomainCompanyMembership converts a company_members row. Unknown access
// levels are kept verbatim; the resolver treats them as read only.
func ToDomainCompanyMembership(m models.CompanyMember) domain.CompanyMembership {
	return domain.CompanyMembership{
		CompanyID:   m.CompanyID,
		UserID:      m.UserID,
		AccessLevel: domain.PlatformRole(m.AccessLevel),
		InvitedAt:   m.InvitedAt,
		AcceptedAt:  m.AcceptedAt,
	}
}

// ToDomainFirmMembership converts a firm_members row
func ToDomainFirmMembership(m models.FirmMember) domain.FirmMembership {
	return domain.FirmMembership{
		FirmID:     m.FirmID,
		UserID:     m.UserID,
		Role:       domain.PlatformRole(m.Role),
		InvitedAt:  m.InvitedAt,
		AcceptedAt: m.AcceptedAt,
	}
}
