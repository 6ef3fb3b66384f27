package mapping

import (
	"github.com/SscSPs/profit_first_app/internal/core/domain"
	"github.com/SscSPs/profit_first_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account.
// The account must already carry an id.
func ToModelAccount(d domain.Account) models.Account {
	var description *string
	if d.Description != "" {
		desc := d.Description
		description = &desc
	}
	var position *int
	if d.IsCustom() && d.CustomPosition != nil {
		p := *d.CustomPosition
		position = &p
	}
	return models.Account{
		AccountID:         d.ID(),
		CompanyID:         d.CompanyID,
		AccountType:       string(d.Type),
		AccountGroup:      string(d.Group),
		Name:              d.Name,
		Description:       description,
		AllocationPercent: d.AllocationPercent,
		CustomPosition:    position,
		IsActive:          d.IsActive,
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	id := m.AccountID
	acc := domain.Account{
		AccountID:         &id,
		CompanyID:         m.CompanyID,
		Type:              domain.AccountType(m.AccountType),
		Group:             domain.AccountGroup(m.AccountGroup),
		Name:              m.Name,
		AllocationPercent: m.AllocationPercent,
		CustomPosition:    m.CustomPosition,
		IsActive:          m.IsActive,
	}
	if m.Description != nil {
		acc.Description = *m.Description
	}
	return acc
}

// ToDomainAccounts converts a slice of model Accounts
func ToDomainAccounts(ms []models.Account) []domain.Account {
	out := make([]domain.Account, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToDomainAccount(m))
	}
	return out
}
