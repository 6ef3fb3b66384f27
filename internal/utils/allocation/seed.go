package allocation

import (
	"github.com/SscSPs/profit_first_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// starterPercents is the split a new company starts with. The main group sums to 100.
var starterPercents = map[domain.AccountType]decimal.Decimal{
	domain.AccountTypeProfit:            decimal.NewFromInt(5),
	domain.AccountTypeOwnersPay:         decimal.NewFromInt(50),
	domain.AccountTypeTax:               decimal.NewFromInt(15),
	domain.AccountTypeOperatingExpenses: decimal.NewFromInt(30),
}

// MissingFixedAccounts returns the required (non-optional) blueprint accounts
// that companyID does not have yet, ready to be inserted. Existing accounts of
// a type, active or not, count as present.
func MissingFixedAccounts(companyID string, existing []domain.Account) []domain.Account {
	have := make(map[domain.AccountType]bool, len(existing))
	for _, acc := range existing {
		have[acc.Type] = true
	}

	var out []domain.Account
	for _, tpl := range domain.Blueprint() {
		if tpl.Optional || have[tpl.Type] {
			continue
		}
		pct, ok := starterPercents[tpl.Type]
		if !ok {
			pct = decimal.Zero
		}
		out = append(out, domain.Account{
			CompanyID:         companyID,
			Type:              tpl.Type,
			Group:             tpl.Group,
			Name:              tpl.Label,
			Description:       tpl.Description,
			AllocationPercent: pct,
			IsActive:          true,
		})
	}
	return out
}
