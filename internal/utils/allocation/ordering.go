package allocation

import (
	"cmp"
	"slices"
	"strings"

	"github.com/SscSPs/profit_first_app/internal/core/domain"
)

var groupRank = map[domain.AccountGroup]int{
	domain.GroupIncome:     0,
	domain.GroupDirectCost: 1,
	domain.GroupMain:       2,
}

var typeRank = map[domain.AccountType]int{
	domain.AccountTypeIncome:            0,
	domain.AccountTypeMaterials:         1,
	domain.AccountTypePayroll:           2,
	domain.AccountTypeProfit:            3,
	domain.AccountTypeOwnersPay:         4,
	domain.AccountTypeTax:               5,
	domain.AccountTypeOperatingExpenses: 6,
	domain.AccountTypeCustom:            7,
}

// SortForDisplay orders accounts the way the dashboard lists them: income,
// then direct costs, then main. Fixed accounts come in blueprint order and
// custom accounts follow by position, then name. The input is not modified.
func SortForDisplay(accounts []domain.Account) []domain.Account {
	out := slices.Clone(accounts)
	slices.SortStableFunc(out, compareForDisplay)
	return out
}

func compareForDisplay(a, b domain.Account) int {
	if c := cmp.Compare(groupRank[a.Group], groupRank[b.Group]); c != 0 {
		return c
	}
	if c := cmp.Compare(typeRank[a.Type], typeRank[b.Type]); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Position(), b.Position()); c != 0 {
		return c
	}
	return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
}
