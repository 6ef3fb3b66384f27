package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AccountType identifies the Profit First bucket an account represents.
type AccountType string

const (
	AccountTypeIncome            AccountType = "income"
	AccountTypeProfit            AccountType = "profit"
	AccountTypeOwnersPay         AccountType = "owners_pay"
	AccountTypeTax               AccountType = "tax"
	AccountTypeOperatingExpenses AccountType = "operating_expenses"
	AccountTypeMaterials         AccountType = "materials"
	AccountTypePayroll           AccountType = "payroll"
	AccountTypeCustom            AccountType = "custom"
)

// AccountTypes lists every known account type.
var AccountTypes = []AccountType{
	AccountTypeIncome,
	AccountTypeProfit,
	AccountTypeOwnersPay,
	AccountTypeTax,
	AccountTypeOperatingExpenses,
	AccountTypeMaterials,
	AccountTypePayroll,
	AccountTypeCustom,
}

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeIncome, AccountTypeProfit, AccountTypeOwnersPay, AccountTypeTax,
		AccountTypeOperatingExpenses, AccountTypeMaterials, AccountTypePayroll, AccountTypeCustom:
		return true
	}
	return false
}

// IsCustom reports whether the type is user-defined.
func (t AccountType) IsCustom() bool {
	return t == AccountTypeCustom
}

// ParseAccountType converts a raw string into an AccountType.
func ParseAccountType(raw string) (AccountType, error) {
	t := AccountType(strings.TrimSpace(raw))
	if !t.IsValid() {
		return "", fmt.Errorf("unknown account type %q", raw)
	}
	return t, nil
}

// AccountGroup determines which allocation rule applies to an account.
type AccountGroup string

const (
	GroupIncome     AccountGroup = "income"
	GroupDirectCost AccountGroup = "direct_cost"
	GroupMain       AccountGroup = "main"
)

// IsValid reports whether g is one of the known groups.
func (g AccountGroup) IsValid() bool {
	switch g {
	case GroupIncome, GroupDirectCost, GroupMain:
		return true
	}
	return false
}

// AllowsCustomAccounts reports whether users may add custom accounts to the group.
func (g AccountGroup) AllowsCustomAccounts() bool {
	switch g {
	case GroupMain, GroupDirectCost:
		return true
	case GroupIncome:
		return false
	}
	return false
}

// ParseAccountGroup converts a raw string into an AccountGroup.
func ParseAccountGroup(raw string) (AccountGroup, error) {
	g := AccountGroup(strings.TrimSpace(raw))
	if !g.IsValid() {
		return "", fmt.Errorf("unknown account group %q", raw)
	}
	return g, nil
}

// Account is one allocation bucket belonging to a company.
type Account struct {
	AccountID         *string         `json:"id,omitempty"` // nil until persisted
	CompanyID         string          `json:"companyId"`
	Type              AccountType     `json:"type"`
	Group             AccountGroup    `json:"group"`
	Name              string          `json:"name"`
	Description       string          `json:"description,omitempty"`
	AllocationPercent decimal.Decimal `json:"allocationPercent"`
	CustomPosition    *int            `json:"customPosition"` // set for custom accounts only
	IsActive          bool            `json:"isActive"`
}

// ID returns the persisted id or an empty string.
func (a Account) ID() string {
	if a.AccountID == nil {
		return ""
	}
	return *a.AccountID
}

// IsPersisted reports whether the account already has an id.
func (a Account) IsPersisted() bool {
	return a.AccountID != nil && *a.AccountID != ""
}

// IsCustom reports whether the account is user-defined.
func (a Account) IsCustom() bool {
	return a.Type.IsCustom()
}

// Position returns the custom position or 0 for fixed accounts.
func (a Account) Position() int {
	if a.CustomPosition == nil {
		return 0
	}
	return *a.CustomPosition
}

// Deactivated returns a copy of the account in its retired state. Accounts are
// never hard deleted so historical percentages stay intact.
func (a Account) Deactivated() Account {
	a.IsActive = false
	a.AllocationPercent = decimal.Zero
	return a
}

// AllocationChangeSet is an edit of one account group submitted for saving.
// Accounts replaces the group's active set; RemovedIDs lists persisted
// accounts the user took out.
type AllocationChangeSet struct {
	Accounts   []Account
	RemovedIDs []string
	// ConfirmWarning acknowledges a soft warning such as a thin gross margin.
	ConfirmWarning bool
}
