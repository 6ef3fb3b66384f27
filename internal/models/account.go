package models

import (
	"github.com/shopspring/decimal"
)

// Account is a row of profit_first_accounts.
// CustomPosition is NULL for fixed accounts.
type Account struct {
	AccountID         string          `db:"account_id"`
	CompanyID         string          `db:"company_id"`
	AccountType       string          `db:"account_type"`
	AccountGroup      string          `db:"account_group"`
	Name              string          `db:"name"`
	Description       *string         `db:"description"`
	AllocationPercent decimal.Decimal `db:"allocation_percent"`
	CustomPosition    *int            `db:"custom_position"`
	IsActive          bool            `db:"is_active"`
	Timestamps
}
