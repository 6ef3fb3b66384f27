package dto

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/SscSPs/profit_first_app/internal/core/domain"
	"github.com/SscSPs/profit_first_app/internal/utils/allocation"
	"github.com/shopspring/decimal"
)

// PercentInput accepts a percentage typed into a form, sent either as a JSON
// number or a string. Anything unparseable becomes zero.
type PercentInput string

// UnmarshalJSON keeps the raw text of numbers and unquotes strings.
func (p *PercentInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = PercentInput(s)
		return nil
	}
	*p = PercentInput(data)
	return nil
}

// Decimal parses the input with the allocation percent rules.
func (p PercentInput) Decimal() decimal.Decimal {
	return allocation.ParsePercent(string(p))
}

// AccountInput is one account row as edited by the dashboard.
type AccountInput struct {
	ID                *string             `json:"id"` // empty for accounts not saved yet
	Type              domain.AccountType  `json:"type" binding:"required,oneof=income profit owners_pay tax operating_expenses materials payroll custom"`
	Group             domain.AccountGroup `json:"group" binding:"omitempty,oneof=income direct_cost main"`
	Name              string              `json:"name" binding:"max=120"`
	Description       string              `json:"description" binding:"max=500"`
	AllocationPercent PercentInput        `json:"allocationPercent"`
	CustomPosition    *int                `json:"customPosition" binding:"omitempty,min=1"`
	IsActive          *bool               `json:"isActive"` // defaults to true
}

// ToDomain converts the row, filling group when the row does not carry one.
func (in AccountInput) ToDomain(companyID string, group domain.AccountGroup) domain.Account {
	acc := domain.Account{
		CompanyID:         companyID,
		Type:              in.Type,
		Group:             in.Group,
		Name:              in.Name,
		Description:       strings.TrimSpace(in.Description),
		AllocationPercent: in.AllocationPercent.Decimal(),
		CustomPosition:    in.CustomPosition,
		IsActive:          in.IsActive == nil || *in.IsActive,
	}
	if in.ID != nil && strings.TrimSpace(*in.ID) != "" {
		id := strings.TrimSpace(*in.ID)
		acc.AccountID = &id
	}
	if acc.Group == "" {
		acc.Group = group
	}
	return acc
}

func toDomainAccounts(inputs []AccountInput, companyID string, group domain.AccountGroup) []domain.Account {
	accounts := make([]domain.Account, 0, len(inputs))
	for _, in := range inputs {
		accounts = append(accounts, in.ToDomain(companyID, group))
	}
	return accounts
}

// SaveAllocationsRequest replaces the active accounts of one group.
type SaveAllocationsRequest struct {
	Accounts       []AccountInput `json:"accounts" binding:"required,dive"`
	RemovedIDs     []string       `json:"removedIds" binding:"omitempty,dive,required"`
	ConfirmWarning bool           `json:"confirmWarning"`
}

// ToChangeSet converts the request into the change set the account service saves.
func (r SaveAllocationsRequest) ToChangeSet(companyID string, group domain.AccountGroup) domain.AllocationChangeSet {
	removed := r.RemovedIDs
	if removed == nil {
		removed = []string{}
	}
	return domain.AllocationChangeSet{
		Accounts:       toDomainAccounts(r.Accounts, companyID, group),
		RemovedIDs:     removed,
		ConfirmWarning: r.ConfirmWarning,
	}
}

// ValidateAllocationsRequest checks a proposed group without saving it.
type ValidateAllocationsRequest struct {
	Group    domain.AccountGroup `json:"group" binding:"required,oneof=income direct_cost main"`
	Accounts []AccountInput      `json:"accounts" binding:"required,dive"`
}

// ToDomainAccounts converts the proposed rows.
func (r ValidateAllocationsRequest) ToDomainAccounts(companyID string) []domain.Account {
	return toDomainAccounts(r.Accounts, companyID, r.Group)
}

// AccountResponse is one account as returned to the dashboard.
type AccountResponse struct {
	AccountID         string              `json:"id,omitempty"`
	CompanyID         string              `json:"companyId"`
	Type              domain.AccountType  `json:"type"`
	Group             domain.AccountGroup `json:"group"`
	Name              string              `json:"name"`
	Description       string              `json:"description"`
	AllocationPercent decimal.Decimal     `json:"allocationPercent"`
	CustomPosition    *int                `json:"customPosition,omitempty"`
	IsActive          bool                `json:"isActive"`
	IsCustom          bool                `json:"isCustom"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:         acc.ID(),
		CompanyID:         acc.CompanyID,
		Type:              acc.Type,
		Group:             acc.Group,
		Name:              acc.Name,
		Description:       acc.Description,
		AllocationPercent: acc.AllocationPercent,
		CustomPosition:    acc.CustomPosition,
		IsActive:          acc.IsActive,
		IsCustom:          acc.IsCustom(),
	}
}

// ListAccountsResponse wraps a company's accounts with per-group totals.
type ListAccountsResponse struct {
	Accounts []AccountResponse          `json:"accounts"`
	Groups   []AllocationResultResponse `json:"groups"`
}

// ToListAccountsResponse builds the response and validates each group so the
// dashboard can show totals without a second call.
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	resp := ListAccountsResponse{
		Accounts: make([]AccountResponse, 0, len(accounts)),
		Groups:   make([]AllocationResultResponse, 0, 3),
	}
	for _, acc := range accounts {
		resp.Accounts = append(resp.Accounts, ToAccountResponse(acc))
	}
	for _, group := range []domain.AccountGroup{domain.GroupIncome, domain.GroupDirectCost, domain.GroupMain} {
		res, _ := allocation.Validate(accounts, group)
		resp.Groups = append(resp.Groups, ToAllocationResultResponse(res))
	}
	return resp
}

// AllocationResultResponse reports the validation outcome of one group.
type AllocationResultResponse struct {
	Group          domain.AccountGroup `json:"group"`
	TotalPercent   string              `json:"totalPercent"`
	IsValid        bool                `json:"isValid"`
	Warning        bool                `json:"warning"`
	Reason         string              `json:"reason,omitempty"`
	WarningMessage string              `json:"warningMessage,omitempty"`
}

// ToAllocationResultResponse formats the total with two decimals.
func ToAllocationResultResponse(res allocation.Result) AllocationResultResponse {
	return AllocationResultResponse{
		Group:          res.Group,
		TotalPercent:   res.TotalPercent.StringFixed(2),
		IsValid:        res.IsValid,
		Warning:        res.Warning,
		Reason:         res.Reason,
		WarningMessage: res.WarningMessage,
	}
}

// BlueprintResponse lists the fixed account catalog.
type BlueprintResponse struct {
	Accounts []domain.AccountTemplate `json:"accounts"`
}
