package allocation

import (
	"fmt"
	"strings"

	"github.com/SscSPs/profit_first_app/internal/apperrors"
	"github.com/SscSPs/profit_first_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Thresholds are the numeric constants the validator applies per group.
type Thresholds struct {
	MainTarget             decimal.Decimal
	MainTolerance          decimal.Decimal
	DirectCostCeiling      decimal.Decimal
	DirectCostTolerance    decimal.Decimal
	DirectCostWarningFloor decimal.Decimal
}

// DefaultThresholds returns main = 100 ±0.01, direct cost <= 100 with a warning above 80.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MainTarget:             hundred,
		MainTolerance:          decimal.RequireFromString("0.01"),
		DirectCostCeiling:      hundred,
		DirectCostTolerance:    decimal.RequireFromString("0.0001"),
		DirectCostWarningFloor: decimal.NewFromInt(80),
	}
}

// Result is the outcome of validating one group of accounts.
type Result struct {
	Group        domain.AccountGroup `json:"group"`
	TotalPercent decimal.Decimal     `json:"totalPercent"`
	IsValid      bool                `json:"isValid"`
	// Warning marks a valid direct cost total high enough to need explicit confirmation.
	Warning        bool   `json:"warning"`
	Reason         string `json:"reason,omitempty"`
	WarningMessage string `json:"warningMessage,omitempty"`
}

// Validator checks account sets against the allocation rules.
// The zero value is not usable; use NewValidator or Validate.
type Validator struct {
	thresholds Thresholds
}

// NewValidator builds a validator with the given thresholds.
func NewValidator(t Thresholds) Validator {
	return Validator{thresholds: t}
}

// Thresholds returns the constants the validator applies.
func (v Validator) Thresholds() Thresholds {
	return v.thresholds
}

// Validate checks accounts with the default thresholds.
func Validate(accounts []domain.Account, group domain.AccountGroup) (Result, error) {
	return NewValidator(DefaultThresholds()).Validate(accounts, group)
}

// Validate totals the active accounts of group and applies the group rule.
// Accounts from other groups are ignored. A structural problem (unknown group,
// fixed type filed under the wrong group, unnamed custom account) is returned
// as a validation error alongside the computed result.
func (v Validator) Validate(accounts []domain.Account, group domain.AccountGroup) (Result, error) {
	res := Result{Group: group, TotalPercent: decimal.Zero}

	var members []domain.Account
	for _, acc := range accounts {
		if acc.Group == group && acc.IsActive {
			members = append(members, acc)
		}
	}
	res.TotalPercent = Total(members)

	switch group {
	case domain.GroupMain:
		v.checkMain(&res)
	case domain.GroupDirectCost:
		v.checkDirectCost(&res)
	case domain.GroupIncome:
		checkIncome(&res, members)
	default:
		return res, apperrors.NewValidationFailedError(fmt.Sprintf("unknown account group %q", group))
	}

	if err := checkMembers(members, group); err != nil {
		res.IsValid = false
		if res.Reason == "" {
			res.Reason = err.Message
		}
		return res, err
	}
	return res, nil
}

// Total sums allocationPercent over active accounts.
func Total(accounts []domain.Account) decimal.Decimal {
	total := decimal.Zero
	for _, acc := range accounts {
		if acc.IsActive {
			total = total.Add(acc.AllocationPercent)
		}
	}
	return total
}

// checkMain compares the difference after rounding it to two places.
func (v Validator) checkMain(res *Result) {
	diff := RoundPercent(res.TotalPercent.Sub(v.thresholds.MainTarget))
	if diff.Abs().LessThanOrEqual(v.thresholds.MainTolerance) {
		res.IsValid = true
		return
	}
	res.Reason = fmt.Sprintf("Adjust allocations by %s%% to reach exactly %s%%.",
		diff.Abs().StringFixed(percentPlaces), v.thresholds.MainTarget.String())
}

func (v Validator) checkDirectCost(res *Result) {
	limit := v.thresholds.DirectCostCeiling.Add(v.thresholds.DirectCostTolerance)
	if res.TotalPercent.GreaterThan(limit) {
		res.Reason = fmt.Sprintf("Direct cost allocations cannot exceed %s%% of projected income.",
			v.thresholds.DirectCostCeiling.String())
		return
	}
	res.IsValid = true
	if res.TotalPercent.GreaterThan(v.thresholds.DirectCostWarningFloor) {
		res.Warning = true
		margin := hundred.Sub(res.TotalPercent)
		if margin.IsNegative() {
			margin = decimal.Zero
		}
		res.WarningMessage = fmt.Sprintf("Direct costs at %s%% leave only %s%% as gross margin.",
			res.TotalPercent.StringFixed(percentPlaces), margin.StringFixed(percentPlaces))
	}
}

func checkIncome(res *Result, members []domain.Account) {
	incomes := 0
	for _, acc := range members {
		if acc.Type == domain.AccountTypeIncome {
			incomes++
		}
	}
	if incomes == 1 {
		res.IsValid = true
		return
	}
	res.Reason = fmt.Sprintf("A company needs exactly one active income account; found %d.", incomes)
}

func checkMembers(members []domain.Account, group domain.AccountGroup) *apperrors.AppError {
	seen := make(map[domain.AccountType]bool, len(members))
	for _, acc := range members {
		if acc.IsCustom() {
			if !group.AllowsCustomAccounts() {
				return apperrors.NewValidationFailedError(
					fmt.Sprintf("The %s group does not accept custom accounts.", group))
			}
			if strings.TrimSpace(acc.Name) == "" {
				return apperrors.NewValidationFailedError(missingNameMessage(group))
			}
			continue
		}
		tpl, ok := domain.LookupTemplate(acc.Type)
		if !ok {
			return apperrors.NewValidationFailedError(fmt.Sprintf("unknown account type %q", acc.Type))
		}
		if tpl.Group != group {
			return apperrors.NewValidationFailedError(
				fmt.Sprintf("%s accounts belong to the %s group, not %s.", tpl.Label, tpl.Group, group))
		}
		if seen[acc.Type] {
			return apperrors.NewValidationFailedError(
				fmt.Sprintf("Only one active %s account is allowed.", tpl.Label))
		}
		seen[acc.Type] = true
	}
	return nil
}

func missingNameMessage(group domain.AccountGroup) string {
	if group == domain.GroupDirectCost {
		return "Name each custom direct cost account before saving."
	}
	return "Name each custom allocation before saving."
}
