package allocation

import (
	"fmt"
	"strings"

	"github.com/SscSPs/profit_first_app/internal/apperrors"
	"github.com/SscSPs/profit_first_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	// DefaultMaxCustomMainAccounts bounds custom accounts in the main group.
	DefaultMaxCustomMainAccounts = 10
	// DefaultMaxCustomDirectCostAccounts bounds custom accounts in the direct cost group.
	DefaultMaxCustomDirectCostAccounts = 15
)

// Limits holds the independently configured custom account ceilings.
type Limits struct {
	MaxCustomMain       int
	MaxCustomDirectCost int
}

// DefaultLimits returns the stock ceilings (10 main, 15 direct cost).
func DefaultLimits() Limits {
	return Limits{
		MaxCustomMain:       DefaultMaxCustomMainAccounts,
		MaxCustomDirectCost: DefaultMaxCustomDirectCostAccounts,
	}
}

// MaxCustomAccounts returns the ceiling for group.
func (l Limits) MaxCustomAccounts(group domain.AccountGroup) (int, error) {
	switch group {
	case domain.GroupMain:
		return l.MaxCustomMain, nil
	case domain.GroupDirectCost:
		return l.MaxCustomDirectCost, nil
	case domain.GroupIncome:
		return 0, apperrors.NewValidationFailedError("the income group does not accept custom accounts")
	}
	return 0, apperrors.NewValidationFailedError(fmt.Sprintf("unknown account group %q", group))
}

// DefaultCustomName is the placeholder name of a freshly added custom account.
func DefaultCustomName(group domain.AccountGroup) string {
	if group == domain.GroupDirectCost {
		return "New direct cost"
	}
	return "New allocation bucket"
}

// DefaultCustomDescription describes custom accounts created without one.
func DefaultCustomDescription(group domain.AccountGroup) string {
	if group == domain.GroupDirectCost {
		return "User-defined direct cost bucket."
	}
	return "User-defined main allocation bucket."
}

// NewCustomAccount builds an unsaved custom account at position within group.
// It fails with a range error when position is outside [1, max] for the group.
// An empty description falls back to the group default.
func (l Limits) NewCustomAccount(group domain.AccountGroup, position int, label, description string) (domain.Account, error) {
	limit, err := l.MaxCustomAccounts(group)
	if err != nil {
		return domain.Account{}, err
	}
	if position < 1 || position > limit {
		return domain.Account{}, apperrors.NewRangeError(
			fmt.Sprintf("Custom account position must be between 1 and %d.", limit))
	}
	if description == "" {
		description = DefaultCustomDescription(group)
	}
	pos := position
	return domain.Account{
		Type:              domain.AccountTypeCustom,
		Group:             group,
		Name:              label,
		Description:       description,
		AllocationPercent: decimal.Zero,
		CustomPosition:    &pos,
		IsActive:          true,
	}, nil
}

// NewCustomAccount builds a main-group custom account with the default limits.
func NewCustomAccount(position int, label, description string) (domain.Account, error) {
	return DefaultLimits().NewCustomAccount(domain.GroupMain, position, label, description)
}

// NextCustomAccount builds the custom account a user gets when pressing "add"
// in group: the next free position and the default name. It fails with a
// range error once the group is full.
func (l Limits) NextCustomAccount(group domain.AccountGroup, existing []domain.Account) (domain.Account, error) {
	limit, err := l.MaxCustomAccounts(group)
	if err != nil {
		return domain.Account{}, err
	}
	if count := CountCustom(existing, group); count >= limit {
		return domain.Account{}, apperrors.NewRangeError(
			fmt.Sprintf("You can add up to %d custom accounts in the %s group. Remove one before adding another.", limit, group))
	}
	position := NextCustomPosition(existing, group)
	if position > limit {
		position = firstFreePosition(existing, group)
	}
	return l.NewCustomAccount(group, position, DefaultCustomName(group), "")
}

// firstFreePosition finds the lowest position not taken by an active custom account.
func firstFreePosition(accounts []domain.Account, group domain.AccountGroup) int {
	taken := make(map[int]bool)
	for _, acc := range accounts {
		if acc.Group == group && acc.IsActive && acc.IsCustom() {
			taken[acc.Position()] = true
		}
	}
	p := 1
	for taken[p] {
		p++
	}
	return p
}

// CheckCustomCapacity fails with a range error when group holds more active
// custom accounts than allowed, or when any custom position is out of bounds.
func (l Limits) CheckCustomCapacity(accounts []domain.Account, group domain.AccountGroup) error {
	limit, err := l.MaxCustomAccounts(group)
	if err != nil {
		return err
	}
	if count := CountCustom(accounts, group); count > limit {
		return apperrors.NewRangeError(
			fmt.Sprintf("The %s group allows at most %d custom accounts; got %d.", group, limit, count))
	}
	for _, acc := range accounts {
		if acc.Group != group || !acc.IsActive || !acc.IsCustom() {
			continue
		}
		if acc.CustomPosition == nil {
			return apperrors.NewValidationFailedError(
				fmt.Sprintf("custom account %q is missing a position", strings.TrimSpace(acc.Name)))
		}
		if p := *acc.CustomPosition; p < 1 || p > limit {
			return apperrors.NewRangeError(
				fmt.Sprintf("Custom account position must be between 1 and %d.", limit))
		}
	}
	return nil
}

// CountCustom counts active custom accounts in group.
func CountCustom(accounts []domain.Account, group domain.AccountGroup) int {
	n := 0
	for _, acc := range accounts {
		if acc.Group == group && acc.IsActive && acc.IsCustom() {
			n++
		}
	}
	return n
}

// NextCustomPosition is one past the highest custom position in group, or 1.
func NextCustomPosition(accounts []domain.Account, group domain.AccountGroup) int {
	highest := 0
	for _, acc := range accounts {
		if acc.Group != group || !acc.IsActive || !acc.IsCustom() {
			continue
		}
		if p := acc.Position(); p > highest {
			highest = p
		}
	}
	return highest + 1
}
