package allocation

import (
	"testing"

	"github.com/SscSPs/profit_first_app/internal/apperrors"
	"github.com/SscSPs/profit_first_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomAccountBounds(t *testing.T) {
	acc, err := NewCustomAccount(10, "Emergency fund", "")
	require.NoError(t, err)
	assert.Equal(t, domain.AccountTypeCustom, acc.Type)
	assert.Equal(t, domain.GroupMain, acc.Group)
	assert.Equal(t, "Emergency fund", acc.Name)
	assert.Equal(t, "User-defined main allocation bucket.", acc.Description)
	assert.Equal(t, 10, acc.Position())
	assert.True(t, acc.IsActive)
	assert.True(t, acc.AllocationPercent.IsZero())
	assert.False(t, acc.IsPersisted())

	_, err = NewCustomAccount(11, "Too many", "")
	assert.ErrorIs(t, err, apperrors.ErrRange)

	_, err = NewCustomAccount(0, "Zero", "")
	assert.ErrorIs(t, err, apperrors.ErrRange)
}

func TestDirectCostLimitIsIndependent(t *testing.T) {
	limits := DefaultLimits()

	acc, err := limits.NewCustomAccount(domain.GroupDirectCost, 15, "Subcontractors", "Crew we hire per job")
	require.NoError(t, err)
	assert.Equal(t, "Crew we hire per job", acc.Description)

	_, err = limits.NewCustomAccount(domain.GroupDirectCost, 16, "Overflow", "")
	assert.ErrorIs(t, err, apperrors.ErrRange)

	_, err = limits.NewCustomAccount(domain.GroupIncome, 1, "Side income", "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestNextCustomAccount(t *testing.T) {
	limits := Limits{MaxCustomMain: 3, MaxCustomDirectCost: 2}
	existing := []domain.Account{
		custom(domain.GroupMain, 1, "Vacation", "0"),
		custom(domain.GroupMain, 2, "Giving", "0"),
		custom(domain.GroupDirectCost, 5, "Fuel", "0"),
	}

	next, err := limits.NextCustomAccount(domain.GroupMain, existing)
	require.NoError(t, err)
	assert.Equal(t, 3, next.Position())
	assert.Equal(t, "New allocation bucket", next.Name)

	full := append(existing, next)
	_, err = limits.NextCustomAccount(domain.GroupMain, full)
	assert.ErrorIs(t, err, apperrors.ErrRange)

	dc, err := limits.NextCustomAccount(domain.GroupDirectCost, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, dc.Position())
	assert.Equal(t, "New direct cost", dc.Name)
	assert.Equal(t, "User-defined direct cost bucket.", dc.Description)
}

func TestNextCustomAccountReusesGap(t *testing.T) {
	limits := Limits{MaxCustomMain: 3, MaxCustomDirectCost: 3}
	existing := []domain.Account{
		custom(domain.GroupMain, 1, "Vacation", "0"),
		custom(domain.GroupMain, 3, "Giving", "0"),
	}

	next, err := limits.NextCustomAccount(domain.GroupMain, existing)

	require.NoError(t, err)
	assert.Equal(t, 2, next.Position())
}

func TestNextCustomPosition(t *testing.T) {
	assert.Equal(t, 1, NextCustomPosition(nil, domain.GroupMain))

	retired := custom(domain.GroupMain, 9, "Old", "0")
	retired.IsActive = false
	accounts := []domain.Account{
		custom(domain.GroupMain, 4, "A", "0"),
		retired,
		fixed(domain.AccountTypeProfit, "5"),
	}
	assert.Equal(t, 5, NextCustomPosition(accounts, domain.GroupMain))
	assert.Equal(t, 1, NextCustomPosition(accounts, domain.GroupDirectCost))
}

func TestCheckCustomCapacity(t *testing.T) {
	limits := Limits{MaxCustomMain: 2, MaxCustomDirectCost: 2}
	ok := []domain.Account{
		custom(domain.GroupMain, 1, "A", "0"),
		custom(domain.GroupMain, 2, "B", "0"),
	}
	assert.NoError(t, limits.CheckCustomCapacity(ok, domain.GroupMain))

	tooMany := append(ok, custom(domain.GroupMain, 2, "C", "0"))
	assert.ErrorIs(t, limits.CheckCustomCapacity(tooMany, domain.GroupMain), apperrors.ErrRange)

	outOfBounds := []domain.Account{custom(domain.GroupMain, 7, "Far", "0")}
	assert.ErrorIs(t, limits.CheckCustomCapacity(outOfBounds, domain.GroupMain), apperrors.ErrRange)

	noPosition := custom(domain.GroupMain, 1, "Lost", "0")
	noPosition.CustomPosition = nil
	assert.ErrorIs(t, limits.CheckCustomCapacity([]domain.Account{noPosition}, domain.GroupMain), apperrors.ErrValidation)
}
