package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/profit_first_app/internal/core/domain"
	"github.com/SscSPs/profit_first_app/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToModelAccount_FixedAccountDropsPosition(t *testing.T) {
	id := "acc-1"
	pos := 4
	d := domain.Account{
		AccountID:         &id,
		CompanyID:         "co-1",
		Type:              domain.AccountTypeTax,
		Group:             domain.GroupMain,
		Name:              "Tax",
		AllocationPercent: decimal.RequireFromString("15.5"),
		CustomPosition:    &pos,
		IsActive:          true,
	}

	m := ToModelAccount(d)

	assert.Equal(t, "acc-1", m.AccountID)
	assert.Nil(t, m.CustomPosition)
	assert.Nil(t, m.Description)
	assert.Equal(t, "main", m.AccountGroup)
}

func TestAccountRoundTrip_Custom(t *testing.T) {
	desc := "Rainy day fund"
	pos := 2
	m := models.Account{
		AccountID:         "acc-2",
		CompanyID:         "co-1",
		AccountType:       "custom",
		AccountGroup:      "direct_cost",
		Name:              "Subcontractors",
		Description:       &desc,
		AllocationPercent: decimal.NewFromInt(12),
		CustomPosition:    &pos,
		IsActive:          true,
	}

	d := ToDomainAccount(m)
	assert.Equal(t, "acc-2", d.ID())
	assert.Equal(t, domain.GroupDirectCost, d.Group)
	assert.Equal(t, 2, d.Position())
	assert.Equal(t, desc, d.Description)

	back := ToModelAccount(d)
	assert.Equal(t, m.CustomPosition, back.CustomPosition)
	assert.Equal(t, *m.Description, *back.Description)
}

func TestCadenceMapping(t *testing.T) {
	day := 15
	d := domain.CadenceSettings{
		CompanyID:          "co-1",
		Cadence:            domain.CadenceMonthly,
		MonthlyDay:         &day,
		NextAllocationDate: "2024-02-29",
	}

	m, err := ToModelCadence(d)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), m.NextAllocationDate)
	assert.Equal(t, d, ToDomainCadence(m))

	d.NextAllocationDate = "29/02/2024"
	_, err = ToModelCadence(d)
	assert.Error(t, err)
}
