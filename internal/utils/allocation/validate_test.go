package allocation

import (
	"testing"

	"github.com/SscSPs/profit_first_app/internal/apperrors"
	"github.com/SscSPs/profit_first_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixed(t domain.AccountType, pct string) domain.Account {
	tpl, _ := domain.LookupTemplate(t)
	return domain.Account{
		Type:              t,
		Group:             tpl.Group,
		Name:              tpl.Label,
		AllocationPercent: decimal.RequireFromString(pct),
		IsActive:          true,
	}
}

func custom(group domain.AccountGroup, position int, name, pct string) domain.Account {
	p := position
	return domain.Account{
		Type:              domain.AccountTypeCustom,
		Group:             group,
		Name:              name,
		AllocationPercent: decimal.RequireFromString(pct),
		CustomPosition:    &p,
		IsActive:          true,
	}
}

func mainSet(opex string) []domain.Account {
	return []domain.Account{
		fixed(domain.AccountTypeProfit, "5"),
		fixed(domain.AccountTypeOwnersPay, "50"),
		fixed(domain.AccountTypeTax, "15"),
		fixed(domain.AccountTypeOperatingExpenses, opex),
	}
}

func TestValidateMainGroup(t *testing.T) {
	tests := []struct {
		name   string
		opex   string
		valid  bool
		reason string
	}{
		{name: "exact", opex: "30", valid: true},
		{name: "within tolerance below", opex: "29.99", valid: true},
		{name: "within tolerance above", opex: "30.01", valid: true},
		{name: "difference rounds down to 0.01", opex: "30.014", valid: true},
		{name: "difference rounds up to 0.02", opex: "30.015", valid: false, reason: "Adjust allocations by 0.02% to reach exactly 100%."},
		{name: "short by 0.02", opex: "29.98", valid: false, reason: "Adjust allocations by 0.02% to reach exactly 100%."},
		{name: "over by 0.02", opex: "30.02", valid: false, reason: "Adjust allocations by 0.02% to reach exactly 100%."},
		{name: "far off", opex: "10", valid: false, reason: "Adjust allocations by 20.00% to reach exactly 100%."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Validate(mainSet(tt.opex), domain.GroupMain)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, res.IsValid)
			assert.Equal(t, tt.reason, res.Reason)
			assert.False(t, res.Warning)
		})
	}
}

func TestValidateIgnoresInactiveAndOtherGroups(t *testing.T) {
	accounts := mainSet("30")
	retired := custom(domain.GroupMain, 1, "Old bucket", "40")
	retired.IsActive = false
	accounts = append(accounts, retired, fixed(domain.AccountTypeMaterials, "60"))

	res, err := Validate(accounts, domain.GroupMain)

	require.NoError(t, err)
	assert.True(t, res.IsValid)
	assert.True(t, res.TotalPercent.Equal(decimal.NewFromInt(100)))
}

func TestValidateDirectCostGroup(t *testing.T) {
	tests := []struct {
		name    string
		payroll string
		valid   bool
		warning bool
		message string
	}{
		{name: "at warning floor", payroll: "50", valid: true, warning: false},
		{name: "just above floor", payroll: "50.01", valid: true, warning: true,
			message: "Direct costs at 80.01% leave only 19.99% as gross margin."},
		{name: "exactly 100", payroll: "70", valid: true, warning: true,
			message: "Direct costs at 100.00% leave only 0.00% as gross margin."},
		{name: "over ceiling", payroll: "70.01", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := []domain.Account{
				fixed(domain.AccountTypeMaterials, "30"),
				fixed(domain.AccountTypePayroll, tt.payroll),
			}
			res, err := Validate(accounts, domain.GroupDirectCost)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, res.IsValid)
			assert.Equal(t, tt.warning, res.Warning)
			assert.Equal(t, tt.message, res.WarningMessage)
			if !tt.valid {
				assert.Equal(t, "Direct cost allocations cannot exceed 100% of projected income.", res.Reason)
			}
		})
	}
}

func TestValidateEmptyDirectCostIsValid(t *testing.T) {
	res, err := Validate(nil, domain.GroupDirectCost)

	require.NoError(t, err)
	assert.True(t, res.IsValid)
	assert.True(t, res.TotalPercent.IsZero())
}

func TestValidateCustomWarningFloor(t *testing.T) {
	th := DefaultThresholds()
	th.DirectCostWarningFloor = decimal.NewFromInt(60)
	v := NewValidator(th)

	res, err := v.Validate([]domain.Account{fixed(domain.AccountTypeMaterials, "65")}, domain.GroupDirectCost)

	require.NoError(t, err)
	assert.True(t, res.IsValid)
	assert.True(t, res.Warning)
}

func TestValidateRejectsUnnamedCustomAccount(t *testing.T) {
	accounts := append(mainSet("20"), custom(domain.GroupMain, 1, "   ", "10"))

	res, err := Validate(accounts, domain.GroupMain)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.False(t, res.IsValid)
	assert.True(t, res.TotalPercent.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "Name each custom allocation before saving.", res.Reason)
}

func TestValidateIgnoresUnnamedInactiveCustomAccount(t *testing.T) {
	blank := custom(domain.GroupMain, 1, "", "0")
	blank.IsActive = false

	_, err := Validate(append(mainSet("30"), blank), domain.GroupMain)

	assert.NoError(t, err)
}

func TestValidateRejectsFixedTypeInWrongGroup(t *testing.T) {
	misfiled := fixed(domain.AccountTypeProfit, "10")
	misfiled.Group = domain.GroupDirectCost

	_, err := Validate([]domain.Account{misfiled}, domain.GroupDirectCost)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestValidateRejectsDuplicateFixedType(t *testing.T) {
	accounts := []domain.Account{
		fixed(domain.AccountTypeProfit, "3"),
		fixed(domain.AccountTypeProfit, "2"),
		fixed(domain.AccountTypeOwnersPay, "50"),
		fixed(domain.AccountTypeTax, "15"),
		fixed(domain.AccountTypeOperatingExpenses, "30"),
	}

	res, err := Validate(accounts, domain.GroupMain)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.False(t, res.IsValid)
	assert.Equal(t, "Only one active Profit account is allowed.", res.Reason)

	accounts[1].IsActive = false
	res, err = Validate(accounts, domain.GroupMain)
	require.NoError(t, err)
	assert.False(t, res.IsValid, "total is 98 once the duplicate is inactive")
}

func TestValidateIncomeGroup(t *testing.T) {
	res, err := Validate([]domain.Account{fixed(domain.AccountTypeIncome, "0")}, domain.GroupIncome)
	require.NoError(t, err)
	assert.True(t, res.IsValid)

	res, err = Validate(nil, domain.GroupIncome)
	require.NoError(t, err)
	assert.False(t, res.IsValid)
	assert.Contains(t, res.Reason, "exactly one active income account")

	res, err = Validate([]domain.Account{custom(domain.GroupIncome, 1, "Side", "0")}, domain.GroupIncome)
	require.Error(t, err)
	assert.False(t, res.IsValid)
}

func TestValidateUnknownGroup(t *testing.T) {
	_, err := Validate(mainSet("30"), domain.AccountGroup("savings"))

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestValidateIsIdempotent(t *testing.T) {
	accounts := append(mainSet("25"), custom(domain.GroupMain, 1, "Vacation", "5"))

	first, err1 := Validate(accounts, domain.GroupMain)
	second, err2 := Validate(accounts, domain.GroupMain)

	assert.Equal(t, err1, err2)
	assert.Equal(t, first, second)
}
