package domain

// AccountTemplate describes one fixed account type in the Profit First blueprint.
type AccountTemplate struct {
	Type        AccountType  `json:"type"`
	Group       AccountGroup `json:"group"`
	Label       string       `json:"label"`
	Description string       `json:"description"`
	Optional    bool         `json:"optional"`
}

var accountBlueprint = []AccountTemplate{
	{
		Type:        AccountTypeIncome,
		Group:       GroupIncome,
		Label:       "Income",
		Description: "Primary account capturing all deposits before allocations occur.",
	},
	{
		Type:        AccountTypeMaterials,
		Group:       GroupDirectCost,
		Label:       "Materials",
		Description: "Optional direct cost bucket for physical goods, funded before main allocations.",
		Optional:    true,
	},
	{
		Type:        AccountTypePayroll,
		Group:       GroupDirectCost,
		Label:       "Payroll",
		Description: "Optional direct cost bucket for labor tied to fulfilling sales, funded before main allocations.",
		Optional:    true,
	},
	{
		Type:        AccountTypeProfit,
		Group:       GroupMain,
		Label:       "Profit",
		Description: "Core Profit First account receiving owner distributions each quarter.",
	},
	{
		Type:        AccountTypeOwnersPay,
		Group:       GroupMain,
		Label:       "Owner's Pay",
		Description: "Covers the owner salary allocation to keep personal income predictable.",
	},
	{
		Type:        AccountTypeTax,
		Group:       GroupMain,
		Label:       "Tax",
		Description: "Reserves funds for tax liabilities so quarterly payments are stress-free.",
	},
	{
		Type:        AccountTypeOperatingExpenses,
		Group:       GroupMain,
		Label:       "Operating Expenses",
		Description: "Supports the remaining operating expenses needed to run the business.",
	},
}

// Blueprint returns a copy of the fixed account catalog.
func Blueprint() []AccountTemplate {
	out := make([]AccountTemplate, len(accountBlueprint))
	copy(out, accountBlueprint)
	return out
}

// LookupTemplate returns the blueprint entry for a fixed account type.
// Custom accounts have no template.
func LookupTemplate(t AccountType) (AccountTemplate, bool) {
	for _, tpl := range accountBlueprint {
		if tpl.Type == t {
			return tpl, true
		}
	}
	return AccountTemplate{}, false
}

// IsFixedType reports whether t comes from the blueprint.
func IsFixedType(t AccountType) bool {
	_, ok := LookupTemplate(t)
	return ok
}

// TemplatesForGroup returns the fixed templates belonging to a group, in blueprint order.
func TemplatesForGroup(group AccountGroup) []AccountTemplate {
	var out []AccountTemplate
	for _, tpl := range accountBlueprint {
		if tpl.Group == group {
			out = append(out, tpl)
		}
	}
	return out
}
