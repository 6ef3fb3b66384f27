package domain

import (
	"fmt"
	"strings"
	"time"
)

// CadenceType is the recurring schedule on which allocations run.
type CadenceType string

const (
	CadenceWeekly       CadenceType = "weekly"
	CadenceTwiceMonthly CadenceType = "twice_monthly"
	CadenceMonthly      CadenceType = "monthly"
)

// IsValid reports whether c is a known cadence.
func (c CadenceType) IsValid() bool {
	switch c {
	case CadenceWeekly, CadenceTwiceMonthly, CadenceMonthly:
		return true
	}
	return false
}

// ParseCadenceType converts a raw string into a CadenceType.
func ParseCadenceType(raw string) (CadenceType, error) {
	c := CadenceType(strings.TrimSpace(raw))
	if !c.IsValid() {
		return "", fmt.Errorf("unknown cadence %q", raw)
	}
	return c, nil
}

// DateLayout is the ISO calendar date format used for allocation dates.
const DateLayout = time.DateOnly

// CadenceInput is the caller supplied cadence form. Nil pointers mean "not set".
type CadenceInput struct {
	Cadence               CadenceType `json:"cadence"`
	WeeklyDayOfWeek       *int        `json:"weeklyDayOfWeek"`
	TwiceMonthlyFirstDay  *int        `json:"twiceMonthlyFirstDay"`
	TwiceMonthlySecondDay *int        `json:"twiceMonthlySecondDay"`
	MonthlyDay            *int        `json:"monthlyDay"`
	NextAllocationDate    string      `json:"nextAllocationDate"`
}

// CadenceSettings is the normalized, persisted cadence for one company.
// Exactly one parameter group is populated, matching Cadence.
type CadenceSettings struct {
	CompanyID             string      `json:"companyId"`
	Cadence               CadenceType `json:"cadence"`
	WeeklyDayOfWeek       *int        `json:"weeklyDayOfWeek"`
	TwiceMonthlyFirstDay  *int        `json:"twiceMonthlyFirstDay"`
	TwiceMonthlySecondDay *int        `json:"twiceMonthlySecondDay"`
	MonthlyDay            *int        `json:"monthlyDay"`
	NextAllocationDate    string      `json:"nextAllocationDate"`
}

// NextDate parses NextAllocationDate.
func (s CadenceSettings) NextDate() (time.Time, error) {
	return time.Parse(DateLayout, s.NextAllocationDate)
}

// Input converts stored settings back into an editable input.
func (s CadenceSettings) Input() CadenceInput {
	return CadenceInput{
		Cadence:               s.Cadence,
		WeeklyDayOfWeek:       s.WeeklyDayOfWeek,
		TwiceMonthlyFirstDay:  s.TwiceMonthlyFirstDay,
		TwiceMonthlySecondDay: s.TwiceMonthlySecondDay,
		MonthlyDay:            s.MonthlyDay,
		NextAllocationDate:    s.NextAllocationDate,
	}
}
