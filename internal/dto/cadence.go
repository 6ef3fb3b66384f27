package dto

import (
	"github.com/SscSPs/profit_first_app/internal/core/domain"
	"github.com/SscSPs/profit_first_app/internal/utils/cadence"
)

// UpcomingRunCount is how many future run dates a cadence response lists.
const UpcomingRunCount = 4

// UpdateCadenceRequest is the cadence form. Out of range days are clamped
// rather than rejected; only the weekday must be 0-6.
type UpdateCadenceRequest struct {
	Cadence               domain.CadenceType `json:"cadence" binding:"required,oneof=weekly twice_monthly monthly"`
	WeeklyDayOfWeek       *int               `json:"weeklyDayOfWeek"`
	TwiceMonthlyFirstDay  *int               `json:"twiceMonthlyFirstDay"`
	TwiceMonthlySecondDay *int               `json:"twiceMonthlySecondDay"`
	MonthlyDay            *int               `json:"monthlyDay"`
	NextAllocationDate    string             `json:"nextAllocationDate" binding:"required"`
}

// ToDomain converts the request into a cadence input.
func (r UpdateCadenceRequest) ToDomain() domain.CadenceInput {
	return domain.CadenceInput{
		Cadence:               r.Cadence,
		WeeklyDayOfWeek:       r.WeeklyDayOfWeek,
		TwiceMonthlyFirstDay:  r.TwiceMonthlyFirstDay,
		TwiceMonthlySecondDay: r.TwiceMonthlySecondDay,
		MonthlyDay:            r.MonthlyDay,
		NextAllocationDate:    r.NextAllocationDate,
	}
}

// CadenceResponse is the stored cadence plus a readable summary.
type CadenceResponse struct {
	domain.CadenceSettings
	Description   string   `json:"description"`
	UpcomingDates []string `json:"upcomingDates"`
}

// ToCadenceResponse describes settings and lists the next run dates. Settings
// whose date cannot be projected still render with an empty schedule.
func ToCadenceResponse(s domain.CadenceSettings) CadenceResponse {
	resp := CadenceResponse{
		CadenceSettings: s,
		Description:     cadence.Describe(s),
		UpcomingDates:   []string{},
	}
	runs, err := cadence.UpcomingRuns(s, UpcomingRunCount)
	if err != nil {
		return resp
	}
	for _, run := range runs {
		resp.UpcomingDates = append(resp.UpcomingDates, run.Format(domain.DateLayout))
	}
	return resp
}
