package models

import "time"

// CadenceSettings is a row of allocation_cadence_settings, one per company.
type CadenceSettings struct {
	CompanyID             string    `db:"company_id"`
	Cadence               string    `db:"cadence"`
	WeeklyDayOfWeek       *int      `db:"weekly_day_of_week"`
	TwiceMonthlyFirstDay  *int      `db:"twice_monthly_first_day"`
	TwiceMonthlySecondDay *int      `db:"twice_monthly_second_day"`
	MonthlyDay            *int      `db:"monthly_day"`
	NextAllocationDate    time.Time `db:"next_allocation_date"`
	Timestamps
}
