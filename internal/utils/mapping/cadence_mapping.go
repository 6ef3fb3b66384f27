package mapping

import (
	"fmt"
	"time"

	"github.com/SscSPs/profit_first_app/internal/core/domain"
	"github.com/SscSPs/profit_first_app/internal/models"
)

// ToModelCadence converts domain settings to a row. The next allocation date
// must be an ISO calendar date.
func ToModelCadence(d domain.CadenceSettings) (models.CadenceSettings, error) {
	next, err := time.Parse(domain.DateLayout, d.NextAllocationDate)
	if err != nil {
		return models.CadenceSettings{}, fmt.Errorf("invalid next allocation date %q: %w", d.NextAllocationDate, err)
	}
	return models.CadenceSettings{
		CompanyID:             d.CompanyID,
		Cadence:               string(d.Cadence),
		WeeklyDayOfWeek:       d.WeeklyDayOfWeek,
		TwiceMonthlyFirstDay:  d.TwiceMonthlyFirstDay,
		TwiceMonthlySecondDay: d.TwiceMonthlySecondDay,
		MonthlyDay:            d.MonthlyDay,
		NextAllocationDate:    next,
	}, nil
}

// ToDomainCadence converts a row to domain settings
func ToDomainCadence(m models.CadenceSettings) domain.CadenceSettings {
	return domain.CadenceSettings{
		CompanyID:             m.CompanyID,
		Cadence:               domain.CadenceType(m.Cadence),
		WeeklyDayOfWeek:       m.WeeklyDayOfWeek,
		TwiceMonthlyFirstDay:  m.TwiceMonthlyFirstDay,
		TwiceMonthlySecondDay: m.TwiceMonthlySecondDay,
		MonthlyDay:            m.MonthlyDay,
		NextAllocationDate:    m.NextAllocationDate.Format(domain.DateLayout),
	}
}
