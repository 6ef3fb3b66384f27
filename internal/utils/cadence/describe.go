package cadence

import (
	"fmt"
	"time"

	"github.com/SscSPs/profit_first_app/internal/core/domain"
	"github.com/dustin/go-humanize"
)

// Ordinal formats n with its English suffix, e.g. 22 -> "22nd", 11 -> "11th".
func Ordinal(n int) string {
	return humanize.Ordinal(n)
}

// WeekdayName returns the English name for a 0 (Sunday) to 6 (Saturday) index.
func WeekdayName(day int) (string, bool) {
	if day < int(time.Sunday) || day > int(time.Saturday) {
		return "", false
	}
	return time.Weekday(day).String(), true
}

// Describe renders settings as a short sentence such as "Monthly on the 15th".
func Describe(s domain.CadenceSettings) string {
	switch s.Cadence {
	case domain.CadenceWeekly:
		name := "—"
		if s.WeeklyDayOfWeek != nil {
			if n, ok := WeekdayName(*s.WeeklyDayOfWeek); ok {
				name = n
			}
		}
		return "Weekly on " + name
	case domain.CadenceTwiceMonthly:
		if s.TwiceMonthlyFirstDay == nil || s.TwiceMonthlySecondDay == nil {
			return "Twice per month"
		}
		return fmt.Sprintf("Twice per month on the %s and %s",
			Ordinal(*s.TwiceMonthlyFirstDay), Ordinal(*s.TwiceMonthlySecondDay))
	case domain.CadenceMonthly:
		if s.MonthlyDay == nil {
			return "Monthly"
		}
		return "Monthly on the " + Ordinal(*s.MonthlyDay)
	}
	return "Custom cadence"
}
