package cadence

import (
	"fmt"
	"time"

	"github.com/SscSPs/profit_first_app/internal/apperrors"
	"github.com/SscSPs/profit_first_app/internal/core/domain"
)

// dateOf drops the clock part of t, keeping its calendar date in UTC.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// dayInMonth returns day of the given month, moved back to the last day when
// the month is shorter (31 -> 30 April, 28 or 29 February).
func dayInMonth(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, min(day, daysIn(year, month)), 0, 0, 0, 0, time.UTC)
}

// nextMonthDay is the first occurrence of day strictly after after.
func nextMonthDay(after time.Time, day int) time.Time {
	candidate := dayInMonth(after.Year(), after.Month(), day)
	if candidate.After(after) {
		return candidate
	}
	next := time.Date(after.Year(), after.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	return dayInMonth(next.Year(), next.Month(), day)
}

// NextRunAfter returns the first run date strictly after the calendar date of
// after. Month days past the end of a short month fire on its last day.
func NextRunAfter(s domain.CadenceSettings, after time.Time) (time.Time, error) {
	from := dateOf(after)

	switch s.Cadence {
	case domain.CadenceWeekly:
		if s.WeeklyDayOfWeek == nil {
			return time.Time{}, missingParam(s.Cadence)
		}
		target := time.Weekday(*s.WeeklyDayOfWeek)
		if target < time.Sunday || target > time.Saturday {
			return time.Time{}, apperrors.NewValidationFailedError(
				fmt.Sprintf("weekly day of week %d is out of range", *s.WeeklyDayOfWeek))
		}
		next := from.AddDate(0, 0, 1)
		delta := (int(target) - int(next.Weekday()) + 7) % 7
		return next.AddDate(0, 0, delta), nil
	case domain.CadenceTwiceMonthly:
		if s.TwiceMonthlyFirstDay == nil || s.TwiceMonthlySecondDay == nil {
			return time.Time{}, missingParam(s.Cadence)
		}
		a := nextMonthDay(from, ClampDay(*s.TwiceMonthlyFirstDay))
		b := nextMonthDay(from, ClampDay(*s.TwiceMonthlySecondDay))
		if b.Before(a) {
			return b, nil
		}
		return a, nil
	case domain.CadenceMonthly:
		if s.MonthlyDay == nil {
			return time.Time{}, missingParam(s.Cadence)
		}
		return nextMonthDay(from, ClampDay(*s.MonthlyDay)), nil
	}
	return time.Time{}, apperrors.NewValidationFailedError(fmt.Sprintf("unknown cadence %q", s.Cadence))
}

func missingParam(c domain.CadenceType) error {
	return apperrors.NewValidationFailedError(fmt.Sprintf("%s cadence is missing its day parameters", c))
}

// UpcomingRuns lists n run dates starting with the first run on or after the
// stored next allocation date.
func UpcomingRuns(s domain.CadenceSettings, n int) ([]time.Time, error) {
	if n <= 0 {
		return nil, nil
	}
	start, err := s.NextDate()
	if err != nil {
		return nil, apperrors.NewValidationFailedError(
			fmt.Sprintf("next allocation date %q is not a valid date", s.NextAllocationDate))
	}

	runs := make([]time.Time, 0, n)
	cursor := start.AddDate(0, 0, -1)
	for len(runs) < n {
		next, err := NextRunAfter(s, cursor)
		if err != nil {
			return nil, err
		}
		runs = append(runs, next)
		cursor = next
	}
	return runs, nil
}
