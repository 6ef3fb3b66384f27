// Package cadence normalizes, describes and advances allocation schedules.
package cadence

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/profit_first_app/internal/apperrors"
	"github.com/SscSPs/profit_first_app/internal/core/domain"
)

const (
	DefaultWeeklyDay             = int(time.Wednesday)
	DefaultTwiceMonthlyFirstDay  = 10
	DefaultTwiceMonthlySecondDay = 25
	DefaultMonthlyDay            = 15

	MinDay = 1
	MaxDay = 31
)

// ClampDay bounds a day of month to [1, 31].
func ClampDay(day int) int {
	return min(max(day, MinDay), MaxDay)
}

func intPtr(v int) *int { return &v }

// Normalize turns caller input into storable settings: parameters of other
// cadences are cleared, missing parameters get defaults, month days are
// clamped and a twice monthly second day is raised to the first when it falls
// before it. The next allocation date is
// kept as supplied but must be an ISO calendar date.
func Normalize(in domain.CadenceInput) (domain.CadenceSettings, error) {
	params, err := normalizeParams(in)
	if err != nil {
		return domain.CadenceSettings{}, err
	}

	date := strings.TrimSpace(in.NextAllocationDate)
	if date == "" {
		return domain.CadenceSettings{}, apperrors.NewValidationFailedError("next allocation date is required")
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return domain.CadenceSettings{}, apperrors.NewValidationFailedError(
			fmt.Sprintf("next allocation date %q must be formatted as YYYY-MM-DD", in.NextAllocationDate))
	}

	return domain.CadenceSettings{
		Cadence:               params.Cadence,
		WeeklyDayOfWeek:       params.WeeklyDayOfWeek,
		TwiceMonthlyFirstDay:  params.TwiceMonthlyFirstDay,
		TwiceMonthlySecondDay: params.TwiceMonthlySecondDay,
		MonthlyDay:            params.MonthlyDay,
		NextAllocationDate:    date,
	}, nil
}

func normalizeParams(in domain.CadenceInput) (domain.CadenceInput, error) {
	out := domain.CadenceInput{Cadence: in.Cadence, NextAllocationDate: in.NextAllocationDate}

	switch in.Cadence {
	case domain.CadenceWeekly:
		day := DefaultWeeklyDay
		if in.WeeklyDayOfWeek != nil {
			day = *in.WeeklyDayOfWeek
		}
		if day < int(time.Sunday) || day > int(time.Saturday) {
			return domain.CadenceInput{}, apperrors.NewValidationFailedError(
				fmt.Sprintf("weekly day of week must be between 0 (Sunday) and 6 (Saturday), got %d", day))
		}
		out.WeeklyDayOfWeek = intPtr(day)
	case domain.CadenceTwiceMonthly:
		first, second := DefaultTwiceMonthlyFirstDay, DefaultTwiceMonthlySecondDay
		if in.TwiceMonthlyFirstDay != nil {
			first = ClampDay(*in.TwiceMonthlyFirstDay)
		}
		if in.TwiceMonthlySecondDay != nil {
			second = ClampDay(*in.TwiceMonthlySecondDay)
		}
		out.TwiceMonthlyFirstDay = intPtr(first)
		out.TwiceMonthlySecondDay = intPtr(max(first, second))
	case domain.CadenceMonthly:
		day := DefaultMonthlyDay
		if in.MonthlyDay != nil {
			day = ClampDay(*in.MonthlyDay)
		}
		out.MonthlyDay = intPtr(day)
	default:
		return domain.CadenceInput{}, apperrors.NewValidationFailedError(
			fmt.Sprintf("unknown cadence %q; expected weekly, twice_monthly or monthly", in.Cadence))
	}
	return out, nil
}

// Apply normalizes in as an edit of the stored settings. When a twice monthly
// pair arrives out of order and only the second day changed, the first day is
// lowered to it; any other out of order pair raises the second day.
func Apply(stored domain.CadenceSettings, in domain.CadenceInput) (domain.CadenceSettings, error) {
	if in.Cadence == domain.CadenceTwiceMonthly && in.TwiceMonthlyFirstDay != nil && in.TwiceMonthlySecondDay != nil {
		first, second := *in.TwiceMonthlyFirstDay, *in.TwiceMonthlySecondDay
		if ClampDay(first) > ClampDay(second) {
			if stored.Cadence == domain.CadenceTwiceMonthly &&
				sameDay(stored.TwiceMonthlyFirstDay, first) && !sameDay(stored.TwiceMonthlySecondDay, second) {
				in = SetTwiceMonthlySecondDay(in, second)
			} else {
				in = SetTwiceMonthlyFirstDay(in, first)
			}
		}
	}
	return Normalize(in)
}

func sameDay(stored *int, day int) bool {
	return stored != nil && *stored == ClampDay(day)
}

// SetTwiceMonthlyFirstDay sets the first day, raising the second day when
// it would otherwise fall before the first.
func SetTwiceMonthlyFirstDay(in domain.CadenceInput, day int) domain.CadenceInput {
	first := ClampDay(day)
	in.TwiceMonthlyFirstDay = intPtr(first)
	if in.TwiceMonthlySecondDay == nil || *in.TwiceMonthlySecondDay < first {
		in.TwiceMonthlySecondDay = intPtr(first)
	}
	return in
}

// SetTwiceMonthlySecondDay sets the second day, lowering the first day when
// it would otherwise fall after the second.
func SetTwiceMonthlySecondDay(in domain.CadenceInput, day int) domain.CadenceInput {
	second := ClampDay(day)
	in.TwiceMonthlySecondDay = intPtr(second)
	if in.TwiceMonthlyFirstDay == nil || *in.TwiceMonthlyFirstDay > second {
		in.TwiceMonthlyFirstDay = intPtr(second)
	}
	return in
}

// Default is the cadence a company gets before anyone configures one:
// monthly on the 15th, starting today.
func Default(companyID string, today time.Time) domain.CadenceSettings {
	return domain.CadenceSettings{
		CompanyID:          companyID,
		Cadence:            domain.CadenceMonthly,
		MonthlyDay:         intPtr(DefaultMonthlyDay),
		NextAllocationDate: today.Format(domain.DateLayout),
	}
}
