package workday

import (
	"fmt"
	"time"

	"jornal/internal/domain/wage"
)

func atNoon(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, t.Location())
}

// FortnightRange returns [1..15] or [16..last day] of the given month.
func FortnightRange(year int, month time.Month, second bool) (time.Time, time.Time) {
	if second {
		// Day 0 of the next month is the last day of this one.
		last := time.Date(year, month+1, 0, 12, 0, 0, 0, time.Local)
		return time.Date(year, month, 16, 12, 0, 0, 0, time.Local), last
	}
	return time.Date(year, month, 1, 12, 0, 0, 0, time.Local),
		time.Date(year, month, 15, 12, 0, 0, 0, time.Local)
}

// FortnightOf returns the fortnight containing the given day.
func FortnightOf(day time.Time) (time.Time, time.Time) {
	return FortnightRange(day.Year(), day.Month(), day.Day() >= 16)
}

// MonthRange returns the first and last day of the given month.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	return time.Date(year, month, 1, 12, 0, 0, 0, time.Local),
		time.Date(year, month+1, 0, 12, 0, 0, 0, time.Local)
}

func presenceImpact(absences int) string {
	switch absences {
	case 0:
		return "no absences"
	case 1:
		return "1 absence impacts the presence bonus"
	case 2:
		return "2 absences impact the presence bonus"
	default:
		return fmt.Sprintf("%d absences impact the presence bonus", absences)
	}
}

// AggregatePeriod totals the stored records whose date falls inside
// [start, end] inclusive. The non-remunerative supplement is added exactly
// when the range closes on or after the 16th, keyed by the end month, so it
// lands once per month whether the caller sums fortnights or whole months.
func (s *Service) AggregatePeriod(start, end time.Time) PeriodSummary {
	start, end = atNoon(start), atNoon(end)

	summary := PeriodSummary{
		Start: start.Format(DateKeyLayout),
		End:   end.Format(DateKeyLayout),
	}

	for _, record := range s.ListDays(start, end) {
		summary.TotalGross += record.GrossFinal
		summary.TotalNetPayable += record.NetPayable
		summary.TotalExtraHours += record.ExtraHours
		summary.DaysWorked++
		if record.AbsentDueToLateness {
			summary.AbsenceCount++
		}
		if record.IsHoliday {
			summary.HolidaysWorked++
		}
		switch time.Weekday(record.DayOfWeek) {
		case time.Saturday:
			summary.SaturdaysWorked++
		case time.Sunday:
			summary.SundaysWorked++
		}
	}

	summary.PresenceImpact = presenceImpact(summary.AbsenceCount)

	if end.Day() >= 16 {
		summary.SecondFortnight = true
		summary.NonRemunerative = s.tables.NonRemunerativeSum(wage.MonthKey(end))
	}
	summary.FinalTotal = summary.TotalGross + summary.NonRemunerative

	return summary
}
