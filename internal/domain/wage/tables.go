package wage

import "time"

// MonthKey renders the table lookup key for a date, e.g. "2025-06".
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// Tables holds the convention lookup data. Absent hourly entries are an
// error, never zero; the tables are plain data so a convention update is a
// data change, not a code change.
type Tables struct {
	Hourly          map[string]map[string]float64 // category -> month key -> rate
	Seniority       map[int]map[string]float64    // years bucket -> month key -> per-hour bonus
	NonRemunerative map[string]float64            // month key -> flat amount
}

// HourlyRate returns the base hourly rate for a category and month.
func (t *Tables) HourlyRate(category, monthKey string) (float64, error) {
	byMonth, ok := t.Hourly[category]
	if !ok {
		return 0, &MissingRateError{Category: category, MonthKey: monthKey}
	}
	rate, ok := byMonth[monthKey]
	if !ok || rate <= 0 {
		return 0, &MissingRateError{Category: category, MonthKey: monthKey}
	}
	return rate, nil
}

// SeniorityBonus returns the per-hour seniority bonus, flooring years to the
// nearest defined bucket at or below. Years below the lowest bucket earn no
// bonus. A defined bucket with no entry for the month is an error; callers
// fall back to 0 with a warning.
func (t *Tables) SeniorityBonus(years int, monthKey string) (float64, error) {
	bucket := 0
	for _, b := range SeniorityBuckets {
		if b <= years {
			bucket = b
		}
	}
	if bucket == 0 {
		return 0, nil
	}
	byMonth, ok := t.Seniority[bucket]
	if !ok {
		return 0, &MissingSeniorityBonusError{Years: bucket, MonthKey: monthKey}
	}
	bonus, ok := byMonth[monthKey]
	if !ok {
		return 0, &MissingSeniorityBonusError{Years: bucket, MonthKey: monthKey}
	}
	return bonus, nil
}

// NonRemunerativeSum returns the second-fortnight supplement for a month,
// or 0 when the month has none defined.
func (t *Tables) NonRemunerativeSum(monthKey string) float64 {
	return t.NonRemunerative[monthKey]
}
