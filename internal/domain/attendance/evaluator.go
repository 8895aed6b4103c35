package attendance

import (
	"fmt"
	"time"

	"jornal/internal/domain/wage"
)

// ToleranceMinutes is how late an entry may be before the day counts as an
// absence for presence-bonus purposes.
const ToleranceMinutes = 15

type Result struct {
	LateMinutes         int  `json:"lateMinutes"`
	AbsentDueToLateness bool `json:"isAbsentDueToLateness"`
}

// StandardEntry builds the scheduled entry timestamp for a shift on the
// given calendar day.
func StandardEntry(day time.Time, shift wage.Shift) (time.Time, error) {
	raw, ok := wage.StandardEntryTimes[shift]
	if !ok {
		return time.Time{}, wage.ErrUnknownShift
	}
	parsed, err := time.Parse("15:04", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad standard entry %q: %w", raw, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), parsed.Hour(), parsed.Minute(), 0, 0, day.Location()), nil
}

// Evaluate computes lateness from the actual vs. scheduled entry using
// elapsed time. An actual entry more than 12 hours before the scheduled one
// is taken to belong to the next calendar day, so a 00:10 clock-in against a
// 22:00 night standard counts as 130 late minutes rather than none.
func Evaluate(actual, standard time.Time) Result {
	return EvaluateWithTolerance(actual, standard, ToleranceMinutes)
}

func EvaluateWithTolerance(actual, standard time.Time, toleranceMinutes int) Result {
	diff := actual.Sub(standard)
	if diff < -12*time.Hour {
		diff += 24 * time.Hour
	}

	late := 0
	if diff > 0 {
		late = int(diff.Minutes())
	}
	return Result{
		LateMinutes:         late,
		AbsentDueToLateness: late > toleranceMinutes,
	}
}
