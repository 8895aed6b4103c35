package wage

import (
	"errors"
	"fmt"
)

var ErrUnknownShift = errors.New("unknown shift")

// MissingRateError means the convention table has no hourly rate for the
// category/month pair. Nothing may be persisted when this is returned.
type MissingRateError struct {
	Category string
	MonthKey string
}

func (e *MissingRateError) Error() string {
	return fmt.Sprintf("no hourly rate for category %s in month %s", e.Category, e.MonthKey)
}

// MissingSeniorityBonusError means the seniority table covers the bucket but
// not the month. Callers fall back to a bonus of 0 and log a warning.
type MissingSeniorityBonusError struct {
	Years    int
	MonthKey string
}

func (e *MissingSeniorityBonusError) Error() string {
	return fmt.Sprintf("no seniority bonus for %d years in month %s", e.Years, e.MonthKey)
}
