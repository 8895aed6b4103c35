package workday

import (
	"time"

	"jornal/internal/domain/wage"
)

const DateKeyLayout = "2006-01-02"

// Record is the persisted outcome of registering one worked day. It is
// created whole, replaced whole, and never partially mutated; rates are
// snapshotted so later table updates cannot rewrite history.
type Record struct {
	DateKey             string         `json:"date"`
	Shift               wage.Shift     `json:"shift"`
	Category            string         `json:"category"`
	SeniorityYears      int            `json:"seniorityYears"`
	ScheduledHours      int            `json:"scheduledHours"`
	ExtraHours          int            `json:"extraHours"`
	EntryTime           string         `json:"actualEntryTime"`
	ExitTime            string         `json:"exitTime"`
	LateMinutes         int            `json:"lateMinutes"`
	AbsentDueToLateness bool           `json:"isAbsentDueToLateness"`
	IsHoliday           bool           `json:"isHoliday"`
	DayOfWeek           int            `json:"dayOfWeek"`
	BaseHourlyRate      float64        `json:"baseHourlyRate"`
	SeniorityBonus      float64        `json:"seniorityBonus"`
	GrossBeforeBonus    float64        `json:"grossDailyBeforeBonus"`
	PresenceBonus       float64        `json:"presenceBonusAmount"`
	GrossFinal          float64        `json:"grossDailyFinal"`
	NetPayable          float64        `json:"netPayable"`
	Breakdown           wage.Breakdown `json:"breakdown"`
}

// Date parses the record key as a local calendar day at noon. Noon keeps
// range comparisons clear of DST and midnight boundary trouble.
func (r Record) Date() (time.Time, error) {
	parsed, err := time.ParseInLocation(DateKeyLayout, r.DateKey, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return atNoon(parsed), nil
}

type PeriodSummary struct {
	Start           string  `json:"start"`
	End             string  `json:"end"`
	TotalGross      float64 `json:"totalGross"`
	DaysWorked      int     `json:"daysWorked"`
	AbsenceCount    int     `json:"absenceCount"`
	PresenceImpact  string  `json:"presenceImpact"`
	SecondFortnight bool    `json:"secondFortnight"`
	NonRemunerative float64 `json:"nonRemunerativeSupplement"`
	FinalTotal      float64 `json:"finalTotal"`
	TotalNetPayable float64 `json:"totalNetPayable"`
	TotalExtraHours int     `json:"totalExtraHours"`
	HolidaysWorked  int     `json:"holidaysWorked"`
	SaturdaysWorked int     `json:"saturdaysWorked"`
	SundaysWorked   int     `json:"sundaysWorked"`
}
