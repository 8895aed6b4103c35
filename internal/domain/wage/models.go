package wage

import "time"

// DailyInput is everything Compute needs for one worked day. Rates come
// pre-resolved so the computation itself stays pure.
type DailyInput struct {
	Shift             Shift        `json:"shift"`
	Day               time.Weekday `json:"dayOfWeek"`
	BaseHourlyRate    float64      `json:"baseHourlyRate"`
	SeniorityBonus    float64      `json:"seniorityBonus"`
	ExtraHours        int          `json:"extraHours"`
	IsHoliday         bool         `json:"isHoliday"`
	PresenceBonusRate float64      `json:"presenceBonusRate"` // 0 means the default 20%
	AdditionalPercent float64      `json:"additionalPercent"` // optional adicional, percent of basic amounts
	WithholdingRate   float64      `json:"withholdingRate"`   // 0 means the default 20%
}

// HourAllocation apportions the shift into pay buckets.
type HourAllocation struct {
	Normal      int `json:"normal"`
	Night       int `json:"night"`
	Saturday100 int `json:"saturday100"`
	Night50     int `json:"night50"`
	Night100    int `json:"night100"`
	Holiday     int `json:"holiday"`
	Extra       int `json:"extra"`
}

// UnitRates are the per-concept hourly values snapshotted on each record for
// downstream reporting.
type UnitRates struct {
	NormalHour    float64 `json:"normalHourRate"`
	NightHour     float64 `json:"nightHourRate"`
	OvertimeDay   float64 `json:"overtimeDayRate"`
	OvertimeNight float64 `json:"overtimeNightRate"`
	HolidayDay    float64 `json:"holidayDayRate"`
	HolidayNight  float64 `json:"holidayNightRate"`
}

// Breakdown is the itemized result of one day's computation.
type Breakdown struct {
	Hours             HourAllocation `json:"hours"`
	NormalAmount      float64        `json:"normalAmount"`
	NightAmount       float64        `json:"nightAmount"`
	SeniorityAmount   float64        `json:"seniorityAmount"`
	AdditionalAmount  float64        `json:"additionalAmount"`
	Saturday100Amount float64        `json:"saturday100Amount"`
	Night50Amount     float64        `json:"night50Amount"`
	Night100Amount    float64        `json:"night100Amount"`
	HolidayAmount     float64        `json:"holidayAmount"`
	OvertimeAmount    float64        `json:"overtimeAmount"`
	GrossBeforeBonus  float64        `json:"grossDailyBeforeBonus"`
	PresenceBonus     float64        `json:"presenceBonusAmount"`
	GrossFinal        float64        `json:"grossDailyFinal"`
	NetPayable        float64        `json:"netPayable"`
	Rates             UnitRates      `json:"rates"`
}
