package wage

type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
	ShiftNight     Shift = "night"
)

const (
	// ScheduledHours is the standard shift length (jornada).
	ScheduledHours = 8

	// DefaultPresenceBonusRate is the flat presentismo uplift.
	DefaultPresenceBonusRate = 0.20

	// DefaultWithholdingRate turns the gross figure into the informational
	// net payable, as on the printed receipt.
	DefaultWithholdingRate = 0.20

	// nightLoading is the Art. 11 nocturnal differential on the base rate.
	nightLoading = 1.30

	// statutoryLoading compounds on top of base+seniority+nocturnidad for
	// the 50%/100% night premium buckets.
	statutoryLoading = 1.2045

	saturdayPremium = 1.20
	holidayPremium  = 1.20
	overtimeFactor  = 1.5
)

// SeniorityBuckets are the only seniority values the convention tables
// define, in ascending order.
var SeniorityBuckets = []int{1, 3, 5, 7, 9, 12, 15, 18, 22, 26, 30, 35, 40}

// Categories are the convention job categories.
var Categories = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

// StandardEntryTimes maps each shift to its scheduled entry, HH:MM.
var StandardEntryTimes = map[Shift]string{
	ShiftMorning:   "06:00",
	ShiftAfternoon: "14:00",
	ShiftNight:     "22:00",
}

func ValidShift(s Shift) bool {
	switch s {
	case ShiftMorning, ShiftAfternoon, ShiftNight:
		return true
	}
	return false
}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

func ValidSeniority(years int) bool {
	for _, bucket := range SeniorityBuckets {
		if bucket == years {
			return true
		}
	}
	return false
}
