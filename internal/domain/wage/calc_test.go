package wage

import (
	"math"
	"testing"
	"time"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestComputeMorningWeekday(t *testing.T) {
	out, err := Compute(DailyInput{
		Shift:          ShiftMorning,
		Day:            time.Wednesday,
		BaseHourlyRate: 2750,
		SeniorityBonus: 25,
	})
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	if out.Hours.Normal != 8 || out.Hours.Night != 0 {
		t.Fatalf("unexpected hour allocation: %+v", out.Hours)
	}
	if !almostEqual(out.GrossBeforeBonus, 22200) {
		t.Fatalf("expected gross before bonus 22200, got %v", out.GrossBeforeBonus)
	}
	if !almostEqual(out.GrossFinal, 26640) {
		t.Fatalf("expected gross final 26640, got %v", out.GrossFinal)
	}
}

func TestComputeSaturdayMorning(t *testing.T) {
	out, err := Compute(DailyInput{
		Shift:          ShiftMorning,
		Day:            time.Saturday,
		BaseHourlyRate: 2750,
		SeniorityBonus: 25,
	})
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	if out.Hours.Normal != 7 || out.Hours.Saturday100 != 1 {
		t.Fatalf("unexpected hour allocation: %+v", out.Hours)
	}
	// 7 normal hours at 2775 effective plus one Saturday-100% hour at
	// 2775 * 1.20 * 2 = 6660.
	if !almostEqual(out.Saturday100Amount, 6660) {
		t.Fatalf("expected saturday amount 6660, got %v", out.Saturday100Amount)
	}
	if !almostEqual(out.GrossBeforeBonus, 26085) {
		t.Fatalf("expected gross before bonus 26085, got %v", out.GrossBeforeBonus)
	}
	if !almostEqual(out.GrossFinal, 31302) {
		t.Fatalf("expected gross final 31302, got %v", out.GrossFinal)
	}
}

func TestComputeAfternoonWeekday(t *testing.T) {
	out, err := Compute(DailyInput{
		Shift:          ShiftAfternoon,
		Day:            time.Monday,
		BaseHourlyRate: 2750,
		SeniorityBonus: 25,
	})
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	if out.Hours.Normal != 7 || out.Hours.Night != 1 {
		t.Fatalf("unexpected hour allocation: %+v", out.Hours)
	}
	// 7*2750 + 1*2750*1.30 + 8*25
	if !almostEqual(out.GrossBeforeBonus, 23025) {
		t.Fatalf("expected gross before bonus 23025, got %v", out.GrossBeforeBonus)
	}
}

func TestComputeNightWeekday(t *testing.T) {
	out, err := Compute(DailyInput{
		Shift:          ShiftNight,
		Day:            time.Tuesday,
		BaseHourlyRate: 2750,
		SeniorityBonus: 25,
	})
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	if out.Hours.Night != 7 || out.Hours.Night50 != 1 {
		t.Fatalf("unexpected hour allocation: %+v", out.Hours)
	}
	// night-50 hour: (2750+25+825) * 1.2045 * 1.5 = 6504.3
	if !almostEqual(out.Night50Amount, 6504.3) {
		t.Fatalf("expected night50 amount 6504.3, got %v", out.Night50Amount)
	}
	// 7*2750*1.30 + 7*25 + 6504.3
	if !almostEqual(out.GrossBeforeBonus, 31704.3) {
		t.Fatalf("expected gross before bonus 31704.3, got %v", out.GrossBeforeBonus)
	}
}

func TestComputeSundayNight(t *testing.T) {
	out, err := Compute(DailyInput{
		Shift:          ShiftNight,
		Day:            time.Sunday,
		BaseHourlyRate: 2750,
		SeniorityBonus: 25,
	})
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	if out.Hours.Night != 6 || out.Hours.Night100 != 2 {
		t.Fatalf("unexpected hour allocation: %+v", out.Hours)
	}
	// 6*2750*1.30 + 6*25 + 2*(3600*1.2045)*2
	if !almostEqual(out.GrossBeforeBonus, 38944.8) {
		t.Fatalf("expected gross before bonus 38944.8, got %v", out.GrossBeforeBonus)
	}
}

func TestComputeSaturdayAfternoon(t *testing.T) {
	out, err := Compute(DailyInput{
		Shift:          ShiftAfternoon,
		Day:            time.Saturday,
		BaseHourlyRate: 2750,
		SeniorityBonus: 25,
	})
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	if out.Hours.Saturday100 != 7 || out.Hours.Night100 != 1 {
		t.Fatalf("unexpected hour allocation: %+v", out.Hours)
	}
	if !almostEqual(out.GrossBeforeBonus, 7*6660+8672.4) {
		t.Fatalf("unexpected gross before bonus: %v", out.GrossBeforeBonus)
	}
}

func TestComputeHolidayOverridesApportionment(t *testing.T) {
	for _, shift := range []Shift{ShiftMorning, ShiftAfternoon, ShiftNight} {
		for day := time.Sunday; day <= time.Saturday; day++ {
			out, err := Compute(DailyInput{
				Shift:          shift,
				Day:            day,
				BaseHourlyRate: 3000,
				SeniorityBonus: 50,
				IsHoliday:      true,
			})
			if err != nil {
				t.Fatalf("compute failed for %s/%s: %v", shift, day, err)
			}
			if out.Hours.Holiday != 8 || out.Hours.Normal != 0 || out.Hours.Night != 0 {
				t.Fatalf("holiday must override apportionment, got %+v", out.Hours)
			}
			if !almostEqual(out.GrossBeforeBonus, 29280) {
				t.Fatalf("expected 8*(3050)*1.20 = 29280 for %s/%s, got %v", shift, day, out.GrossBeforeBonus)
			}
			if !almostEqual(out.GrossFinal, 35136) {
				t.Fatalf("expected gross final 35136, got %v", out.GrossFinal)
			}
		}
	}
}

func TestComputePresenceBonusAlwaysApplied(t *testing.T) {
	inputs := []DailyInput{
		{Shift: ShiftMorning, Day: time.Monday, BaseHourlyRate: 2750, SeniorityBonus: 25},
		{Shift: ShiftAfternoon, Day: time.Saturday, BaseHourlyRate: 3120, SeniorityBonus: 96},
		{Shift: ShiftNight, Day: time.Sunday, BaseHourlyRate: 2854, SeniorityBonus: 0, ExtraHours: 2},
		{Shift: ShiftMorning, Day: time.Friday, BaseHourlyRate: 3000, SeniorityBonus: 50, IsHoliday: true},
	}
	for _, in := range inputs {
		out, err := Compute(in)
		if err != nil {
			t.Fatalf("compute failed: %v", err)
		}
		if !almostEqual(out.GrossFinal, out.GrossBeforeBonus*1.20) {
			t.Fatalf("expected final = before * 1.20, got before=%v final=%v", out.GrossBeforeBonus, out.GrossFinal)
		}
		if !almostEqual(out.PresenceBonus, out.GrossBeforeBonus*0.20) {
			t.Fatalf("unexpected presence bonus %v for before %v", out.PresenceBonus, out.GrossBeforeBonus)
		}
	}
}

func TestComputeOvertime(t *testing.T) {
	day, err := Compute(DailyInput{
		Shift:          ShiftMorning,
		Day:            time.Monday,
		BaseHourlyRate: 2750,
		SeniorityBonus: 25,
		ExtraHours:     2,
	})
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	if !almostEqual(day.OvertimeAmount, 2*2750*1.5) {
		t.Fatalf("expected day overtime 8250, got %v", day.OvertimeAmount)
	}

	night, err := Compute(DailyInput{
		Shift:          ShiftNight,
		Day:            time.Monday,
		BaseHourlyRate: 2750,
		SeniorityBonus: 25,
		ExtraHours:     1,
	})
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	if !almostEqual(night.OvertimeAmount, 2750*1.3*1.5) {
		t.Fatalf("expected night overtime 5362.5, got %v", night.OvertimeAmount)
	}
}

func TestComputeAdditionalPercent(t *testing.T) {
	out, err := Compute(DailyInput{
		Shift:             ShiftMorning,
		Day:               time.Monday,
		BaseHourlyRate:    2750,
		SeniorityBonus:    25,
		AdditionalPercent: 10,
	})
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	// 10% of the basic normal+night amounts (8*2750), seniority excluded.
	if !almostEqual(out.AdditionalAmount, 2200) {
		t.Fatalf("expected additional 2200, got %v", out.AdditionalAmount)
	}
}

func TestComputeNetPayable(t *testing.T) {
	out, err := Compute(DailyInput{
		Shift:          ShiftMorning,
		Day:            time.Monday,
		BaseHourlyRate: 2750,
		SeniorityBonus: 25,
	})
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	if !almostEqual(out.NetPayable, out.GrossFinal*0.80) {
		t.Fatalf("expected net = final * 0.80, got %v", out.NetPayable)
	}
}

func TestComputeDeterministic(t *testing.T) {
	in := DailyInput{
		Shift:          ShiftNight,
		Day:            time.Saturday,
		BaseHourlyRate: 3182,
		SeniorityBonus: 114,
		ExtraHours:     3,
	}
	first, err := Compute(in)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	second, err := Compute(in)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical breakdowns, got %+v vs %+v", first, second)
	}
}

func TestComputeUnknownShift(t *testing.T) {
	if _, err := Compute(DailyInput{Shift: "siesta", Day: time.Monday, BaseHourlyRate: 2750}); err != ErrUnknownShift {
		t.Fatalf("expected ErrUnknownShift, got %v", err)
	}
}
