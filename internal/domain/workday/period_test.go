package workday

import (
	"context"
	"testing"
	"time"

	"jornal/internal/domain/wage"
)

func mustRegister(t *testing.T, svc *Service, in RegisterInput) Record {
	t.Helper()
	record, err := svc.RegisterDay(context.Background(), in)
	if err != nil {
		t.Fatalf("RegisterDay(%s): %v", in.Date, err)
	}
	return record
}

func TestAggregatePeriodFortnightsSumToMonth(t *testing.T) {
	svc := newTestService(newFakeStore(), fakeHolidays{})

	dates := []string{"2025-06-02", "2025-06-10", "2025-06-16", "2025-06-21", "2025-06-22"}
	for _, date := range dates {
		mustRegister(t, svc, RegisterInput{
			Date: date, Shift: wage.ShiftMorning, Category: "A", SeniorityYears: 1,
		})
	}

	firstStart, firstEnd := FortnightRange(2025, time.June, false)
	secondStart, secondEnd := FortnightRange(2025, time.June, true)
	monthStart, monthEnd := MonthRange(2025, time.June)

	first := svc.AggregatePeriod(firstStart, firstEnd)
	second := svc.AggregatePeriod(secondStart, secondEnd)
	month := svc.AggregatePeriod(monthStart, monthEnd)

	if first.DaysWorked != 2 || second.DaysWorked != 3 || month.DaysWorked != 5 {
		t.Fatalf("days worked = %d/%d/%d, want 2/3/5", first.DaysWorked, second.DaysWorked, month.DaysWorked)
	}
	if !closeTo(first.TotalGross+second.TotalGross, month.TotalGross) {
		t.Fatalf("fortnight grosses %v + %v != month gross %v", first.TotalGross, second.TotalGross, month.TotalGross)
	}
	if !closeTo(first.FinalTotal+second.FinalTotal, month.FinalTotal) {
		t.Fatalf("fortnight finals %v + %v != month final %v", first.FinalTotal, second.FinalTotal, month.FinalTotal)
	}
	if !closeTo(first.TotalNetPayable+second.TotalNetPayable, month.TotalNetPayable) {
		t.Fatalf("fortnight nets %v + %v != month net %v", first.TotalNetPayable, second.TotalNetPayable, month.TotalNetPayable)
	}
}

func TestAggregatePeriodSupplementSecondFortnightOnly(t *testing.T) {
	svc := newTestService(newFakeStore(), fakeHolidays{})
	mustRegister(t, svc, RegisterInput{
		Date: "2025-06-20", Shift: wage.ShiftMorning, Category: "A", SeniorityYears: 1,
	})

	firstStart, firstEnd := FortnightRange(2025, time.June, false)
	first := svc.AggregatePeriod(firstStart, firstEnd)
	if first.SecondFortnight || first.NonRemunerative != 0 {
		t.Fatalf("first fortnight carries supplement: %+v", first)
	}

	secondStart, secondEnd := FortnightRange(2025, time.June, true)
	second := svc.AggregatePeriod(secondStart, secondEnd)
	if !second.SecondFortnight {
		t.Fatal("second fortnight not flagged")
	}
	if !closeTo(second.NonRemunerative, 315000) {
		t.Fatalf("supplement = %v, want 315000 for June 2025", second.NonRemunerative)
	}
	if !closeTo(second.FinalTotal, second.TotalGross+315000) {
		t.Fatalf("final = %v, want gross %v plus supplement", second.FinalTotal, second.TotalGross)
	}

	monthStart, monthEnd := MonthRange(2025, time.June)
	month := svc.AggregatePeriod(monthStart, monthEnd)
	if !closeTo(month.NonRemunerative, 315000) {
		t.Fatalf("whole month supplement = %v, want 315000", month.NonRemunerative)
	}
}

func TestAggregatePeriodUndefinedSupplementMonth(t *testing.T) {
	svc := newTestService(newFakeStore(), fakeHolidays{})
	start, end := FortnightRange(2025, time.July, true)
	summary := svc.AggregatePeriod(start, end)
	if !summary.SecondFortnight {
		t.Fatal("second fortnight not flagged")
	}
	if !closeTo(summary.NonRemunerative, 210000) {
		t.Fatalf("supplement = %v, want 210000 for July 2025", summary.NonRemunerative)
	}

	start, end = FortnightRange(2026, time.August, true)
	summary = svc.AggregatePeriod(start, end)
	if summary.NonRemunerative != 0 {
		t.Fatalf("supplement = %v, want 0 for a month with none defined", summary.NonRemunerative)
	}
}

func TestAggregatePeriodCounts(t *testing.T) {
	svc := newTestService(newFakeStore(), fakeHolidays{"2025-06-16": true})

	mustRegister(t, svc, RegisterInput{
		Date: "2025-06-16", Shift: wage.ShiftMorning, Category: "A", SeniorityYears: 1,
	})
	mustRegister(t, svc, RegisterInput{
		Date: "2025-06-21", Shift: wage.ShiftMorning, Category: "A", SeniorityYears: 1, ExtraHours: 2,
	})
	mustRegister(t, svc, RegisterInput{
		Date: "2025-06-22", Shift: wage.ShiftNight, Category: "A", SeniorityYears: 1,
	})
	mustRegister(t, svc, RegisterInput{
		Date: "2025-06-23", Shift: wage.ShiftMorning, Category: "A", SeniorityYears: 1, EntryTime: "06:30",
	})

	start, end := MonthRange(2025, time.June)
	summary := svc.AggregatePeriod(start, end)

	if summary.HolidaysWorked != 1 {
		t.Fatalf("holidays = %d, want 1", summary.HolidaysWorked)
	}
	if summary.SaturdaysWorked != 1 || summary.SundaysWorked != 1 {
		t.Fatalf("weekend counts = %d/%d, want 1/1", summary.SaturdaysWorked, summary.SundaysWorked)
	}
	if summary.TotalExtraHours != 2 {
		t.Fatalf("extra hours = %d, want 2", summary.TotalExtraHours)
	}
	if summary.AbsenceCount != 1 {
		t.Fatalf("absences = %d, want 1", summary.AbsenceCount)
	}
	if summary.PresenceImpact != "1 absence impacts the presence bonus" {
		t.Fatalf("presence impact = %q", summary.PresenceImpact)
	}
}

func TestPresenceImpactMessages(t *testing.T) {
	cases := []struct {
		absences int
		want     string
	}{
		{0, "no absences"},
		{1, "1 absence impacts the presence bonus"},
		{2, "2 absences impact the presence bonus"},
		{5, "5 absences impact the presence bonus"},
	}
	for _, tc := range cases {
		if got := presenceImpact(tc.absences); got != tc.want {
			t.Fatalf("presenceImpact(%d) = %q, want %q", tc.absences, got, tc.want)
		}
	}
}

func TestFortnightRanges(t *testing.T) {
	start, end := FortnightRange(2025, time.June, false)
	if start.Day() != 1 || end.Day() != 15 {
		t.Fatalf("first fortnight = %v..%v", start, end)
	}

	start, end = FortnightRange(2025, time.June, true)
	if start.Day() != 16 || end.Day() != 30 {
		t.Fatalf("second fortnight of June = %v..%v", start, end)
	}

	// February has no fixed length; day 0 of March resolves it.
	_, end = FortnightRange(2024, time.February, true)
	if end.Day() != 29 {
		t.Fatalf("second fortnight of Feb 2024 ends on %d, want 29", end.Day())
	}

	start, end = FortnightOf(time.Date(2025, time.June, 20, 9, 0, 0, 0, time.Local))
	if start.Day() != 16 || end.Day() != 30 {
		t.Fatalf("FortnightOf(June 20) = %v..%v", start, end)
	}
	start, _ = FortnightOf(time.Date(2025, time.June, 3, 9, 0, 0, 0, time.Local))
	if start.Day() != 1 {
		t.Fatalf("FortnightOf(June 3) starts on %d, want 1", start.Day())
	}

	start, end = MonthRange(2025, time.December)
	if start.Day() != 1 || end.Day() != 31 || end.Month() != time.December {
		t.Fatalf("MonthRange(December) = %v..%v", start, end)
	}
}
