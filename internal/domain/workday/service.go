package workday

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"jornal/internal/domain/attendance"
	"jornal/internal/domain/wage"
)

// HolidayChecker is what the service needs from the holiday registry.
type HolidayChecker interface {
	Contains(day time.Time) bool
}

type Service struct {
	store            StoreAPI
	tables           *wage.Tables
	holidays         HolidayChecker
	presenceRate     float64
	withholdingRate  float64
	toleranceMinutes int
}

func NewService(store StoreAPI, tables *wage.Tables, holidays HolidayChecker) *Service {
	return &Service{
		store:            store,
		tables:           tables,
		holidays:         holidays,
		presenceRate:     wage.DefaultPresenceBonusRate,
		withholdingRate:  wage.DefaultWithholdingRate,
		toleranceMinutes: attendance.ToleranceMinutes,
	}
}

// WithRates overrides the presence-bonus and withholding rates.
func (s *Service) WithRates(presence, withholding float64) *Service {
	if presence > 0 {
		s.presenceRate = presence
	}
	if withholding > 0 {
		s.withholdingRate = withholding
	}
	return s
}

// WithTolerance overrides the lateness tolerance in minutes.
func (s *Service) WithTolerance(minutes int) *Service {
	if minutes >= 0 {
		s.toleranceMinutes = minutes
	}
	return s
}

// RegisterInput is the explicit request for registering one day. No ambient
// state: everything the computation needs travels in here.
type RegisterInput struct {
	Date              string     `json:"date"` // YYYY-MM-DD
	Shift             wage.Shift `json:"shift"`
	Category          string     `json:"category"`
	SeniorityYears    int        `json:"seniorityYears"`
	ExtraHours        int        `json:"extraHours"`
	EntryTime         string     `json:"entryTime"` // HH:MM, empty means on time
	AdditionalPercent float64    `json:"additionalPercent"`
}

func (in RegisterInput) validate() (time.Time, error) {
	day, err := time.ParseInLocation(DateKeyLayout, strings.TrimSpace(in.Date), time.Local)
	if err != nil {
		return time.Time{}, &InvalidInputError{Field: "date", Reason: "must be a valid YYYY-MM-DD date"}
	}
	if !wage.ValidShift(in.Shift) {
		return time.Time{}, &InvalidInputError{Field: "shift", Reason: "must be morning, afternoon or night"}
	}
	if !wage.ValidCategory(in.Category) {
		return time.Time{}, &InvalidInputError{Field: "category", Reason: "must be one of the convention categories A-H"}
	}
	if !wage.ValidSeniority(in.SeniorityYears) {
		return time.Time{}, &InvalidInputError{Field: "seniorityYears", Reason: "must be one of the convention seniority buckets"}
	}
	if in.ExtraHours < 0 {
		return time.Time{}, &InvalidInputError{Field: "extraHours", Reason: "must not be negative"}
	}
	if in.EntryTime != "" {
		if _, err := time.Parse("15:04", in.EntryTime); err != nil {
			return time.Time{}, &InvalidInputError{Field: "entryTime", Reason: "must be a valid HH:MM time"}
		}
	}
	return day, nil
}

// RegisterDay validates, resolves rates, evaluates attendance, computes the
// wage and persists the record. Nothing is written when any step fails.
func (s *Service) RegisterDay(ctx context.Context, in RegisterInput) (Record, error) {
	day, err := in.validate()
	if err != nil {
		return Record{}, err
	}

	monthKey := wage.MonthKey(day)
	baseRate, err := s.tables.HourlyRate(in.Category, monthKey)
	if err != nil {
		return Record{}, err
	}

	seniorityBonus, err := s.tables.SeniorityBonus(in.SeniorityYears, monthKey)
	if err != nil {
		var missing *wage.MissingSeniorityBonusError
		if !errors.As(err, &missing) {
			return Record{}, err
		}
		// Documented lossy fallback: pay without the bonus rather than
		// blocking the registration.
		slog.Warn("seniority bonus missing, using 0",
			"years", in.SeniorityYears, "month", monthKey)
		seniorityBonus = 0
	}

	standard, err := attendance.StandardEntry(day, in.Shift)
	if err != nil {
		return Record{}, err
	}
	actual := standard
	if in.EntryTime != "" {
		parsed, _ := time.Parse("15:04", in.EntryTime)
		actual = time.Date(day.Year(), day.Month(), day.Day(), parsed.Hour(), parsed.Minute(), 0, 0, day.Location())
	}
	presence := attendance.EvaluateWithTolerance(actual, standard, s.toleranceMinutes)

	isHoliday := s.holidays != nil && s.holidays.Contains(day)

	breakdown, err := wage.Compute(wage.DailyInput{
		Shift:             in.Shift,
		Day:               day.Weekday(),
		BaseHourlyRate:    baseRate,
		SeniorityBonus:    seniorityBonus,
		ExtraHours:        in.ExtraHours,
		IsHoliday:         isHoliday,
		PresenceBonusRate: s.presenceRate,
		AdditionalPercent: in.AdditionalPercent,
		WithholdingRate:   s.withholdingRate,
	})
	if err != nil {
		return Record{}, err
	}

	record := Record{
		DateKey:             day.Format(DateKeyLayout),
		Shift:               in.Shift,
		Category:            in.Category,
		SeniorityYears:      in.SeniorityYears,
		ScheduledHours:      wage.ScheduledHours,
		ExtraHours:          in.ExtraHours,
		EntryTime:           actual.Format("15:04"),
		ExitTime:            actual.Add(wage.ScheduledHours * time.Hour).Format("15:04"),
		LateMinutes:         presence.LateMinutes,
		AbsentDueToLateness: presence.AbsentDueToLateness,
		IsHoliday:           isHoliday,
		DayOfWeek:           int(day.Weekday()),
		BaseHourlyRate:      baseRate,
		SeniorityBonus:      seniorityBonus,
		GrossBeforeBonus:    breakdown.GrossBeforeBonus,
		PresenceBonus:       breakdown.PresenceBonus,
		GrossFinal:          breakdown.GrossFinal,
		NetPayable:          breakdown.NetPayable,
		Breakdown:           breakdown,
	}

	if err := s.store.Upsert(ctx, record); err != nil {
		return Record{}, fmt.Errorf("persist work record: %w", err)
	}
	return record, nil
}

// Preview computes the breakdown for an input without touching attendance
// or the store. A non-nil holidayOverride wins over the registry.
func (s *Service) Preview(in RegisterInput, holidayOverride *bool) (wage.Breakdown, error) {
	day, err := in.validate()
	if err != nil {
		return wage.Breakdown{}, err
	}

	monthKey := wage.MonthKey(day)
	baseRate, err := s.tables.HourlyRate(in.Category, monthKey)
	if err != nil {
		return wage.Breakdown{}, err
	}
	seniorityBonus, err := s.tables.SeniorityBonus(in.SeniorityYears, monthKey)
	if err != nil {
		var missing *wage.MissingSeniorityBonusError
		if !errors.As(err, &missing) {
			return wage.Breakdown{}, err
		}
		slog.Warn("seniority bonus missing, using 0",
			"years", in.SeniorityYears, "month", monthKey)
		seniorityBonus = 0
	}

	isHoliday := s.holidays != nil && s.holidays.Contains(day)
	if holidayOverride != nil {
		isHoliday = *holidayOverride
	}

	return wage.Compute(wage.DailyInput{
		Shift:             in.Shift,
		Day:               day.Weekday(),
		BaseHourlyRate:    baseRate,
		SeniorityBonus:    seniorityBonus,
		ExtraHours:        in.ExtraHours,
		IsHoliday:         isHoliday,
		PresenceBonusRate: s.presenceRate,
		AdditionalPercent: in.AdditionalPercent,
		WithholdingRate:   s.withholdingRate,
	})
}

func (s *Service) DeleteDay(ctx context.Context, dateKey string) error {
	if _, err := time.ParseInLocation(DateKeyLayout, dateKey, time.Local); err != nil {
		return &InvalidInputError{Field: "date", Reason: "must be a valid YYYY-MM-DD date"}
	}
	return s.store.Remove(ctx, dateKey)
}

func (s *Service) GetDay(dateKey string) (Record, error) {
	record, ok := s.store.Get(dateKey)
	if !ok {
		return Record{}, ErrRecordNotFound
	}
	return record, nil
}

// ListDays returns the records whose date falls in [from, to] inclusive,
// compared at local noon, in key order.
func (s *Service) ListDays(from, to time.Time) []Record {
	from, to = atNoon(from), atNoon(to)
	var out []Record
	for _, record := range s.store.All() {
		day, err := record.Date()
		if err != nil {
			continue
		}
		if !day.Before(from) && !day.After(to) {
			out = append(out, record)
		}
	}
	return out
}
