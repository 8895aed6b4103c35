package wage

import "time"

// hoursFor apportions the shift into pay buckets for the given day of week.
// Saturday reclassifies morning/afternoon hours into premium buckets; the
// night shift instead gets its Sunday split. A holiday overrides everything.
func hoursFor(shift Shift, day time.Weekday, holiday bool) (HourAllocation, error) {
	if !ValidShift(shift) {
		return HourAllocation{}, ErrUnknownShift
	}
	if holiday {
		return HourAllocation{Holiday: ScheduledHours}, nil
	}

	switch shift {
	case ShiftMorning:
		if day == time.Saturday {
			return HourAllocation{Normal: 7, Saturday100: 1}, nil
		}
		return HourAllocation{Normal: 8}, nil
	case ShiftAfternoon:
		if day == time.Saturday {
			return HourAllocation{Saturday100: 7, Night100: 1}, nil
		}
		return HourAllocation{Normal: 7, Night: 1}, nil
	case ShiftNight:
		if day == time.Sunday {
			return HourAllocation{Night: 6, Night100: 2}, nil
		}
		return HourAllocation{Night: 7, Night50: 1}, nil
	}
	return HourAllocation{}, ErrUnknownShift
}

// Compute turns one day's resolved inputs into an itemized gross wage.
// Pure: same input, same breakdown.
func Compute(in DailyInput) (Breakdown, error) {
	hours, err := hoursFor(in.Shift, in.Day, in.IsHoliday)
	if err != nil {
		return Breakdown{}, err
	}
	hours.Extra = in.ExtraHours

	base := in.BaseHourlyRate
	bonus := in.SeniorityBonus

	out := Breakdown{Hours: hours}
	out.Rates = UnitRates{
		NormalHour:    base + bonus,
		NightHour:     base*nightLoading + bonus,
		OvertimeDay:   base * overtimeFactor,
		OvertimeNight: base * nightLoading * overtimeFactor,
		HolidayDay:    (base + bonus) * holidayPremium,
		HolidayNight:  (base*nightLoading + bonus) * holidayPremium,
	}

	if hours.Normal > 0 {
		out.NormalAmount = float64(hours.Normal) * base
	}
	if hours.Night > 0 {
		out.NightAmount = float64(hours.Night) * base * nightLoading
	}

	// Seniority is a flat per-hour add over the basic (normal+night) hours,
	// not multiplied by the rate premiums.
	basicHours := hours.Normal + hours.Night
	if basicHours > 0 && bonus > 0 {
		out.SeniorityAmount = float64(basicHours) * bonus
	}

	basicAmount := out.NormalAmount + out.NightAmount
	if in.AdditionalPercent > 0 && basicAmount > 0 {
		out.AdditionalAmount = basicAmount * in.AdditionalPercent / 100
	}

	if hours.Saturday100 > 0 {
		out.Saturday100Amount = float64(hours.Saturday100) * (base + bonus) * saturdayPremium * 2
	}

	// Premium night buckets compound the statutory loading on
	// base + seniority + nocturnidad.
	if hours.Night50 > 0 || hours.Night100 > 0 {
		adjusted := (base + bonus + base*(nightLoading-1)) * statutoryLoading
		if hours.Night50 > 0 {
			out.Night50Amount = float64(hours.Night50) * adjusted * 1.5
		}
		if hours.Night100 > 0 {
			out.Night100Amount = float64(hours.Night100) * adjusted * 2
		}
	}

	if hours.Holiday > 0 {
		out.HolidayAmount = float64(hours.Holiday) * out.Rates.HolidayDay
	}

	if in.ExtraHours > 0 {
		overtimeRate := out.Rates.OvertimeDay
		if in.Shift == ShiftNight {
			overtimeRate = out.Rates.OvertimeNight
		}
		out.OvertimeAmount = float64(in.ExtraHours) * overtimeRate
	}

	out.GrossBeforeBonus = out.NormalAmount + out.NightAmount + out.SeniorityAmount +
		out.AdditionalAmount + out.Saturday100Amount + out.Night50Amount +
		out.Night100Amount + out.HolidayAmount + out.OvertimeAmount

	presenceRate := in.PresenceBonusRate
	if presenceRate <= 0 {
		presenceRate = DefaultPresenceBonusRate
	}
	out.PresenceBonus = out.GrossBeforeBonus * presenceRate
	out.GrossFinal = out.GrossBeforeBonus + out.PresenceBonus

	withholding := in.WithholdingRate
	if withholding <= 0 {
		withholding = DefaultWithholdingRate
	}
	out.NetPayable = out.GrossFinal * (1 - withholding)

	return out, nil
}
