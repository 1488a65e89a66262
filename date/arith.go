package date

import (
	"fmt"
	"time"
)

// IsLeap returns true if year is a leap year.
func IsLeap(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the number of days in month of year.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeap(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// Add shifts d by the given calendar offsets. Years and months are applied
// first and the day is clamped to the end of the resulting month, so
// Jan 31 plus one month is the last day of February. Days are then added
// as whole days. A result outside MinYear..MaxYear fails with ErrInvalidDate.
func (d Date) Add(years, months, days int) (Date, error) {
	total := d.year*12 + int(d.month) - 1 + years*12 + months
	year, month := floorDiv(total, 12), time.Month(total-floorDiv(total, 12)*12+1)
	if year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("%w: %s plus %d years %d months is year %d", ErrInvalidDate, d, years, months, year)
	}
	day := d.day
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	if days == 0 {
		return Date{year: year, month: month, day: day}, nil
	}
	shifted, err := FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, days))
	if err != nil {
		return Date{}, fmt.Errorf("%s plus %d days: %w", d, days, err)
	}
	return shifted, nil
}

// Edate shifts d by whole months, like the spreadsheet EDATE function.
func (d Date) Edate(months int) (Date, error) {
	return d.Add(0, months, 0)
}

func (d Date) AddDays(days int) (Date, error) {
	return d.Add(0, 0, days)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// EndOfMonth returns the last day of d's month.
func (d Date) EndOfMonth() Date {
	return Date{year: d.year, month: d.month, day: DaysInMonth(d.year, d.month)}
}

func (d Date) Weekday() time.Weekday {
	return d.AsExternal().Weekday()
}

func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Compare returns -1, 0 or +1 as d is before, equal to or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.year != o.year:
		return sign(d.year - o.year)
	case d.month != o.month:
		return sign(int(d.month) - int(o.month))
	default:
		return sign(d.day - o.day)
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }
func (d Date) Equal(o Date) bool  { return d == o }

// DaysUntil returns the number of days from d to o, negative if o is earlier.
func (d Date) DaysUntil(o Date) int {
	return o.julianDay() - d.julianDay()
}

func (d Date) julianDay() int {
	year, month, day := d.year, int(d.month), d.day
	// nolint:gomnd // well-known algorithm to calculate julian date number
	return day - 32075 + 1461*(year+4800+(month-14)/12)/4 + 367*(month-2-(month-14)/12*12)/12 -
		3*((year+4900+(month-14)/12)/100)/4
}
