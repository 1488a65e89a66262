// Package date provides Date, a calendar date value that can be built from
// many input shapes, shifted by calendar offsets and adjusted to business
// days of a named market calendar.
//
// A Date can be created from any of:
//
//	20201001
//	"20201001", "2020-10-01", "2020.10.01"
//	time.Time or any value with a Date() (int, time.Month, int) method
//	Date
//	a fmt.Stringer rendering a long form date such as "October 1st, 2020"
//	2020, 10, 1
//
// A fmt.Stringer whose display form is not a date fails with both
// ErrInvalidType and ErrInvalidDate.
//
// Business day questions are answered by a Provider, calendar.Default
// unless another one is passed explicitly.
package date

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const (
	MinYear = 1
	MaxYear = 9999
)

// Date is an immutable calendar date. The zero value is not a valid date.
// Dates are comparable with ==.
type Date struct {
	year  int
	month time.Month
	day   int
}

// ymder is satisfied by time.Time and other date/datetime-like values.
type ymder interface {
	Date() (year int, month time.Month, day int)
}

// New builds a Date from one value of a supported shape, or from a year,
// month and day triple.
func New(args ...interface{}) (Date, error) {
	switch len(args) {
	case 1:
		digits, err := normalize(args[0])
		if err != nil {
			return Date{}, err
		}
		return fromDigits(digits)
	case 3:
		var ymd [3]int
		for i, a := range args {
			v, ok := intArg(a)
			if !ok {
				return Date{}, fmt.Errorf("%w: %T in year/month/day", ErrInvalidType, a)
			}
			ymd[i] = v
		}
		return FromYMD(ymd[0], ymd[1], ymd[2])
	default:
		return Date{}, fmt.Errorf("%w: got %d", ErrInvalidArity, len(args))
	}
}

// MustNew is like New but panics on error. Use it for constants and tests.
func MustNew(args ...interface{}) Date {
	d, err := New(args...)
	if err != nil {
		panic(err)
	}
	return d
}

// FromYMD validates and returns the date year-month-day.
func FromYMD(year, month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("%w: year %d out of range", ErrInvalidDate, year)
	}
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("%w: month %d", ErrInvalidDate, month)
	}
	if day < 1 || day > DaysInMonth(year, time.Month(month)) {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return Date{year: year, month: time.Month(month), day: day}, nil
}

// Parse reads YYYYMMDD, YYYY-MM-DD or YYYY.MM.DD.
func Parse(s string) (Date, error) {
	return fromDigits(stripSeparators(s))
}

// ParseDisplay reads a long form date such as "October 1st, 2020" or
// "Oct 1 2020".
func ParseDisplay(s string) (Date, error) {
	digits, err := fromDisplay(s)
	if err != nil {
		return Date{}, err
	}
	return fromDigits(digits)
}

// FromInt reads an 8 digit YYYYMMDD number.
func FromInt(n int) (Date, error) {
	return fromDigits(strconv.Itoa(n))
}

// FromTime returns the calendar date of t in t's location.
func FromTime(t time.Time) (Date, error) {
	y, m, d := t.Date()
	return FromYMD(y, int(m), d)
}

// Today returns the current local date.
func Today() Date {
	// the current year is always within MinYear..MaxYear
	d, _ := FromTime(time.Now())
	return d
}

func stripSeparators(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "-", "")
	return strings.ReplaceAll(s, ".", "")
}

// normalize renders v as a YYYYMMDD digit string.
func normalize(v interface{}) (string, error) {
	switch x := v.(type) {
	case string:
		return stripSeparators(x), nil
	case Date:
		return x.String(), nil
	case *Date:
		if x == nil {
			return "", fmt.Errorf("%w: nil *Date", ErrInvalidType)
		}
		return x.String(), nil
	case time.Time:
		return timeDigits(x)
	case *time.Time:
		if x == nil {
			return "", fmt.Errorf("%w: nil *time.Time", ErrInvalidType)
		}
		return timeDigits(*x)
	case time.Month, time.Weekday:
		return "", fmt.Errorf("%w: %T alone is not a date", ErrInvalidType, x)
	case ymder:
		y, m, d := x.Date()
		return Date{year: y, month: m, day: d}.String(), nil
	case fmt.Stringer:
		digits, err := fromDisplay(x.String())
		if err != nil {
			return "", fmt.Errorf("%w: %T: %w", ErrInvalidType, x, err)
		}
		return digits, nil
	}
	if n, ok := intArg(v); ok {
		return strconv.Itoa(n), nil
	}
	return "", fmt.Errorf("%w: %T", ErrInvalidType, v)
}

var ordinalSuffix = regexp.MustCompile(`(?i)\b(\d{1,2})(st|nd|rd|th)\b`)

// fromDisplay reads the display string of an external date value such as
// "October 1st, 2020". Day ordinal suffixes are dropped before parsing.
func fromDisplay(s string) (string, error) {
	plain := ordinalSuffix.ReplaceAllString(strings.TrimSpace(s), "$1")
	t, err := dateparse.ParseAny(plain)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidDate, s, err)
	}
	return timeDigits(t)
}

func timeDigits(t time.Time) (string, error) {
	d, err := FromTime(t)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

func intArg(v interface{}) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int8:
		return int(x), true
	case int16:
		return int(x), true
	case int32:
		return int(x), true
	case int64:
		return int(x), true
	case uint:
		return int(x), true
	case uint8:
		return int(x), true
	case uint16:
		return int(x), true
	case uint32:
		return int(x), true
	case uint64:
		return int(x), true
	case time.Month:
		return int(x), true
	}
	return 0, false
}

// fromDigits slices YYYYMMDD into its fields.
func fromDigits(s string) (Date, error) {
	if len(s) != 8 {
		return Date{}, fmt.Errorf("%w: %q is not YYYYMMDD", ErrInvalidDate, s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Date{}, fmt.Errorf("%w: %q is not YYYYMMDD", ErrInvalidDate, s)
		}
	}
	year, _ := strconv.Atoi(s[:4])
	month, _ := strconv.Atoi(s[4:6])
	day, _ := strconv.Atoi(s[6:])
	return FromYMD(year, month, day)
}

func (d Date) Year() int         { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int          { return d.day }

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool {
	return d == Date{}
}
