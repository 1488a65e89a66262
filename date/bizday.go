package date

import (
	"fmt"
	"time"

	"github.com/alpacahq/bizdate/calendar"
)

// Provider answers whether the calendar date of t is a business day under
// the named calendar. Unknown names must fail, never fall back to a default.
type Provider interface {
	IsBusinessDay(calendar string, t time.Time) (bool, error)
}

var (
	// DefaultProvider answers the business day queries that do not name one.
	DefaultProvider Provider = calendar.Default

	// DefaultCalendar is used when a calendar name is empty.
	DefaultCalendar = calendar.BondName

	// MaxBizdaySearch bounds how many days NextBizday and PrevBizday walk
	// before giving up with ErrNoBusinessDay.
	MaxBizdaySearch = 366
)

func calendarName(name string) string {
	if name == "" {
		return DefaultCalendar
	}
	return name
}

// IsBizday reports whether d is a business day under the named calendar.
func (d Date) IsBizday(name string) (bool, error) {
	return d.IsBizdayIn(DefaultProvider, name)
}

func (d Date) IsBizdayIn(p Provider, name string) (bool, error) {
	return p.IsBusinessDay(calendarName(name), d.AsExternal())
}

// NextBizday returns the first business day strictly after d.
func (d Date) NextBizday(name string) (Date, error) {
	return d.neighbourBizday(DefaultProvider, name, 1)
}

// PrevBizday returns the last business day strictly before d.
func (d Date) PrevBizday(name string) (Date, error) {
	return d.neighbourBizday(DefaultProvider, name, -1)
}

func (d Date) NextBizdayIn(p Provider, name string) (Date, error) {
	return d.neighbourBizday(p, name, 1)
}

func (d Date) PrevBizdayIn(p Provider, name string) (Date, error) {
	return d.neighbourBizday(p, name, -1)
}

func (d Date) neighbourBizday(p Provider, name string, step int) (Date, error) {
	limit := MaxBizdaySearch
	if limit <= 0 {
		limit = 366
	}
	next := d
	for i := 0; i < limit; i++ {
		var err error
		if next, err = next.AddDays(step); err != nil {
			return Date{}, err
		}
		ok, err := next.IsBizdayIn(p, name)
		if err != nil {
			return Date{}, err
		}
		if ok {
			return next, nil
		}
	}
	return Date{}, fmt.Errorf("%w: %s within %d days of %s", ErrNoBusinessDay, calendarName(name), limit, d)
}

// Convention selects how a date that is not a business day is moved.
type Convention int

const (
	Unadjusted Convention = iota
	Following
	ModifiedFollowing
	Preceding
)

var conventionNames = map[string]Convention{
	"unadjusted":         Unadjusted,
	"following":          Following,
	"modified-following": ModifiedFollowing,
	"preceding":          Preceding,
}

// ParseConvention maps "unadjusted", "following", "modified-following" or
// "preceding" to a Convention.
func ParseConvention(s string) (Convention, error) {
	c, ok := conventionNames[s]
	if !ok {
		return Unadjusted, fmt.Errorf("date: unknown business day convention %q", s)
	}
	return c, nil
}

// Adjust returns d if it is a business day, otherwise the business day
// chosen by conv.
func (d Date) Adjust(conv Convention, name string) (Date, error) {
	return d.AdjustIn(DefaultProvider, conv, name)
}

func (d Date) AdjustIn(p Provider, conv Convention, name string) (Date, error) {
	if conv == Unadjusted {
		return d, nil
	}
	ok, err := d.IsBizdayIn(p, name)
	if err != nil || ok {
		return d, err
	}
	switch conv {
	case Preceding:
		return d.PrevBizdayIn(p, name)
	case ModifiedFollowing:
		next, err := d.NextBizdayIn(p, name)
		if err != nil {
			return Date{}, err
		}
		if next.month != d.month {
			return d.PrevBizdayIn(p, name)
		}
		return next, nil
	default:
		return d.NextBizdayIn(p, name)
	}
}

// AddBizdays moves n business days forward, or backward when n is negative.
func (d Date) AddBizdays(n int, name string) (Date, error) {
	return d.AddBizdaysIn(DefaultProvider, n, name)
}

func (d Date) AddBizdaysIn(p Provider, n int, name string) (Date, error) {
	var err error
	for ; n > 0 && err == nil; n-- {
		d, err = d.NextBizdayIn(p, name)
	}
	for ; n < 0 && err == nil; n++ {
		d, err = d.PrevBizdayIn(p, name)
	}
	return d, err
}

// RangeOptions control Range. The zero value yields the business days of
// DefaultCalendar in [start, end).
type RangeOptions struct {
	// IncludeLast makes the range closed, [start, end].
	IncludeLast bool
	// ShowHoliday keeps days that are not business days.
	ShowHoliday bool
	Calendar    string
	Provider    Provider
}

// Range returns the dates from start to end, one day at a time. The
// calendar is only consulted when opts.ShowHoliday is false.
func Range(start, end Date, opts RangeOptions) ([]Date, error) {
	p := opts.Provider
	if p == nil {
		p = DefaultProvider
	}
	dates := []Date{}
	for d := start; d.Before(end) || (opts.IncludeLast && d == end); {
		ok := opts.ShowHoliday
		if !ok {
			var err error
			if ok, err = d.IsBizdayIn(p, opts.Calendar); err != nil {
				return nil, err
			}
		}
		if ok {
			dates = append(dates, d)
		}
		if d == end {
			break
		}
		next, err := d.AddDays(1)
		if err != nil {
			return nil, err
		}
		d = next
	}
	return dates, nil
}
