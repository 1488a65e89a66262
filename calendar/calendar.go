// Package calendar provides market calendars, with which you can
// check if a day is a business day and if the market is open at a
// specific point of time.
// Holiday rules come from github.com/rickar/cal; ad hoc closures and
// early closes are layered on top from a JSON description. BOND (US
// government securities) and STOCK (NYSE) are registered by default.
// You can create your own calendar if you provide the calendar
// json string. See nyse.go for the format.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	cal "github.com/rickar/cal/v2"
)

type MarketState int

const (
	Closed MarketState = iota
	EarlyClose
)

type Time struct {
	hour, minute, second int
}

func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.hour, t.minute, t.second)
}

type Calendar struct {
	name           string
	rules          *cal.BusinessCalendar
	days           map[int]MarketState
	tz             *time.Location
	openTime       Time
	closeTime      Time
	earlyCloseTime Time
}

func julianDate(t time.Time) int {
	// Note: Date() is faster than calling Hour(), Month(), and Day() separately
	year, m, day := t.Date()
	month := int(m)
	// nolint:gomnd // well-known algorithm to calculate julian date number
	return day - 32075 + 1461*(year+4800+(month-14)/12)/4 + 367*(month-2-(month-14)/12*12)/12 -
		3*((year+4900+(month-14)/12)/100)/4
}

// ParseTime parses "HH:MM" or "HH:MM:SS".
func ParseTime(tstr string) (Time, error) {
	seps := strings.Split(strings.TrimSpace(tstr), ":")
	if len(seps) < 2 || len(seps) > 3 {
		return Time{}, fmt.Errorf("%w: bad time of day %q", ErrInvalidCalendar, tstr)
	}
	var parts [3]int
	limits := [3]int{23, 59, 59}
	for i, s := range seps {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 || v > limits[i] {
			return Time{}, fmt.Errorf("%w: bad time of day %q", ErrInvalidCalendar, tstr)
		}
		parts[i] = v
	}
	return Time{parts[0], parts[1], parts[2]}, nil
}

// Name returns the upper case name the calendar is registered under.
func (calendar *Calendar) Name() string {
	return calendar.name
}

// IsMarketDay check if the day t falls on is a trading day or not.
// Only the calendar date of t is considered.
func (calendar *Calendar) IsMarketDay(t time.Time) bool {
	if t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		return false
	}
	if state, ok := calendar.days[julianDate(t)]; ok {
		return state != Closed
	}
	if calendar.rules != nil {
		return calendar.rules.IsWorkday(t)
	}
	return true
}

// EpochIsMarketOpen returns true if epoch in calendar's timezone is in the market hours.
func (calendar *Calendar) EpochIsMarketOpen(epoch int64) bool {
	return calendar.IsMarketOpen(time.Unix(epoch, 0))
}

// IsMarketOpen returns true if t is in the market hours.
func (calendar *Calendar) IsMarketOpen(t time.Time) bool {
	t = t.In(calendar.tz)
	if !calendar.IsMarketDay(t) {
		return false
	}

	year, month, day := t.Date()
	ot := calendar.openTime
	open := time.Date(year, month, day, ot.hour, ot.minute, ot.second, 0, calendar.tz)
	clos := calendar.MarketClose(t)
	if t.Before(open) || !t.Before(*clos) {
		return false
	}
	return true
}

// EpochMarketClose determines the market close time of the day that
// the supplied epoch timestamp occurs on. Returns nil if it is not
// a market day.
func (calendar *Calendar) EpochMarketClose(epoch int64) *time.Time {
	return calendar.MarketClose(time.Unix(epoch, 0).In(calendar.tz))
}

// MarketClose determines the market close time of the day that the
// supplied timestamp occurs on. Returns nil if it is not a market day.
func (calendar *Calendar) MarketClose(t time.Time) *time.Time {
	if !calendar.IsMarketDay(t) {
		return nil
	}
	ct := calendar.closeTime
	if state, ok := calendar.days[julianDate(t)]; ok && state == EarlyClose {
		ct = calendar.earlyCloseTime
	}
	mktClose := time.Date(t.Year(), t.Month(), t.Day(), ct.hour, ct.minute, ct.second, 0, calendar.tz)
	return &mktClose
}

func (calendar *Calendar) Tz() *time.Location {
	return calendar.tz
}

// Session returns the regular open and close times of day.
func (calendar *Calendar) Session() (open, closing Time) {
	return calendar.openTime, calendar.closeTime
}
