package date

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ncruces/go-strftime"
)

// strftime patterns.
const (
	DefaultFormat = "%Y%m%d"
	QFormat       = "%Y.%m.%d"
	ISOFormat     = "%Y-%m-%d"
)

// String returns the canonical YYYYMMDD form.
func (d Date) String() string {
	return fmt.Sprintf("%04d%02d%02d", d.year, int(d.month), d.day)
}

// AsStr renders d with a strftime pattern, DefaultFormat when format is empty.
func (d Date) AsStr(format string) string {
	if format == "" {
		format = DefaultFormat
	}
	return strftime.Format(format, d.AsExternal())
}

func (d Date) AsInt() int {
	n, _ := strconv.Atoi(d.AsStr(DefaultFormat))
	return n
}

// AsQ renders YYYY.MM.DD.
func (d Date) AsQ() string {
	return d.AsStr(QFormat)
}

func (d Date) ISO() string {
	return d.AsStr(ISOFormat)
}

// AsJS returns the Unix time in milliseconds of local midnight on d.
func (d Date) AsJS() int64 {
	return d.AsJSIn(time.Local)
}

// AsJSIn returns the Unix time in milliseconds of midnight on d in loc.
func (d Date) AsJSIn(loc *time.Location) int64 {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc).UnixMilli()
}

// AsExternal returns midnight UTC on d, the representation the holiday
// rules in the calendar package work on.
func (d Date) AsExternal() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// Ordinal returns the long display form, "October 1st, 2020".
func (d Date) Ordinal() string {
	return fmt.Sprintf("%s %d%s, %d", d.month, d.day, ordinal(d.day), d.year)
}

func ordinal(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}
