package calendar

import "errors"

var (
	// ErrUnknownCalendar is returned when a calendar name is not registered.
	ErrUnknownCalendar = errors.New("calendar: unknown calendar")

	// ErrInvalidCalendar is returned when a calendar definition cannot be parsed.
	ErrInvalidCalendar = errors.New("calendar: invalid calendar definition")
)
