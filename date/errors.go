package date

import "errors"

var (
	// ErrInvalidArity is returned when New is given other than one or three values.
	ErrInvalidArity = errors.New("date: expected 1 or 3 arguments")

	// ErrInvalidType is returned when New is given a value it cannot read a date from.
	ErrInvalidType = errors.New("date: unsupported input type")

	// ErrInvalidDate is returned when the input does not name a real calendar date.
	ErrInvalidDate = errors.New("date: invalid calendar date")

	// ErrNoBusinessDay is returned when a business day search gives up.
	ErrNoBusinessDay = errors.New("date: no business day found")
)
