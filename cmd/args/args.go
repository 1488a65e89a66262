// Package args holds the argument and flag helpers shared by the bizdate
// subcommands.
package args

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alpacahq/bizdate/date"
)

const (
	calendarFlag = "calendar"
	calendarDesc = "market calendar to use, the configured default calendar when empty"
	today        = "today"
)

// Date reads a date argument. Besides the YYYYMMDD, YYYY-MM-DD and
// YYYY.MM.DD forms it accepts "today" and long forms like "October 1st, 2020".
func Date(s string) (date.Date, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return date.Date{}, fmt.Errorf("%w: empty date argument", date.ErrInvalidDate)
	case strings.EqualFold(s, today):
		return date.Today(), nil
	case isNumeric(s):
		return date.Parse(s)
	default:
		return date.ParseDisplay(s)
	}
}

// Dates reads every argument with Date.
func Dates(in []string) ([]date.Date, error) {
	out := make([]date.Date, 0, len(in))
	for _, s := range in {
		d, err := Date(s)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func isNumeric(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && r != '-' && r != '.' {
			return false
		}
	}
	return true
}

// AddCalendarFlag registers --calendar on cmd, bound to p.
func AddCalendarFlag(cmd *cobra.Command, p *string) {
	cmd.Flags().StringVar(p, calendarFlag, "", calendarDesc)
}

// Println writes a line to the command's output.
func Println(cmd *cobra.Command, a ...interface{}) {
	fmt.Fprintln(out(cmd), a...)
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
