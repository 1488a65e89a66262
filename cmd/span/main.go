package span

import (
	"encoding/json"
	"fmt"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"github.com/alpacahq/bizdate/cmd/args"
	"github.com/alpacahq/bizdate/date"
	"github.com/alpacahq/bizdate/utils/log"
)

const (
	usage   = "range <start> <end>"
	short   = "List the business days between two dates"
	long    = "This command lists the dates from start up to end, excluding end unless --include-last is given, skipping non business days unless --show-holiday is given"
	example = "bizdate range 2020-10-01 2020-10-31 --include-last --output csv"

	includeLastDesc = "include the end date"
	showHolidayDesc = "list every day, business day or not"
	outputDesc      = "output format, one of text, csv, json"
	patternDesc     = "strftime pattern for text output"

	outputText = "text"
	outputCSV  = "csv"
	outputJSON = "json"
)

var (
	// Cmd is the range command.
	Cmd = &cobra.Command{
		Use:        usage,
		Short:      short,
		Long:       long,
		Aliases:    []string{"r"},
		SuggestFor: []string{"between", "days"},
		Example:    example,
		Args:       cobra.ExactArgs(2),
		RunE:       executeRange,
	}

	includeLast  bool
	showHoliday  bool
	calendarName string
	output       string
	pattern      string
)

// row is one CSV line of the csv output.
type row struct {
	Date    date.Date `csv:"date"`
	Weekday string    `csv:"weekday"`
}

// nolint:gochecknoinits // cobra's standard way to initialize flags
func init() {
	Cmd.Flags().BoolVar(&includeLast, "include-last", false, includeLastDesc)
	Cmd.Flags().BoolVar(&showHoliday, "show-holiday", false, showHolidayDesc)
	Cmd.Flags().StringVarP(&output, "output", "o", outputText, outputDesc)
	Cmd.Flags().StringVar(&pattern, "pattern", date.DefaultFormat, patternDesc)
	args.AddCalendarFlag(Cmd, &calendarName)
}

// executeRange implements the range command.
func executeRange(cmd *cobra.Command, a []string) error {
	switch output {
	case outputText, outputCSV, outputJSON:
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
	bounds, err := args.Dates(a)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	dates, err := date.Range(bounds[0], bounds[1], date.RangeOptions{
		IncludeLast: includeLast,
		ShowHoliday: showHoliday,
		Calendar:    calendarName,
	})
	if err != nil {
		return err
	}
	log.Debug("range %s %s: %d dates", bounds[0], bounds[1], len(dates))

	w := cmd.OutOrStdout()
	switch output {
	case outputCSV:
		rows := make([]*row, 0, len(dates))
		for _, d := range dates {
			rows = append(rows, &row{Date: d, Weekday: d.Weekday().String()})
		}
		return gocsv.Marshal(&rows, w)
	case outputJSON:
		return json.NewEncoder(w).Encode(dates)
	default:
		for _, d := range dates {
			args.Println(cmd, d.AsStr(pattern))
		}
		return nil
	}
}
