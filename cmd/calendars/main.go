package calendars

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alpacahq/bizdate/calendar"
	"github.com/alpacahq/bizdate/cmd/args"
	"github.com/alpacahq/bizdate/date"
)

const (
	usage   = "calendars"
	short   = "List the registered market calendars"
	long    = "This command lists the built-in and configured market calendars, marking the default one, with --verbose also their timezone and session"
	example = "bizdate calendars --verbose"
)

var (
	// Cmd is the calendars command.
	Cmd = &cobra.Command{
		Use:     usage,
		Short:   short,
		Long:    long,
		Aliases: []string{"cal"},
		Example: example,
		Args:    cobra.NoArgs,
		RunE:    executeCalendars,
	}

	verbose bool
)

// nolint:gochecknoinits // cobra's standard way to initialize flags
func init() {
	Cmd.Flags().BoolVarP(&verbose, "verbose", "V", false, "show timezone and session times")
}

func executeCalendars(cmd *cobra.Command, _ []string) error {
	for _, name := range calendar.Default.Names() {
		line := name
		if name == date.DefaultCalendar {
			line += " (default)"
		}
		if verbose {
			c, err := calendar.Default.Lookup(name)
			if err != nil {
				return err
			}
			open, closing := c.Session()
			line = fmt.Sprintf("%s\t%s\t%s-%s", line, c.Tz(), open, closing)
		}
		args.Println(cmd, line)
	}
	return nil
}
