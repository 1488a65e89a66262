package bizday

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alpacahq/bizdate/cmd/args"
	"github.com/alpacahq/bizdate/date"
)

const (
	isUsage   = "is <date>"
	isShort   = "Tell whether a date is a business day"
	isLong    = "This command prints true when the date is a business day of the calendar and false otherwise"
	isExample = "bizdate is 2020-10-12 --calendar stock"

	nextUsage   = "next <date>"
	nextShort   = "Print the business day after a date"
	nextLong    = "This command prints the business day strictly after the date, or the count-th one with --count"
	nextExample = "bizdate next 20201009 --count 3"

	prevUsage   = "prev <date>"
	prevShort   = "Print the business day before a date"
	prevLong    = "This command prints the business day strictly before the date, or the count-th one with --count"
	prevExample = "bizdate prev today"

	adjustUsage   = "adjust <date>"
	adjustShort   = "Roll a date onto a business day"
	adjustLong    = "This command prints the date itself when it is a business day, otherwise the business day picked by the convention"
	adjustExample = "bizdate adjust 2021-07-31 --convention modified-following"

	countDesc      = "number of business days to move"
	conventionDesc = "one of unadjusted, following, modified-following, preceding"
)

var (
	// IsCmd is the is command.
	IsCmd = &cobra.Command{
		Use:     isUsage,
		Short:   isShort,
		Long:    isLong,
		Example: isExample,
		Args:    cobra.ExactArgs(1),
		RunE:    executeIs,
	}
	// NextCmd is the next command.
	NextCmd = &cobra.Command{
		Use:     nextUsage,
		Short:   nextShort,
		Long:    nextLong,
		Aliases: []string{"n"},
		Example: nextExample,
		Args:    cobra.ExactArgs(1),
		RunE:    executeNext,
	}
	// PrevCmd is the prev command.
	PrevCmd = &cobra.Command{
		Use:     prevUsage,
		Short:   prevShort,
		Long:    prevLong,
		Aliases: []string{"p"},
		Example: prevExample,
		Args:    cobra.ExactArgs(1),
		RunE:    executePrev,
	}
	// AdjustCmd is the adjust command.
	AdjustCmd = &cobra.Command{
		Use:        adjustUsage,
		Short:      adjustShort,
		Long:       adjustLong,
		SuggestFor: []string{"roll"},
		Example:    adjustExample,
		Args:       cobra.ExactArgs(1),
		RunE:       executeAdjust,
	}

	calendarName string
	count        int
	convention   string
)

// nolint:gochecknoinits // cobra's standard way to initialize flags
func init() {
	for _, c := range []*cobra.Command{IsCmd, NextCmd, PrevCmd, AdjustCmd} {
		args.AddCalendarFlag(c, &calendarName)
	}
	NextCmd.Flags().IntVarP(&count, "count", "n", 1, countDesc)
	PrevCmd.Flags().IntVarP(&count, "count", "n", 1, countDesc)
	AdjustCmd.Flags().StringVar(&convention, "convention", "following", conventionDesc)
}

func executeIs(cmd *cobra.Command, a []string) error {
	d, err := args.Date(a[0])
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true
	ok, err := d.IsBizday(calendarName)
	if err != nil {
		return err
	}
	args.Println(cmd, strconv.FormatBool(ok))
	return nil
}

func executeNext(cmd *cobra.Command, a []string) error {
	return move(cmd, a[0], 1)
}

func executePrev(cmd *cobra.Command, a []string) error {
	return move(cmd, a[0], -1)
}

// move steps count business days in the direction of sign.
func move(cmd *cobra.Command, arg string, sign int) error {
	if count < 1 {
		return fmt.Errorf("--count must be positive, got %d", count)
	}
	d, err := args.Date(arg)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true
	moved, err := d.AddBizdays(sign*count, calendarName)
	if err != nil {
		return err
	}
	args.Println(cmd, moved)
	return nil
}

func executeAdjust(cmd *cobra.Command, a []string) error {
	conv, err := date.ParseConvention(convention)
	if err != nil {
		return err
	}
	d, err := args.Date(a[0])
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true
	adjusted, err := d.Adjust(conv, calendarName)
	if err != nil {
		return err
	}
	args.Println(cmd, adjusted)
	return nil
}
