package shift

import (
	"github.com/spf13/cobra"

	"github.com/alpacahq/bizdate/cmd/args"
)

const (
	addUsage   = "add <date>"
	addShort   = "Shift a date by years, months and days"
	addLong    = "This command moves the date by whole years and months, clamping the day to the end of the target month, then by days"
	addExample = "bizdate add 2020-01-31 --months 1 --days=-1"

	edateUsage   = "edate <date>"
	edateShort   = "Shift a date by a number of months"
	edateLong    = "This command moves the date by whole months, clamping the day to the end of the target month"
	edateExample = "bizdate edate 20200331 --months=-1"

	yearsDesc  = "years to add, negative to go back"
	monthsDesc = "months to add, negative to go back"
	daysDesc   = "days to add, negative to go back"
)

var (
	// AddCmd is the add command.
	AddCmd = &cobra.Command{
		Use:        addUsage,
		Short:      addShort,
		Long:       addLong,
		SuggestFor: []string{"shift", "plus"},
		Example:    addExample,
		Args:       cobra.ExactArgs(1),
		RunE:       executeAdd,
	}
	// EdateCmd is the edate command.
	EdateCmd = &cobra.Command{
		Use:     edateUsage,
		Short:   edateShort,
		Long:    edateLong,
		Example: edateExample,
		Args:    cobra.ExactArgs(1),
		RunE:    executeEdate,
	}

	years, months, days int
)

// nolint:gochecknoinits // cobra's standard way to initialize flags
func init() {
	AddCmd.Flags().IntVarP(&years, "years", "y", 0, yearsDesc)
	AddCmd.Flags().IntVarP(&months, "months", "m", 0, monthsDesc)
	AddCmd.Flags().IntVarP(&days, "days", "d", 0, daysDesc)
	EdateCmd.Flags().IntVarP(&months, "months", "m", 0, monthsDesc)
}

func executeAdd(cmd *cobra.Command, a []string) error {
	d, err := args.Date(a[0])
	if err != nil {
		return err
	}
	shifted, err := d.Add(years, months, days)
	if err != nil {
		return err
	}
	args.Println(cmd, shifted)
	return nil
}

func executeEdate(cmd *cobra.Command, a []string) error {
	d, err := args.Date(a[0])
	if err != nil {
		return err
	}
	shifted, err := d.Edate(months)
	if err != nil {
		return err
	}
	args.Println(cmd, shifted)
	return nil
}
