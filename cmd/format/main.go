package format

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alpacahq/bizdate/cmd/args"
	"github.com/alpacahq/bizdate/date"
)

const (
	usage   = "format <date>..."
	short   = "Render dates in another representation"
	long    = "This command renders each date with a strftime pattern, or as one of the int, q, js, iso and ordinal forms"
	example = "bizdate format 20201001 --as ordinal"

	patternDesc = "strftime pattern, ignored when --as is set"
	asDesc      = "named form, one of int, q, js, iso, ordinal"
)

var (
	// Cmd is the format command.
	Cmd = &cobra.Command{
		Use:        usage,
		Short:      short,
		Long:       long,
		Aliases:    []string{"f"},
		SuggestFor: []string{"print", "show"},
		Example:    example,
		Args:       cobra.MinimumNArgs(1),
		RunE:       executeFormat,
	}

	pattern string
	as      string
)

// renderers are the named forms of --as.
var renderers = map[string]func(date.Date) string{
	"int":     func(d date.Date) string { return fmt.Sprint(d.AsInt()) },
	"q":       date.Date.AsQ,
	"js":      func(d date.Date) string { return fmt.Sprint(d.AsJS()) },
	"iso":     date.Date.ISO,
	"ordinal": date.Date.Ordinal,
}

// nolint:gochecknoinits // cobra's standard way to initialize flags
func init() {
	Cmd.Flags().StringVarP(&pattern, "pattern", "p", date.DefaultFormat, patternDesc)
	Cmd.Flags().StringVar(&as, "as", "", asDesc)
}

// executeFormat implements the format command.
func executeFormat(cmd *cobra.Command, a []string) error {
	render := func(d date.Date) string { return d.AsStr(pattern) }
	if as != "" {
		var ok bool
		if render, ok = renderers[strings.ToLower(as)]; !ok {
			return fmt.Errorf("unknown form %q", as)
		}
	}
	dates, err := args.Dates(a)
	if err != nil {
		return err
	}
	for _, d := range dates {
		args.Println(cmd, render(d))
	}
	return nil
}
