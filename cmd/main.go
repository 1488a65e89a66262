package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alpacahq/bizdate/calendar"
	"github.com/alpacahq/bizdate/cmd/bizday"
	"github.com/alpacahq/bizdate/cmd/calendars"
	"github.com/alpacahq/bizdate/cmd/format"
	"github.com/alpacahq/bizdate/cmd/shift"
	"github.com/alpacahq/bizdate/cmd/span"
	"github.com/alpacahq/bizdate/utils"
	"github.com/alpacahq/bizdate/utils/log"
)

const (
	configDesc   = "set the path for the bizdate YAML or TOML configuration file"
	logLevelDesc = "override the log level, one of debug, info, warning, error, fatal"
)

var (
	// flagPrintVersion set flag to show current bizdate version.
	flagPrintVersion bool
	// configFilePath set flag for a path to the config file.
	configFilePath string
	// logLevel set flag to override the configured log level.
	logLevel string
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	// c is the root command.
	c := &cobra.Command{
		Use:               "bizdate",
		Short:             "Business date arithmetic on market calendars",
		SilenceErrors:     true,
		PersistentPreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Print version if specified.
			if flagPrintVersion {
				cmd.Printf("version: %+v\n", utils.Tag)
				cmd.Printf("commit hash: %+v\n", utils.GitHash)
				cmd.Printf("utc build time: %+v\n", utils.BuildStamp)
				return nil
			}
			// Print information regarding usage.
			return cmd.Usage()
		},
	}

	// Adds subcommands and flags.
	c.AddCommand(bizday.IsCmd)
	c.AddCommand(bizday.NextCmd)
	c.AddCommand(bizday.PrevCmd)
	c.AddCommand(bizday.AdjustCmd)
	c.AddCommand(shift.AddCmd)
	c.AddCommand(shift.EdateCmd)
	c.AddCommand(span.Cmd)
	c.AddCommand(format.Cmd)
	c.AddCommand(calendars.Cmd)
	c.Flags().BoolVarP(&flagPrintVersion, "version", "v", false, "show the version info and exit")
	c.PersistentFlags().StringVarP(&configFilePath, "config", "c", "", configDesc)
	c.PersistentFlags().StringVar(&logLevel, "log-level", "", logLevelDesc)
	return c
}

// Execute builds the command tree and executes commands.
func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil {
		log.Error("%v", err)
	}
	return err
}

// loadConfig applies the configuration file, if any, before every command.
func loadConfig(cmd *cobra.Command, _ []string) error {
	if configFilePath != "" {
		config, err := utils.LoadConfig(configFilePath)
		if err != nil {
			return err
		}
		if err := config.Apply(calendar.Default); err != nil {
			return err
		}
		log.Info("using %v for configuration", configFilePath)
	}
	if logLevel != "" {
		log.SetLevel(log.ParseLevel(logLevel))
	}
	return nil
}
