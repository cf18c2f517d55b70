package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	return log
}

func newRootCommand(log *logrus.Logger) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "gridprint",
		Short:         "Print aligned grids of text",
		Long:          "Print a two-dimensional collection of values as column-aligned, optionally styled text.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid --log-level: %w", err)
			}
			log.SetLevel(level)
			return nil
		},
	}
	setLogLevel(root.PersistentFlags(), &logLevel)

	root.AddCommand(newDemoCommand(log))
	root.AddCommand(newPrintCommand(log))
	return root
}
