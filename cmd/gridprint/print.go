package main

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bjaus/gridprint"
	"github.com/bjaus/gridprint/style"
)

type printParams struct {
	rows    int
	cols    int
	spacing int
	sep     string
	styles  string
}

func newPrintCommand(log *logrus.Logger) *cobra.Command {
	var params printParams
	cmd := &cobra.Command{
		Use:   "print ROW...",
		Short: "Print the given rows as an aligned grid",
		Long: `Print each ROW argument as one line of an aligned grid. Cells within a
ROW are separated by --sep. Missing cells print as blanks.`,
		Example: `  gridprint print 'Name,Age' 'Ada,36' 'Grace,85'
  gridprint print --styles '[{fg: cyan, decoration: bold}, ~]' 'Name,Age' 'Ada,36'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrint(cmd, log, params, args)
		},
	}
	setDimensions(cmd.Flags(), &params.rows, &params.cols)
	setSpacing(cmd.Flags(), &params.spacing, gridprint.DefaultSpacing)
	setSeparator(cmd.Flags(), &params.sep)
	setStyles(cmd.Flags(), &params.styles)
	return cmd
}

func runPrint(cmd *cobra.Command, log *logrus.Logger, params printParams, args []string) error {
	if params.sep == "" {
		return errors.New("--sep must not be empty")
	}
	grid := splitRows(args, params.sep)

	rows, cols := params.rows, params.cols
	if !cmd.Flags().Changed("rows") {
		rows = len(grid)
	}
	if !cmd.Flags().Changed("cols") {
		cols = widest(grid)
	}

	b := gridprint.NewBuilder(rows, cols).WithSpacing(params.spacing)
	opts, err := style.ParseOptions(params.styles)
	if err != nil {
		return err
	}
	if opts != nil {
		if b, err = b.WithColumnStyles(opts); err != nil {
			return err
		}
	}

	log.WithFields(logrus.Fields{
		"rows":    b.Rows(),
		"cols":    b.Cols(),
		"spacing": b.Spacing(),
		"styled":  opts != nil,
	}).Debug("Printing grid.")
	return gridprint.Fprint(cmd.OutOrStdout(), b.Build(), grid)
}

func splitRows(args []string, sep string) [][]string {
	grid := make([][]string, len(args))
	for i, arg := range args {
		grid[i] = strings.Split(arg, sep)
	}
	return grid
}

func widest(grid [][]string) int {
	n := 0
	for _, row := range grid {
		n = max(n, len(row))
	}
	return n
}
