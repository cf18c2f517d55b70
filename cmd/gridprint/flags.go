package main

import "github.com/spf13/pflag"

func setLogLevel(fs *pflag.FlagSet, level *string) {
	fs.StringVarP(level, "log-level", "l", "warn", "set log level (debug, info, warn, error)")
}

func setSpacing(fs *pflag.FlagSet, spacing *int, def int) {
	fs.IntVarP(spacing, "spacing", "s", def, "set the number of blanks after the widest value of each column")
}

func setDimensions(fs *pflag.FlagSet, rows, cols *int) {
	fs.IntVar(rows, "rows", 0, "set the number of rows to print (default: number of ROW arguments)")
	fs.IntVar(cols, "cols", 0, "set the number of columns to print (default: widest ROW argument)")
}

func setSeparator(fs *pflag.FlagSet, sep *string) {
	fs.StringVar(sep, "sep", ",", "set the cell separator within a ROW argument")
}

func setStyles(fs *pflag.FlagSet, styles *string) {
	fs.StringVar(styles, "styles", "", "set per-column styles as a YAML sequence, e.g. '[{fg: magenta}, ~, {decoration: italic}]'")
}
