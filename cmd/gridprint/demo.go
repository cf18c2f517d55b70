package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bjaus/gridprint"
	"github.com/bjaus/gridprint/style"
)

type demo struct {
	spacing int
	run     func(w io.Writer, spacing int) error
}

var demos = map[string]demo{
	"cars":   {spacing: 4, run: demoCars},
	"colors": {spacing: gridprint.DefaultSpacing, run: demoColors},
	"prices": {spacing: 3, run: demoPrices},
	"error":  {spacing: gridprint.DefaultSpacing, run: demoError},
}

func demoNames() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func newDemoCommand(log *logrus.Logger) *cobra.Command {
	var spacing int
	cmd := &cobra.Command{
		Use:       "demo NAME",
		Short:     "Print a built-in example grid",
		Long:      fmt.Sprintf("Print one of the built-in example grids: %v.", demoNames()),
		ValidArgs: demoNames(),
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := demos[args[0]]
			if cmd.Flags().Changed("spacing") {
				d.spacing = spacing
			}
			log.WithFields(logrus.Fields{"demo": args[0], "spacing": d.spacing}).Debug("Running demo.")
			return d.run(cmd.OutOrStdout(), d.spacing)
		},
	}
	setSpacing(cmd.Flags(), &spacing, gridprint.DefaultSpacing)
	return cmd
}

func demoCars(w io.Writer, spacing int) error {
	cars := [][]string{
		{"Make", "Model", "Color", "Year", "Price"},
		{"Ford", "Pinto", "Green", "1978", "$750.00"},
		{"Toyota", "Tacoma", "Red", "2006", "$15,475.23"},
		{"Lamborghini", "Diablo", "Yellow", "2001", "$238,459.99"},
	}
	p := gridprint.NewBuilder(len(cars), len(cars[0])).WithSpacing(spacing).Build()
	return gridprint.Fprint(w, p, cars)
}

func demoColors(w io.Writer, spacing int) error {
	grid := [][]int{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
	}
	b, err := gridprint.NewBuilder(len(grid), len(grid[0])).
		WithSpacing(spacing).
		WithColumnStyles([]*style.Option{
			ptr(style.New().Fg(style.Magenta)),
			ptr(style.New().Fg(style.Black).Bg(style.BrightYellow)),
			ptr(style.New().Decorate(style.StrikeThrough)),
			ptr(style.New().Fg(style.Black).Bg(style.White).Decorate(style.Italic)),
		})
	if err != nil {
		return err
	}
	return gridprint.Fprint(w, b.Build(), grid)
}

// price prints as a dollar amount with two decimal places.
type price struct{ decimal.Decimal }

func (p price) String() string { return "$" + p.StringFixed(2) }

func demoPrices(w io.Writer, spacing int) error {
	items := []struct {
		name  string
		unit  string
		count int64
	}{
		{"Widget", "2.5", 4},
		{"Gadget", "19.99", 3},
		{"Sprocket", "0.125", 1200},
	}

	grid := [][]any{{"Item", "Unit", "Qty", "Total"}}
	total := decimal.Zero
	for _, it := range items {
		unit, err := decimal.NewFromString(it.unit)
		if err != nil {
			return err
		}
		line := unit.Mul(decimal.NewFromInt(it.count))
		total = total.Add(line)
		grid = append(grid, []any{it.name, price{unit}, it.count, price{line}})
	}
	grid = append(grid, []any{"", "", "", price{total}})

	b, err := gridprint.NewBuilder(len(grid), len(grid[0])).
		WithSpacing(spacing).
		WithColumnStyle(3, style.New().Fg(style.BrightGreen).Decorate(style.Bold))
	if err != nil {
		return err
	}
	return gridprint.Fprint(w, b.Build(), grid)
}

// demoError shows the error returned when a style is assigned to a column
// that does not exist.
func demoError(w io.Writer, _ int) error {
	b := gridprint.NewBuilder(3, 4)
	_, err := b.WithColumnStyle(b.Cols(), style.New().Fg(style.Red))
	if err == nil {
		return fmt.Errorf("expected a dimension error for column %d", b.Cols())
	}
	_, werr := fmt.Fprintln(w, err)
	return werr
}

func ptr(o style.Option) *style.Option { return &o }
