package gridprint

import (
	"errors"
	"slices"

	"github.com/bjaus/gridprint/style"
)

// Sentinel errors for programmatic error handling.
var (
	ErrDimension = errors.New("dimension mismatch between configured column count and supplied index or length")
	ErrOutput    = errors.New("write to output failed")
)

// DefaultSpacing is the number of blank characters appended after the widest
// value of each column unless [Builder.WithSpacing] says otherwise.
const DefaultSpacing = 2

// Printer renders a rows × cols grid. Its configuration is fixed at
// [Builder.Build]; the column width buffer is recomputed on every print.
//
// Sequential prints on one Printer are safe. Concurrent prints on the same
// Printer are not: serialize access or give each goroutine its own Printer.
type Printer struct {
	rows      int
	cols      int
	spacing   int
	colStyles []*style.Option
	maxWidths []int
}

// New returns a Printer with default spacing and no column styles.
func New(rows, cols int) *Printer {
	return NewBuilder(rows, cols).Build()
}

// Rows returns the number of logical rows printed.
func (p *Printer) Rows() int { return p.rows }

// Cols returns the number of logical columns printed.
func (p *Printer) Cols() int { return p.cols }

// Spacing returns the padding appended after each column's widest value.
func (p *Printer) Spacing() int { return p.spacing }

// ColumnStyle returns the style assigned to column i, or nil.
func (p *Printer) ColumnStyle(i int) *style.Option {
	return columnStyle(p.colStyles, i)
}

// ColumnStyles returns a copy of the per-column styles, or nil when none
// were assigned.
func (p *Printer) ColumnStyles() []*style.Option {
	return cloneStyles(p.colStyles)
}

func columnStyle(styles []*style.Option, i int) *style.Option {
	if i < 0 || i >= len(styles) || styles[i] == nil {
		return nil
	}
	opt := *styles[i]
	return &opt
}

// cloneStyles deep-copies styles so callers never share entries with a
// Builder or Printer.
func cloneStyles(styles []*style.Option) []*style.Option {
	if styles == nil {
		return nil
	}
	out := slices.Clone(styles)
	for i, opt := range out {
		if opt != nil {
			c := *opt
			out[i] = &c
		}
	}
	return out
}
