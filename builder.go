package gridprint

import (
	"fmt"

	"github.com/bjaus/gridprint/style"
)

// Builder accumulates Printer configuration. Builders are values: every
// step returns an updated copy and never modifies the receiver, so a failed
// step leaves the previous Builder intact.
//
//	b, err := gridprint.NewBuilder(3, 4).
//		WithSpacing(4).
//		WithColumnStyle(0, style.New().Fg(style.Magenta))
//	if err != nil {
//		return err
//	}
//	p := b.Build()
type Builder struct {
	rows      int
	cols      int
	spacing   int
	colStyles []*style.Option
}

// NewBuilder starts a configuration for a rows × cols grid with
// [DefaultSpacing] and no styles. Zero dimensions are legal and print
// nothing; negative dimensions are treated as zero.
func NewBuilder(rows, cols int) Builder {
	return Builder{
		rows:    max(rows, 0),
		cols:    max(cols, 0),
		spacing: DefaultSpacing,
	}
}

// Rows returns the configured row count.
func (b Builder) Rows() int { return b.rows }

// Cols returns the configured column count.
func (b Builder) Cols() int { return b.cols }

// Spacing returns the configured column spacing.
func (b Builder) Spacing() int { return b.spacing }

// ColumnStyle returns the style assigned to column i, or nil.
func (b Builder) ColumnStyle(i int) *style.Option {
	return columnStyle(b.colStyles, i)
}

// WithSpacing sets the number of blanks appended after the widest value in
// each column. Negative values are treated as zero.
func (b Builder) WithSpacing(n int) Builder {
	b.spacing = max(n, 0)
	return b
}

// WithColumnStyle assigns opt to column index. It fails with [ErrDimension]
// when index is outside [0, cols).
func (b Builder) WithColumnStyle(index int, opt style.Option) (Builder, error) {
	if index < 0 || index >= b.cols {
		return b, fmt.Errorf("%w: column index %d, columns %d", ErrDimension, index, b.cols)
	}
	styles := cloneStyles(b.colStyles)
	if styles == nil {
		styles = make([]*style.Option, b.cols)
	}
	styles[index] = &opt
	b.colStyles = styles
	return b, nil
}

// WithColumnStyles replaces every column style at once. A nil entry leaves
// that column unstyled. It fails with [ErrDimension] when len(opts) differs
// from cols.
func (b Builder) WithColumnStyles(opts []*style.Option) (Builder, error) {
	if len(opts) != b.cols {
		return b, fmt.Errorf("%w: %d styles, columns %d", ErrDimension, len(opts), b.cols)
	}
	b.colStyles = cloneStyles(opts)
	return b, nil
}

// Build returns a Printer for the accumulated configuration.
func (b Builder) Build() *Printer {
	return &Printer{
		rows:      b.rows,
		cols:      b.cols,
		spacing:   b.spacing,
		colStyles: cloneStyles(b.colStyles),
		maxWidths: make([]int, b.cols),
	}
}
