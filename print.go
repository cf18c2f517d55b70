package gridprint

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bjaus/gridprint/style"
)

// Print renders source to standard output. See [Fprint].
func Print[T any](p *Printer, source [][]T) error {
	return Fprint(os.Stdout, p, source)
}

// Sprint renders source and returns the output as a string.
func Sprint[T any](p *Printer, source [][]T) string {
	var buf bytes.Buffer
	// bytes.Buffer writes never fail.
	_ = Fprint(&buf, p, source)
	return buf.String()
}

// Fprint renders source to w as an aligned grid of p.Rows() × p.Cols()
// cells. Missing rows or cells print as empty strings and anything beyond
// the configured dimensions is ignored. Every row ends with a newline and
// is flushed before the next one is written.
//
// Column widths are measured over the whole grid before anything is
// written, so a long value in a late row widens the column for every row.
// Widths use the byte length of the unstyled text; escape codes never
// count toward alignment.
//
// A failed write or flush stops the print and returns an error wrapping
// [ErrOutput].
func Fprint[T any](w io.Writer, p *Printer, source [][]T) error {
	cells := measure(p, source)
	return p.emit(w, cells)
}

// measure stringifies the rectangular rows × cols view of source in
// row-major order and records each column's maximum width.
func measure[T any](p *Printer, source [][]T) []string {
	clear(p.maxWidths)
	cells := make([]string, 0, p.rows*p.cols)
	for i := range p.rows {
		var row []T
		if i < len(source) {
			row = source[i]
		}
		for j := range p.cols {
			cell := ""
			if j < len(row) {
				cell = cellText(row[j])
			}
			if n := len(cell); n > p.maxWidths[j] {
				p.maxWidths[j] = n
			}
			cells = append(cells, cell)
		}
	}
	return cells
}

func (p *Printer) emit(w io.Writer, cells []string) error {
	if p.cols == 0 {
		return nil
	}
	bw, ok := w.(*bufio.Writer)
	if !ok {
		bw = bufio.NewWriter(w)
	}
	for i, cell := range cells {
		col := i % p.cols
		var opt *style.Option
		if col < len(p.colStyles) {
			opt = p.colStyles[col]
		}
		styled := style.Render(cell, opt)
		if _, err := bw.WriteString(styled); err != nil {
			return fmt.Errorf("%w: %w", ErrOutput, err)
		}
		if _, err := bw.WriteString(p.padding(cell, col)); err != nil {
			return fmt.Errorf("%w: %w", ErrOutput, err)
		}
		if col == p.cols-1 {
			if err := bw.WriteByte('\n'); err != nil {
				return fmt.Errorf("%w: %w", ErrOutput, err)
			}
			if err := bw.Flush(); err != nil {
				return fmt.Errorf("%w: %w", ErrOutput, err)
			}
		}
	}
	return nil
}

// padding returns the blanks that follow cell in column col.
func (p *Printer) padding(cell string, col int) string {
	width := p.maxWidths[col]
	if len(cell) > width {
		panic(fmt.Sprintf("gridprint: cell of length %d exceeds measured width %d of column %d", len(cell), width, col))
	}
	return strings.Repeat(" ", width-len(cell)+p.spacing)
}
