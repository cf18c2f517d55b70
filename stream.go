package gridprint

import (
	"io"
	"iter"
)

// FprintSeq renders rows pulled from seq. Because column widths depend on
// the whole grid, rows are collected before anything is written. At most
// p.Rows() rows are pulled; the sequence is stopped after that.
func FprintSeq[T any](w io.Writer, p *Printer, seq iter.Seq[[]T]) error {
	return Fprint(w, p, collectRows(seq, p.rows))
}

// FprintChan renders rows received from ch. It is a thin wrapper around
// [FprintSeq]: receiving stops once p.Rows() rows have arrived or ch is
// closed, whichever comes first.
func FprintChan[T any](w io.Writer, p *Printer, ch <-chan []T) error {
	return FprintSeq(w, p, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

func collectRows[T any](seq iter.Seq[[]T], limit int) [][]T {
	if limit <= 0 {
		return nil
	}
	var rows [][]T
	seq(func(row []T) bool {
		rows = append(rows, row)
		return len(rows) < limit
	})
	return rows
}
