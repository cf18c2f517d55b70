// Package gridprint prints a two-dimensional collection of values as a
// column-aligned, optionally styled grid of text.
//
// A [Printer] is configured once through a [Builder] and then used to
// print any number of grids of the configured shape:
//
//	cars := [][]string{
//		{"Make", "Model", "Color", "Year", "Price"},
//		{"Ford", "Pinto", "Green", "1978", "$750.00"},
//		{"Toyota", "Tacoma", "Red", "2006", "$15,475.23"},
//		{"Lamborghini", "Diablo", "Yellow", "2001", "$238,459.99"},
//	}
//	p := gridprint.NewBuilder(len(cars), len(cars[0])).WithSpacing(4).Build()
//	gridprint.Print(p, cars)
//
// Output:
//
//	Make           Model     Color     Year    Price
//	Ford           Pinto     Green     1978    $750.00
//	Toyota         Tacoma    Red       2006    $15,475.23
//	Lamborghini    Diablo    Yellow    2001    $238,459.99
//
// # Shape
//
// The printer always works on a rows × cols view of its input. Short rows
// and missing rows are padded with empty cells; extra rows and cells are
// never read.
//
// # Styling
//
// Each column may carry a [style.Option]. Styled cells are wrapped in SGR
// escape codes followed by a reset; padding is never styled and escape
// codes never count toward column width.
//
//	b, err := gridprint.NewBuilder(3, 4).
//		WithColumnStyle(0, style.New().Fg(style.Magenta))
//
// # Output
//
// [Print] writes to standard output, [Fprint] to any [io.Writer], and
// [Sprint] returns a string. [FprintSeq] and [FprintChan] take rows from an
// iterator or channel. Every row is flushed as soon as it is written.
//
// # Errors
//
//   - [ErrDimension] — a column index or style count disagrees with the
//     configured column count; returned by [Builder] steps only
//   - [ErrOutput] — writing or flushing the output failed
package gridprint
