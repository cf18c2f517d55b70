package gridprint

import "fmt"

// cellText returns the display form of a cell value.
func cellText[T any](v T) string {
	switch c := any(v).(type) {
	case string:
		return c
	case fmt.Stringer:
		return fmt.Sprint(c)
	default:
		return fmt.Sprintf("%v", v)
	}
}
