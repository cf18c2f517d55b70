package style

import "fmt"

// Decoration is a text rendition such as bold or underline.
type Decoration int

const (
	NoDecoration Decoration = iota // unset
	Bold
	Faint
	Italic
	Underline
	StrikeThrough
	ResetDecoration
)

var decorationNames = [...]string{
	NoDecoration:    "none",
	Bold:            "bold",
	Faint:           "faint",
	Italic:          "italic",
	Underline:       "underline",
	StrikeThrough:   "strikethrough",
	ResetDecoration: "reset",
}

// https://en.wikipedia.org/wiki/ANSI_escape_code#SGR_(Select_Graphic_Rendition)_parameters
var decorationCodes = [...]string{
	NoDecoration:    "",
	Bold:            "\x1b[1;1m",
	Faint:           "\x1b[1;2m",
	Italic:          "\x1b[1;3m",
	Underline:       "\x1b[1;4m",
	StrikeThrough:   "\x1b[1;9m",
	ResetDecoration: resetCode,
}

// Decorations returns every named decoration, excluding NoDecoration.
func Decorations() []Decoration {
	out := make([]Decoration, 0, len(decorationNames)-1)
	for d := Bold; d <= ResetDecoration; d++ {
		out = append(out, d)
	}
	return out
}

func (d Decoration) valid() bool { return d >= NoDecoration && d <= ResetDecoration }

// String returns the decoration name.
func (d Decoration) String() string {
	if !d.valid() {
		return fmt.Sprintf("Decoration(%d)", int(d))
	}
	return decorationNames[d]
}

// Code returns the escape code for d.
func (d Decoration) Code() string {
	if !d.valid() {
		return ""
	}
	return decorationCodes[d]
}

// ParseDecoration looks up a decoration by name, with the same matching
// rules as [ParseColor].
func ParseDecoration(s string) (Decoration, error) {
	name := normalizeName(s)
	for d, n := range decorationNames {
		if normalizeName(n) == name {
			return Decoration(d), nil
		}
	}
	return NoDecoration, fmt.Errorf("%w: %q", ErrUnknownDecoration, s)
}
