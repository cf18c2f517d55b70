package style

import "fmt"

// Color is one of the 16 named terminal colors or Reset. The same set is
// used for foreground and background; each has its own escape table.
type Color int

const (
	None Color = iota // unset
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
	Reset
)

var colorNames = [...]string{
	None:          "none",
	Black:         "black",
	Red:           "red",
	Green:         "green",
	Yellow:        "yellow",
	Blue:          "blue",
	Magenta:       "magenta",
	Cyan:          "cyan",
	White:         "white",
	BrightBlack:   "bright-black",
	BrightRed:     "bright-red",
	BrightGreen:   "bright-green",
	BrightYellow:  "bright-yellow",
	BrightBlue:    "bright-blue",
	BrightMagenta: "bright-magenta",
	BrightCyan:    "bright-cyan",
	BrightWhite:   "bright-white",
	Reset:         "reset",
}

var fgCodes = [...]string{
	None:          "",
	Black:         "\x1b[1;30m",
	Red:           "\x1b[1;31m",
	Green:         "\x1b[1;32m",
	Yellow:        "\x1b[1;33m",
	Blue:          "\x1b[1;34m",
	Magenta:       "\x1b[1;35m",
	Cyan:          "\x1b[1;36m",
	White:         "\x1b[1;37m",
	BrightBlack:   "\x1b[1;90m",
	BrightRed:     "\x1b[1;91m",
	BrightGreen:   "\x1b[1;92m",
	BrightYellow:  "\x1b[1;93m",
	BrightBlue:    "\x1b[1;94m",
	BrightMagenta: "\x1b[1;95m",
	BrightCyan:    "\x1b[1;96m",
	BrightWhite:   "\x1b[1;97m",
	Reset:         resetCode,
}

var bgCodes = [...]string{
	None:          "",
	Black:         "\x1b[1;40m",
	Red:           "\x1b[1;41m",
	Green:         "\x1b[1;42m",
	Yellow:        "\x1b[1;43m",
	Blue:          "\x1b[1;44m",
	Magenta:       "\x1b[1;45m",
	Cyan:          "\x1b[1;46m",
	White:         "\x1b[1;47m",
	BrightBlack:   "\x1b[1;100m",
	BrightRed:     "\x1b[1;101m",
	BrightGreen:   "\x1b[1;102m",
	BrightYellow:  "\x1b[1;103m",
	BrightBlue:    "\x1b[1;104m",
	BrightMagenta: "\x1b[1;105m",
	BrightCyan:    "\x1b[1;106m",
	BrightWhite:   "\x1b[1;107m",
	Reset:         resetCode,
}

// Colors returns every named color, excluding None.
func Colors() []Color {
	out := make([]Color, 0, len(colorNames)-1)
	for c := Black; c <= Reset; c++ {
		out = append(out, c)
	}
	return out
}

func (c Color) valid() bool { return c >= None && c <= Reset }

// String returns the color name, e.g. "bright-yellow".
func (c Color) String() string {
	if !c.valid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// Foreground returns the escape code that sets c as the text color.
func (c Color) Foreground() string {
	if !c.valid() {
		return ""
	}
	return fgCodes[c]
}

// Background returns the escape code that sets c as the background color.
func (c Color) Background() string {
	if !c.valid() {
		return ""
	}
	return bgCodes[c]
}

// ParseColor looks up a color by name. Matching ignores case, spaces,
// dashes and underscores.
func ParseColor(s string) (Color, error) {
	name := normalizeName(s)
	for c, n := range colorNames {
		if normalizeName(n) == name {
			return Color(c), nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}
