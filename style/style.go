// Package style renders text wrapped in ANSI SGR escape sequences.
//
// An [Option] combines an optional foreground [Color], background [Color],
// and [Decoration]. The zero value of each field means "unset" and
// contributes no escape code. Codes are emitted unconditionally; no
// terminal capability detection is performed.
package style

import (
	"errors"
	"strings"
)

// Sentinel errors for name parsing.
var (
	ErrUnknownColor      = errors.New("unknown color")
	ErrUnknownDecoration = errors.New("unknown decoration")
)

const resetCode = "\x1b[1;0m"

// ResetCode returns the sequence appended after every styled string.
func ResetCode() string { return resetCode }

// Option is an immutable set of styling directives. Options are compared
// with == and copied freely.
type Option struct {
	Foreground Color      `yaml:"fg,omitempty" json:"fg,omitempty"`
	Background Color      `yaml:"bg,omitempty" json:"bg,omitempty"`
	Decoration Decoration `yaml:"decoration,omitempty" json:"decoration,omitempty"`
}

// New returns an Option with nothing set.
func New() Option { return Option{} }

// Fg returns a copy of o with the foreground set to c.
func (o Option) Fg(c Color) Option {
	o.Foreground = c
	return o
}

// Bg returns a copy of o with the background set to c.
func (o Option) Bg(c Color) Option {
	o.Background = c
	return o
}

// Decorate returns a copy of o with the decoration set to d.
func (o Option) Decorate(d Decoration) Option {
	o.Decoration = d
	return o
}

// Prefix returns the escape codes emitted before styled text, in
// foreground, background, decoration order.
func (o Option) Prefix() string {
	return o.Foreground.Foreground() + o.Background.Background() + o.Decoration.Code()
}

// Render wraps text in the option's escape codes followed by a reset.
func (o Option) Render(text string) string {
	var sb strings.Builder
	prefix := o.Prefix()
	sb.Grow(len(prefix) + len(text) + len(resetCode))
	sb.WriteString(prefix)
	sb.WriteString(text)
	sb.WriteString(resetCode)
	return sb.String()
}

// Render returns text unchanged when opt is nil, otherwise opt.Render(text).
func Render(text string, opt *Option) string {
	if opt == nil {
		return text
	}
	return opt.Render(text)
}

// normalizeName folds case and drops separators so "Bright-Yellow",
// "bright_yellow" and "brightyellow" are the same name.
func normalizeName(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch r {
		case '-', '_', ' ':
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
