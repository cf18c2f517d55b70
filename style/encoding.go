package style

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// MarshalText implements [encoding.TextMarshaler].
func (c Color) MarshalText() ([]byte, error) {
	if !c.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownColor, int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Color) UnmarshalText(text []byte) error {
	v, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalYAML implements [yaml.Marshaler].
func (c Color) MarshalYAML() (any, error) {
	text, err := c.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return c.UnmarshalText([]byte(s))
}

// MarshalText implements [encoding.TextMarshaler].
func (d Decoration) MarshalText() ([]byte, error) {
	if !d.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDecoration, int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *Decoration) UnmarshalText(text []byte) error {
	v, err := ParseDecoration(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalYAML implements [yaml.Marshaler].
func (d Decoration) MarshalYAML() (any, error) {
	text, err := d.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (d *Decoration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// ParseOptions decodes a YAML sequence of per-column options. A null entry
// leaves that column unstyled:
//
//	[{fg: magenta}, ~, {fg: black, bg: white, decoration: italic}]
//
// Empty input returns a nil slice. Unknown keys are rejected.
func ParseOptions(s string) ([]*Option, error) {
	dec := yaml.NewDecoder(strings.NewReader(s))
	dec.KnownFields(true)
	var opts []*Option
	if err := dec.Decode(&opts); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode column styles: %w", err)
	}
	return opts, nil
}

// FormatOptions encodes per-column options in the form accepted by
// [ParseOptions].
func FormatOptions(opts []*Option) (string, error) {
	var sb strings.Builder
	enc := yaml.NewEncoder(&sb)
	if err := enc.Encode(opts); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
