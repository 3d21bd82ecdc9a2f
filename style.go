package colorcat

import (
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"

	"colorcat/theme"
)

// FallbackStyle is the base style used when the requested one is unknown.
const FallbackStyle = "friendly"

// tokenOverrides maps theme symbol names to the chroma token categories
// they restyle.  Symbols without an entry here color only through their
// trigger characters.
var tokenOverrides = map[string]chroma.TokenType{
	"strings":             chroma.LiteralString,
	"single_line_comment": chroma.CommentSingle,
	"multi_line_comment":  chroma.CommentMultiline,
	"function_names":      chroma.NameFunction,
	"conditionals":        chroma.Keyword,
	"builtin_functions":   chroma.NameBuiltin,
	"numbers":             chroma.LiteralNumber,
	"operators":           chroma.Operator,
	"variables":           chroma.Name,
	"punctuation":         chroma.Punctuation,
}

// BuildStyle derives a style from the named built-in (falling back to
// FallbackStyle) merged with the theme's per-category color overrides.
func BuildStyle(name string, t *theme.Theme) (*chroma.Style, error) {
	base, ok := styles.Registry[name]
	if !ok {
		base = styles.Registry[FallbackStyle]
	}
	builder := base.Builder()
	for sym, tok := range tokenOverrides {
		s, ok := t.ColorSettings[sym]
		if !ok {
			continue
		}
		builder.Add(tok, xtermHex(s.Foreground))
	}
	return builder.Build()
}

// xtermHex converts a 256-color terminal index to the "#rrggbb" form the
// style builder accepts.
func xtermHex(i int) string {
	r, g, b := xtermRGB(i)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// base16 is the standard xterm palette for indices 0–15.
var base16 = [16][3]int{
	{0x00, 0x00, 0x00}, {0x80, 0x00, 0x00}, {0x00, 0x80, 0x00}, {0x80, 0x80, 0x00},
	{0x00, 0x00, 0x80}, {0x80, 0x00, 0x80}, {0x00, 0x80, 0x80}, {0xc0, 0xc0, 0xc0},
	{0x80, 0x80, 0x80}, {0xff, 0x00, 0x00}, {0x00, 0xff, 0x00}, {0xff, 0xff, 0x00},
	{0x00, 0x00, 0xff}, {0xff, 0x00, 0xff}, {0x00, 0xff, 0xff}, {0xff, 0xff, 0xff},
}

// cubeLevels are the channel values of the 6×6×6 color cube (16–231).
var cubeLevels = [6]int{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}

// xtermRGB resolves a 256-color index against the standard xterm palette:
// 16 base colors, the 6×6×6 cube, then the 24-step grayscale ramp.
// Out-of-range indices are clamped.
func xtermRGB(i int) (r, g, b int) {
	switch {
	case i < 0:
		i = 0
	case i > 255:
		i = 255
	}
	switch {
	case i < 16:
		c := base16[i]
		return c[0], c[1], c[2]
	case i < 232:
		c := i - 16
		return cubeLevels[c/36], cubeLevels[(c%36)/6], cubeLevels[c%6]
	default:
		v := 8 + (i-232)*10
		return v, v, v
	}
}
