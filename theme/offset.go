package theme

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Wildcard addresses every symbol not otherwise named in an offset spec.
const Wildcard = "all"

// Delta is a signed foreground/background adjustment pair.
type Delta struct {
	Fg int
	Bg int
}

// Offsets maps symbol names (or Wildcard) to deltas.
type Offsets map[string]Delta

// ParseOffsets parses a compact offset spec: whitespace-separated pairs of
// "<category> <fg>,<bg>", e.g. "comma 5,0 all 1,1".  Category is a symbol
// name or "all".  Deltas may be negative or exceed 255; they wrap when
// applied.
func ParseOffsets(spec string) (Offsets, error) {
	fields := strings.Fields(spec)
	if len(fields) == 0 {
		return nil, errors.New("empty offset spec")
	}
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf(`offset spec %q: want pairs of "category fg,bg"`, spec)
	}
	offs := make(Offsets, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		name := fields[i]
		fg, bg, ok := strings.Cut(fields[i+1], ",")
		if !ok {
			return nil, fmt.Errorf(`offsets %q for %s: want "fg,bg"`, fields[i+1], name)
		}
		fgd, err := strconv.Atoi(fg)
		if err != nil {
			return nil, fmt.Errorf("fg offset for %s: %w", name, err)
		}
		bgd, err := strconv.Atoi(bg)
		if err != nil {
			return nil, fmt.Errorf("bg offset for %s: %w", name, err)
		}
		offs[name] = Delta{Fg: fgd, Bg: bgd}
	}
	return offs, nil
}

// wrap maps v+d into the 0–255 terminal color range, wrapping in both
// directions.
func wrap(v, d int) int {
	m := (v + d) % 256
	if m < 0 {
		m += 256
	}
	return m
}

// ApplyOffsets returns a copy of t with offs applied to its color table.
// A delta named for a specific symbol fully overrides the wildcard for
// that symbol; symbols addressed by neither are copied unchanged.
func ApplyOffsets(t *Theme, offs Offsets) *Theme {
	out := t.Clone()
	wild, haveWild := offs[Wildcard]
	for name, sym := range out.ColorSettings {
		d, ok := offs[name]
		if !ok {
			if !haveWild {
				continue
			}
			d = wild
		}
		sym.Foreground = wrap(sym.Foreground, d.Fg)
		sym.Background = wrap(sym.Background, d.Bg)
	}
	return out
}
