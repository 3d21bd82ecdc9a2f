package colorcat

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/alecthomas/chroma/v2"

	"colorcat/theme"
)

// Output filters wrap a chroma.Iterator and rewrite token values before
// the formatter sees them.  Escape codes are embedded directly in token
// values; terminal formatters emit values verbatim, so an embedded color
// wins over the token's own style while it is active.

const ansiReset = "\x1b[0m"

func fgSeq(idx int) string { return fmt.Sprintf("\x1b[38;5;%dm", idx) }
func bgSeq(idx int) string { return fmt.Sprintf("\x1b[48;5;%dm", idx) }

// Filter transforms one token iterator into another.
type Filter func(chroma.Iterator) chroma.Iterator

// triggerTable is the flattened trigger lookup for one theme.  Substring
// triggers (punctuation) are scanned inside token values, longest first;
// word triggers (letters, digits, underscore) match whole token values
// only, so "if" never recolors the middle of "life".
type triggerTable struct {
	subs  []triggerEntry
	words map[string]int
}

type triggerEntry struct {
	lit string
	fg  int
}

// buildTriggerTable flattens the theme's symbols.  Symbols are visited in
// sorted name order and the first claim on a trigger wins, so overlapping
// triggers resolve deterministically.
func buildTriggerTable(t *theme.Theme) *triggerTable {
	names := make([]string, 0, len(t.ColorSettings))
	for name := range t.ColorSettings {
		names = append(names, name)
	}
	sort.Strings(names)

	tab := &triggerTable{words: make(map[string]int)}
	claimed := make(map[string]bool)
	for _, name := range names {
		sym := t.ColorSettings[name]
		for _, trig := range sym.Triggers {
			if trig == "" || claimed[trig] {
				continue
			}
			claimed[trig] = true
			if isWord(trig) {
				tab.words[trig] = sym.Foreground
			} else {
				tab.subs = append(tab.subs, triggerEntry{lit: trig, fg: sym.Foreground})
			}
		}
	}
	// Longest first so "..." wins over "." at the same position.
	sort.SliceStable(tab.subs, func(i, j int) bool {
		return len(tab.subs[i].lit) > len(tab.subs[j].lit)
	})
	return tab
}

func isWord(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

// TriggerFilter recolors the theme's trigger characters and substrings
// wherever they appear in the token stream.
func TriggerFilter(t *theme.Theme) Filter {
	tab := buildTriggerTable(t)
	return func(it chroma.Iterator) chroma.Iterator {
		return func() chroma.Token {
			tok := it()
			if tok == chroma.EOF {
				return tok
			}
			if fg, ok := tab.words[tok.Value]; ok {
				tok.Value = fgSeq(fg) + tok.Value + ansiReset
				tok.Type = chroma.Text
				return tok
			}
			if rewritten, changed := tab.rewrite(tok.Value); changed {
				tok.Value = rewritten
			}
			return tok
		}
	}
}

// rewrite colors every occurrence of a substring trigger inside value.
// Triggers are tried longest-first at each byte position.
func (tab *triggerTable) rewrite(value string) (string, bool) {
	var b strings.Builder
	changed := false
	i := 0
outer:
	for i < len(value) {
		for _, e := range tab.subs {
			if strings.HasPrefix(value[i:], e.lit) {
				b.WriteString(fgSeq(e.fg))
				b.WriteString(e.lit)
				b.WriteString(ansiReset)
				i += len(e.lit)
				changed = true
				continue outer
			}
		}
		b.WriteByte(value[i])
		i++
	}
	if !changed {
		return value, false
	}
	return b.String(), true
}

// LineHighlightFilter applies a background color to every line whose
// 1-based number is in lines.  Token values are split on newlines so the
// background never bleeds across line boundaries; the line counter is
// carried across tokens.
func LineHighlightFilter(lines IntSet, bg int) Filter {
	return func(it chroma.Iterator) chroma.Iterator {
		line := 1
		var queue []chroma.Token
		return func() chroma.Token {
			for {
				if len(queue) > 0 {
					tok := queue[0]
					queue = queue[1:]
					return tok
				}
				tok := it()
				if tok == chroma.EOF {
					return tok
				}
				for _, part := range strings.SplitAfter(tok.Value, "\n") {
					if part == "" {
						continue
					}
					content, hasNL := strings.CutSuffix(part, "\n")
					if lines.Has(line) && content != "" {
						content = bgSeq(bg) + content + ansiReset
					}
					if hasNL {
						line++
						content += "\n"
					}
					queue = append(queue, chroma.Token{Type: tok.Type, Value: content})
				}
			}
		}
	}
}
