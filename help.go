package colorcat

import (
	"strings"

	"colorcat/theme"
)

const helpDefaultFg = 81 // the "strings" color in the stock theme

// ColorizeHelp recolors a usage message with the theme's trigger colors:
// single-character punctuation triggers pick up their symbol color,
// everything else renders in the theme's strings color.
func ColorizeHelp(text string, t *theme.Theme) string {
	if t == nil {
		t = theme.Default()
	}
	deflt := helpDefaultFg
	if s, ok := t.ColorSettings["strings"]; ok {
		deflt = s.Foreground
	}

	tab := buildTriggerTable(t)
	byRune := make(map[rune]int)
	for _, e := range tab.subs {
		if r := []rune(e.lit); len(r) == 1 {
			byRune[r[0]] = e.fg
		}
	}

	var b strings.Builder
	current := -1
	for _, ch := range text {
		want := deflt
		if ch == '\n' {
			// Reset at line ends so pagers don't carry color across lines.
			if current != -1 {
				b.WriteString(ansiReset)
				current = -1
			}
			b.WriteRune(ch)
			continue
		}
		if fg, ok := byRune[ch]; ok {
			want = fg
		}
		if want != current {
			b.WriteString(fgSeq(want))
			current = want
		}
		b.WriteRune(ch)
	}
	if current != -1 {
		b.WriteString(ansiReset)
	}
	return b.String()
}
