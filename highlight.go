// Package colorcat colorizes source text for terminal display.  The
// lexing and rendering are chroma's; this package selects lexers, derives
// styles from theme documents, and wraps the token stream with colorcat's
// own output filters before the terminal formatter runs.
package colorcat

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2/formatters"

	"colorcat/theme"
)

// Mode selects the output pipeline.
type Mode string

const (
	// ModeFormatted runs the full lexing and coloring pipeline.
	ModeFormatted Mode = "formatted"
	// ModePlain skips tokenizing entirely; only the post-render line
	// decorations (numbers, only-lines) apply.
	ModePlain Mode = "plain"
)

// DefaultBgHighlight is the background index used for line highlights
// when neither the flag nor the config supplies one.
const DefaultBgHighlight = 239

const formatterName = "terminal256"

// Options bundles one highlight run.
type Options struct {
	Source   string
	Filename string       // used for lexer matching; may be empty
	Language string       // explicit lexer override
	Theme    *theme.Theme // nil means the built-in default
	Style    string       // base style name; "" means FallbackStyle
	Mode     Mode         // "" means ModeFormatted

	LineNumbers    bool
	HighlightLines IntSet         // 1-based lines to background-highlight
	OnlyLines      IntSet         // when non-empty, restrict output to these lines
	Pattern        *regexp.Regexp // lines matching are background-highlighted too
	BgColor        int            // 256-color index for line highlights; 0 means default
}

// Highlight runs the pipeline and writes ANSI-escaped text to w.
func Highlight(w io.Writer, opts Options) error {
	t := opts.Theme
	if t == nil {
		t = theme.Default()
	}

	hl := make(IntSet)
	for n := range opts.HighlightLines {
		hl.Add(n)
	}
	if opts.Pattern != nil {
		for i, line := range strings.Split(opts.Source, "\n") {
			if opts.Pattern.MatchString(line) {
				hl.Add(i + 1)
			}
		}
	}
	bg := opts.BgColor
	if bg == 0 {
		bg = DefaultBgHighlight
	}

	var buf bytes.Buffer
	if opts.Mode == ModePlain {
		buf.WriteString(opts.Source)
	} else {
		lexer := SelectLexer(opts.Filename, opts.Source, opts.Language)
		style, err := BuildStyle(orDefault(opts.Style, FallbackStyle), t)
		if err != nil {
			return err
		}
		it, err := lexer.Tokenise(nil, opts.Source)
		if err != nil {
			return fmt.Errorf("tokenise: %w", err)
		}
		it = TriggerFilter(t)(it)
		if len(hl) > 0 {
			it = LineHighlightFilter(hl, bg)(it)
		}
		f := formatters.Get(formatterName)
		if err := f.Format(&buf, style, it); err != nil {
			return fmt.Errorf("format: %w", err)
		}
	}

	return writeLines(w, buf.String(), opts.LineNumbers, opts.OnlyLines)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// writeLines applies the post-render line decorations: numbering and the
// only-lines restriction.  Without either it writes text through intact.
func writeLines(w io.Writer, text string, numbers bool, only IntSet) error {
	if !numbers && len(only) == 0 {
		_, err := io.WriteString(w, text)
		return err
	}
	lines := strings.Split(text, "\n")
	// A trailing newline yields one empty trailing element; drop it so a
	// phantom last line is never numbered.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		n := i + 1
		if len(only) > 0 && !only.Has(n) {
			continue
		}
		if numbers {
			if _, err := fmt.Fprintf(w, "%4d: %s\n", n, line); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
				return err
			}
		}
	}
	return nil
}
