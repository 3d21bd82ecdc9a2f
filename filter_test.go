package colorcat

import (
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2"

	"colorcat/theme"
)

func filterTheme() *theme.Theme {
	return &theme.Theme{
		ColorSettings: map[string]*theme.Symbol{
			"comma":        {Foreground: 112, Background: 112, Triggers: []string{","}},
			"parens":       {Foreground: 163, Background: 163, Triggers: []string{"(", ")"}},
			"ellipsis":     {Foreground: 186, Background: 186, Triggers: []string{"..."}},
			"period":       {Foreground: 184, Background: 184, Triggers: []string{"."}},
			"conditionals": {Foreground: 209, Background: 209, Triggers: []string{"if"}},
		},
	}
}

func drain(it chroma.Iterator) []chroma.Token {
	var out []chroma.Token
	for tok := it(); tok != chroma.EOF; tok = it() {
		out = append(out, tok)
	}
	return out
}

func joined(toks []chroma.Token) string {
	var b strings.Builder
	for _, tok := range toks {
		b.WriteString(tok.Value)
	}
	return b.String()
}

func TestTriggerFilterSubstrings(t *testing.T) {
	f := TriggerFilter(filterTheme())
	in := []chroma.Token{
		{Type: chroma.Punctuation, Value: "(a, b)"},
	}
	got := joined(drain(f(chroma.Literator(in...))))
	for _, want := range []string{
		fgSeq(163) + "(" + ansiReset,
		fgSeq(112) + "," + ansiReset,
		fgSeq(163) + ")" + ansiReset,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing colored trigger %q", got, want)
		}
	}
	if !strings.Contains(got, "a") || !strings.Contains(got, "b") {
		t.Errorf("output %q lost non-trigger text", got)
	}
}

func TestTriggerFilterLongestWins(t *testing.T) {
	f := TriggerFilter(filterTheme())
	in := []chroma.Token{{Type: chroma.Text, Value: "wait..."}}
	got := joined(drain(f(chroma.Literator(in...))))
	if !strings.Contains(got, fgSeq(186)+"...") {
		t.Errorf("ellipsis not matched ahead of period: %q", got)
	}
	if strings.Contains(got, fgSeq(184)) {
		t.Errorf("period color leaked into an ellipsis: %q", got)
	}
}

func TestTriggerFilterWordsMatchWholeTokensOnly(t *testing.T) {
	f := TriggerFilter(filterTheme())
	in := []chroma.Token{
		{Type: chroma.Keyword, Value: "if"},
		{Type: chroma.Text, Value: " "},
		{Type: chroma.Name, Value: "life"},
	}
	got := drain(f(chroma.Literator(in...)))
	if want := fgSeq(209) + "if" + ansiReset; got[0].Value != want {
		t.Errorf("whole-token keyword = %q, want %q", got[0].Value, want)
	}
	if got[0].Type != chroma.Text {
		t.Errorf("recolored token kept type %v, want retag to Text", got[0].Type)
	}
	if got[2].Value != "life" {
		t.Errorf("word trigger recolored inside %q", got[2].Value)
	}
}

func TestLineHighlightFilter(t *testing.T) {
	lines := IntSet{2: {}}
	f := LineHighlightFilter(lines, 239)
	in := []chroma.Token{
		{Type: chroma.Text, Value: "one\ntwo\nthree\n"},
	}
	got := joined(drain(f(chroma.Literator(in...))))
	want := "one\n" + bgSeq(239) + "two" + ansiReset + "\nthree\n"
	if got != want {
		t.Errorf("highlighted output = %q, want %q", got, want)
	}
}

func TestLineHighlightFilterCountsAcrossTokens(t *testing.T) {
	lines := IntSet{3: {}}
	f := LineHighlightFilter(lines, 17)
	in := []chroma.Token{
		{Type: chroma.Text, Value: "a\nb"},
		{Type: chroma.Text, Value: "\n"},
		{Type: chroma.Text, Value: "c\n"},
	}
	got := joined(drain(f(chroma.Literator(in...))))
	want := "a\nb\n" + bgSeq(17) + "c" + ansiReset + "\n"
	if got != want {
		t.Errorf("highlighted output = %q, want %q", got, want)
	}
}
