package colorcat

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
)

func TestHighlightPlainWithNumbers(t *testing.T) {
	var buf bytes.Buffer
	err := Highlight(&buf, Options{
		Source:      "alpha\nbeta\n",
		Mode:        ModePlain,
		LineNumbers: true,
	})
	if err != nil {
		t.Fatalf("Highlight: %v", err)
	}
	want := "   1: alpha\n   2: beta\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestHighlightOnlyLines(t *testing.T) {
	var buf bytes.Buffer
	err := Highlight(&buf, Options{
		Source:    "one\ntwo\nthree\n",
		Mode:      ModePlain,
		OnlyLines: IntSet{2: {}},
	})
	if err != nil {
		t.Fatalf("Highlight: %v", err)
	}
	if got := buf.String(); got != "two\n" {
		t.Errorf("output = %q, want %q", got, "two\n")
	}
}

func TestHighlightPatternAddsBackground(t *testing.T) {
	var buf bytes.Buffer
	err := Highlight(&buf, Options{
		Source:   "ok line\nERROR bad\nok again\n",
		Filename: "app.log",
		Pattern:  regexp.MustCompile(`ERROR`),
		BgColor:  17,
	})
	if err != nil {
		t.Fatalf("Highlight: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, bgSeq(17)) {
		t.Errorf("output missing background for matched line: %q", out)
	}
	if got := strings.Count(out, bgSeq(17)); got < 1 {
		t.Errorf("background sequences = %d, want at least 1", got)
	}
}

func TestHighlightFormattedEmitsColor(t *testing.T) {
	var buf bytes.Buffer
	err := Highlight(&buf, Options{
		Source:   "if x > 1 {\n\treturn\n}\n",
		Filename: "main.go",
	})
	if err != nil {
		t.Fatalf("Highlight: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("formatted output carries no escape codes: %q", out)
	}
	if !strings.Contains(out, "return") {
		t.Errorf("source text lost in formatting: %q", out)
	}
}

func TestHighlightHighlightLines(t *testing.T) {
	var buf bytes.Buffer
	err := Highlight(&buf, Options{
		Source:         "aaa\nbbb\n",
		Filename:       "notes.txt",
		HighlightLines: IntSet{1: {}},
	})
	if err != nil {
		t.Fatalf("Highlight: %v", err)
	}
	if !strings.Contains(buf.String(), bgSeq(DefaultBgHighlight)) {
		t.Errorf("default background highlight missing: %q", buf.String())
	}
}

func TestHighlightUnknownStyleStillRenders(t *testing.T) {
	var buf bytes.Buffer
	err := Highlight(&buf, Options{
		Source:   "print('hi')\n",
		Filename: "x.py",
		Style:    "definitely-not-a-style",
	})
	if err != nil {
		t.Fatalf("Highlight: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("no output produced")
	}
}
