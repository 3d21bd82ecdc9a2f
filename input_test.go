package colorcat

import (
	"os"
	"testing"
)

// pipeWith returns the read end of a pipe pre-loaded with content, which
// stands in for piped stdin.
func pipeWith(t *testing.T, content string) *os.File {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { r.Close() })
	if _, err := w.WriteString(content); err != nil {
		t.Fatal(err)
	}
	w.Close()
	return r
}

func TestReadInputPipedStdin(t *testing.T) {
	code, name, err := ReadInput(pipeWith(t, "piped text"), "")
	if err != nil {
		t.Fatalf("ReadInput: %v", err)
	}
	if code != "piped text" {
		t.Errorf("code = %q, want %q", code, "piped text")
	}
	if name != "stdin" {
		t.Errorf("name = %q, want stdin", name)
	}
}

func TestReadInputPipedStdinKeepsFilenameForLexing(t *testing.T) {
	// A filename alongside piped input names the stream for lexer
	// matching; the pipe still supplies the text.
	code, name, err := ReadInput(pipeWith(t, "x = 1\n"), "conf.py")
	if err != nil {
		t.Fatalf("ReadInput: %v", err)
	}
	if code != "x = 1\n" {
		t.Errorf("code = %q, want piped content", code)
	}
	if name != "conf.py" {
		t.Errorf("name = %q, want conf.py", name)
	}
}

func TestReadInputEmptyPipe(t *testing.T) {
	code, name, err := ReadInput(pipeWith(t, ""), "")
	if err != nil {
		t.Fatalf("ReadInput on empty pipe: %v", err)
	}
	if code != "" {
		t.Errorf("code = %q, want empty", code)
	}
	if name != "stdin" {
		t.Errorf("name = %q, want stdin", name)
	}
}
