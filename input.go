package colorcat

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ReadInput returns the text to highlight and a display name for it.
// Piped stdin wins over a filename argument; a terminal-attached stdin
// with no filename yields ("", "", nil) so the caller can show usage
// instead of blocking on a read.
func ReadInput(stdin *os.File, filename string) (code, name string, err error) {
	fd := stdin.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		if filename == "" {
			filename = "stdin"
		}
		return string(data), filename, nil
	}
	if filename == "" {
		return "", "", nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", filename, err)
	}
	return string(data), filename, nil
}
