package main

import (
	"fmt"
	"io"
)

// printColorGrid writes the xterm-256 reference chart: the 16 base
// colors, the 6x6x6 cube in 6-wide rows, and the grayscale ramp.  Each
// cell shows its index on its own background so the terminal does the
// rendering work.
func printColorGrid(w io.Writer) {
	fmt.Fprintln(w, "System colors (0-15):")
	for i := 0; i < 16; i++ {
		cell(w, i)
		if i == 7 || i == 15 {
			fmt.Fprintln(w)
		}
	}
	fmt.Fprintln(w, "\nColor cube (16-231):")
	for i := 16; i < 232; i++ {
		cell(w, i)
		if (i-16)%6 == 5 {
			fmt.Fprintln(w)
		}
		if (i-16)%36 == 35 {
			fmt.Fprintln(w)
		}
	}
	fmt.Fprintln(w, "Grayscale (232-255):")
	for i := 232; i < 256; i++ {
		cell(w, i)
		if (i-232)%12 == 11 {
			fmt.Fprintln(w)
		}
	}
}

func cell(w io.Writer, i int) {
	// Dark foreground on light cells, light on dark, for legible labels.
	fg := 15
	if legibleOnLight(i) {
		fg = 0
	}
	fmt.Fprintf(w, "\x1b[48;5;%dm\x1b[38;5;%dm %3d \x1b[0m", i, fg, i)
}

// legibleOnLight reports whether index i renders as a light background.
func legibleOnLight(i int) bool {
	switch {
	case i < 16:
		return i == 7 || i == 10 || i == 11 || i == 14 || i == 15
	case i >= 232:
		return i >= 244
	default:
		// Approximate cube luminance by the green component.
		g := ((i - 16) / 6) % 6
		return g >= 3
	}
}
