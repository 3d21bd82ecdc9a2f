// colorcat: syntax highlighting for terminal file viewing.
//
// Reads a file (or piped stdin), picks a lexer by explicit language,
// filename, shebang or content analysis, and prints ANSI-colored text
// decorated by the active theme's trigger and line-highlight filters.
//
// Usage:
//
//	colorcat [-n] [-H 10,20-30] [-l go] [-t mytheme] file.go
//	tail -20 app.log | colorcat -e 'ERROR'
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"regexp"

	"github.com/alecthomas/chroma/v2"
	"go.uber.org/zap"

	"colorcat"
	"colorcat/config"
	"colorcat/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		lineNumbers = flag.Bool("n", false, "display line numbers")
		hlSpec      = flag.String("H", "", `background-highlight these lines, e.g. "10,20-30"`)
		onlySpec    = flag.String("O", "", "restrict output to these lines")
		language    = flag.String("l", "", "explicit language name (overrides detection)")
		themeName   = flag.String("t", "", "theme name (default from config)")
		styleName   = flag.String("style", "", "base style name (default friendly)")
		mode        = flag.String("mode", "formatted", "output mode: formatted or plain")
		bg          = flag.Int("bg", 0, "background highlight color index (0 = config default)")
		pattern     = flag.String("e", "", "background-highlight lines matching this regex")
		meow        = flag.Bool("meow", false, "cat goes meow")
		verbose     = flag.Bool("v", false, "verbose logging")
		cfgDir      = flag.String("d", "", "config directory (default ~/.config/colorcat)")
		cfgFile     = flag.String("f", config.DefaultFileName, "config file name")
	)
	flag.Usage = usage
	flag.Parse()

	log := logger.New(*verbose)
	defer log.Sync() //nolint:errcheck
	ctx := logger.NewContext(context.Background(), log)

	code, name, err := colorcat.ReadInput(os.Stdin, flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *meow {
		art := colorcat.Furball
		if code != "" {
			art = colorcat.WeaveFurball(code)
		}
		colorcat.Meow(os.Stdout, art, rand.Intn(255)+1)
		return 0
	}

	if code == "" {
		// Terminal stdin and no filename: show the cat and the usage.
		colorcat.Meow(os.Stdout, nil, rand.Intn(255)+1)
		fmt.Println("No input file was detected.")
		usage()
		return 0
	}

	dir := *cfgDir
	if dir == "" {
		dir = config.DefaultDir()
	}
	cfg, err := config.Load(ctx, dir, *cfgFile)
	if err != nil {
		log.Error("load config", zap.Error(err))
		return 1
	}

	hl, err := colorcat.ParseLineRanges(*hlSpec)
	if err != nil {
		log.Error("bad -H value", zap.Error(err))
		return 1
	}
	only, err := colorcat.ParseLineRanges(*onlySpec)
	if err != nil {
		log.Error("bad -O value", zap.Error(err))
		return 1
	}
	var re *regexp.Regexp
	if *pattern != "" {
		re, err = regexp.Compile(*pattern)
		if err != nil {
			log.Error("bad -e pattern", zap.Error(err))
			return 1
		}
	}

	tn := *themeName
	if tn == "" {
		tn = cfg.Script.ThemeName
	}
	th, err := cfg.Registry().Load(ctx, tn)
	if err != nil {
		log.Error("load theme", zap.String("theme", tn), zap.Error(err))
		return 1
	}

	bgIdx := *bg
	if bgIdx == 0 {
		bgIdx = cfg.DefaultBgHighlight
	}

	if colorcat.Mode(*mode) == colorcat.ModeFormatted && flag.Arg(0) != "" {
		printDetected(colorcat.SelectLexer(name, code, *language))
	}

	opts := colorcat.Options{
		Source:         code,
		Filename:       name,
		Language:       *language,
		Theme:          th,
		Style:          *styleName,
		Mode:           colorcat.Mode(*mode),
		LineNumbers:    *lineNumbers || cfg.Script.LineNumbering,
		HighlightLines: hl,
		OnlyLines:      only,
		Pattern:        re,
		BgColor:        bgIdx,
	}
	if err := colorcat.Highlight(os.Stdout, opts); err != nil {
		log.Error("highlight", zap.Error(err))
		return 1
	}
	return 0
}

// printDetected announces the detected language, with the name in a
// random color inside yellow brackets.
func printDetected(lexer chroma.Lexer) {
	random := rand.Intn(255) + 1
	fmt.Printf("Language Detected: \x1b[38;5;226m[\x1b[38;5;%dm%s\x1b[0m\x1b[38;5;226m]\x1b[0m\n",
		random, lexer.Config().Name)
}

// usage prints the flag defaults through the trigger colorizer so the
// help output shows the theme off.
func usage() {
	var b bytes.Buffer
	fmt.Fprintf(&b, "ColorCat: enhanced source code highlighting for the terminal.\n\n")
	fmt.Fprintf(&b, "Usage: colorcat [flags] [filename]\n\n")
	fs := flag.CommandLine
	out := fs.Output()
	fs.SetOutput(&b)
	fs.PrintDefaults()
	fs.SetOutput(out)
	fmt.Fprint(os.Stderr, colorcat.ColorizeHelp(b.String(), nil))
}
