package colorcat

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// SelectLexer picks a lexer for the given source using, in order: the
// explicit language name, the filename, a shebang interpreter line, and
// content analysis.  It always returns a usable lexer, since every
// failure falls through to the plain-text lexer, and the result is
// coalesced so adjacent same-type tokens arrive merged.
func SelectLexer(filename, contents, language string) chroma.Lexer {
	var lexer chroma.Lexer
	switch {
	case language != "":
		lexer = lexers.Get(language)
	case filename != "":
		lexer = lexers.Match(filepath.Base(filename))
	}
	if lexer == nil {
		lexer = detectByShebang(firstLine(contents))
	}
	if lexer == nil && contents != "" {
		lexer = lexers.Analyse(contents)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

// shebangs maps interpreter base-names to lexer names.
// Version suffixes (python3.11, node20, …) are stripped before lookup.
var shebangs = map[string]string{
	// Shell
	"ash":  "bash",
	"bash": "bash",
	"dash": "bash",
	"fish": "fish",
	"ksh":  "bash",
	"sh":   "bash",
	"zsh":  "bash",
	// Python
	"python":  "python",
	"python2": "python",
	"python3": "python",
	// JavaScript / TypeScript
	"bun":     "javascript",
	"deno":    "typescript",
	"node":    "javascript",
	"nodejs":  "javascript",
	"ts-node": "typescript",
	// Ruby / Perl / Lua / PHP
	"lua":  "lua",
	"perl": "perl",
	"php":  "php",
	"ruby": "ruby",
	// Java
	"java":  "java",
	"jbang": "java",
	// Scala
	"amm":    "scala", // Ammonite script runner
	"scala":  "scala",
	"scala3": "scala",
	// Rust
	"rust-script": "rust",
}

// detectByShebang returns a lexer if line starts with a recognized #!
// interpreter line, or nil otherwise.
func detectByShebang(line string) chroma.Lexer {
	interp := shebangInterpreter(line)
	if interp == "" {
		return nil
	}
	name := langForInterpreter(interp)
	if name == "" {
		return nil
	}
	return lexers.Get(name)
}

// shebangInterpreter extracts the interpreter base-name from a shebang
// line.
//
// It handles the common forms:
//
//	#!/bin/bash
//	#!/usr/bin/env python3
//	#!/usr/bin/env -S scala -classpath lib   (env flags are skipped)
func shebangInterpreter(line string) string {
	if !strings.HasPrefix(line, "#!") {
		return ""
	}
	fields := strings.Fields(line[2:])
	if len(fields) == 0 {
		return ""
	}
	base := filepath.Base(fields[0])
	if base == "env" {
		// Skip env flags/options (anything starting with '-') and return the
		// first plain argument, which is the actual interpreter.
		for _, f := range fields[1:] {
			if !strings.HasPrefix(f, "-") {
				return filepath.Base(f)
			}
		}
		return ""
	}
	return base
}

// langForInterpreter maps an interpreter base-name to a lexer name.  It
// first tries an exact match, then strips trailing version characters
// (digits and dots) and tries again, so "python3.11" → "python".
func langForInterpreter(name string) string {
	if id, ok := shebangs[name]; ok {
		return id
	}
	// Strip trailing version suffix: python3.11 → python, node20 → node.
	stripped := strings.TrimRightFunc(name, func(r rune) bool {
		return r == '.' || (r >= '0' && r <= '9')
	})
	if stripped != "" && stripped != name {
		if id, ok := shebangs[stripped]; ok {
			return id
		}
	}
	return ""
}

// firstLine returns s up to (but not including) the first newline, or all
// of s if there is no newline.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
