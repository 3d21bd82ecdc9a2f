package theme

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"colorcat/logger"
)

// leafKind discriminates the result of resolving a dotted key path.
type leafKind int

const (
	leafNotFound leafKind = iota
	leafString
	leafInt
	leafBool
	leafList
	leafContainer
)

// leafRef is a typed reference to a settable leaf inside a Theme.  Exactly
// one pointer field is non-nil, matching kind.
type leafRef struct {
	kind leafKind
	str  *string
	num  *int
	b    *bool
	list *[]string
}

// resolve walks t along path and returns a typed reference to the
// destination.  An absent segment yields leafNotFound; a path that stops
// at a section rather than a value yields leafContainer.  Intermediate
// containers are never allocated on behalf of an edit.
func resolve(t *Theme, path []string) leafRef {
	if len(path) == 0 {
		return leafRef{kind: leafNotFound}
	}
	switch path[0] {
	case "offset_settings":
		if len(path) == 1 {
			return leafRef{kind: leafContainer}
		}
		if len(path) != 2 {
			return leafRef{kind: leafNotFound}
		}
		switch path[1] {
		case "default_fg_offset":
			return leafRef{kind: leafInt, num: &t.OffsetSettings.DefaultFgOffset}
		case "default_bg_offset":
			return leafRef{kind: leafInt, num: &t.OffsetSettings.DefaultBgOffset}
		case "highlight_intensity":
			return leafRef{kind: leafInt, num: &t.OffsetSettings.HighlightIntensity}
		}
	case "config_settings":
		if len(path) == 1 {
			return leafRef{kind: leafContainer}
		}
		if len(path) != 2 {
			return leafRef{kind: leafNotFound}
		}
		switch path[1] {
		case "line_numbering":
			return leafRef{kind: leafBool, b: &t.ConfigSettings.LineNumbering}
		case "theme_name":
			return leafRef{kind: leafString, str: &t.ConfigSettings.ThemeName}
		case "themes_dir":
			return leafRef{kind: leafString, str: &t.ConfigSettings.ThemesDir}
		case "autogen_themes_dir":
			return leafRef{kind: leafString, str: &t.ConfigSettings.AutogenThemesDir}
		case "autogen_themes":
			return leafRef{kind: leafBool, b: &t.ConfigSettings.AutogenThemes}
		}
	case "color_settings":
		if len(path) == 1 {
			return leafRef{kind: leafContainer}
		}
		sym, ok := t.ColorSettings[path[1]]
		if !ok {
			return leafRef{kind: leafNotFound}
		}
		if len(path) == 2 {
			return leafRef{kind: leafContainer}
		}
		if len(path) != 3 {
			return leafRef{kind: leafNotFound}
		}
		switch path[2] {
		case "foreground_code":
			return leafRef{kind: leafInt, num: &sym.Foreground}
		case "background_code":
			return leafRef{kind: leafInt, num: &sym.Background}
		case "trigger_characters":
			return leafRef{kind: leafList, list: &sym.Triggers}
		}
	}
	return leafRef{kind: leafNotFound}
}

// Apply applies point edits of the form "dotted.path=value" to t.  A bad
// edit is skipped with a diagnostic and the rest of the batch continues;
// the returned error aggregates per-edit failures, nil when all applied.
func Apply(ctx context.Context, t *Theme, edits []string) error {
	log := logger.L(ctx)
	var errs error
	for _, edit := range edits {
		if err := applyOne(t, edit); err != nil {
			log.Warn("edit skipped", zap.String("edit", edit), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", edit, err))
		}
	}
	return errs
}

func applyOne(t *Theme, edit string) error {
	pathStr, value, ok := strings.Cut(edit, "=")
	if !ok {
		return errors.New(`want "dotted.path=value"`)
	}
	ref := resolve(t, strings.Split(pathStr, "."))
	switch ref.kind {
	case leafString:
		*ref.str = value
	case leafList:
		*ref.list = strings.Split(value, ",")
	case leafInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("integer leaf: %w", err)
		}
		*ref.num = n
	case leafBool:
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("boolean leaf: %w", err)
		}
		*ref.b = v
	case leafContainer:
		return errors.New("path names a section, not a value")
	default:
		return errors.New("no such key")
	}
	return nil
}
