// Package theme manages colorcat's named theme documents: the color table
// driving trigger highlighting, plus per-theme offset and script defaults.
// Themes are YAML files in a themes directory; the "default" theme is
// synthesized in memory when no file exists and persisted only on an
// explicit save.
package theme

// OffsetSettings holds the default deltas used when an offset spec does
// not name a category explicitly.
type OffsetSettings struct {
	DefaultFgOffset    int `yaml:"default_fg_offset"`
	DefaultBgOffset    int `yaml:"default_bg_offset"`
	HighlightIntensity int `yaml:"highlight_intensity"`
}

// ConfigSettings carries the per-theme script defaults.
type ConfigSettings struct {
	LineNumbering    bool   `yaml:"line_numbering"`
	ThemeName        string `yaml:"theme_name"`
	ThemesDir        string `yaml:"themes_dir"`
	AutogenThemesDir string `yaml:"autogen_themes_dir"`
	AutogenThemes    bool   `yaml:"autogen_themes"`
}

// Symbol maps a named category of input characters or token kinds to a
// foreground/background color pair (0–255 terminal indices).  Triggers is
// the set of literal characters or substrings that apply the pair when
// encountered in input text; every persisted symbol must carry at least one.
type Symbol struct {
	Foreground int      `yaml:"foreground_code"`
	Background int      `yaml:"background_code"`
	Triggers   []string `yaml:"trigger_characters"`
}

// Theme is a self-contained theme document.
type Theme struct {
	OffsetSettings OffsetSettings     `yaml:"offset_settings"`
	ConfigSettings ConfigSettings     `yaml:"config_settings"`
	ColorSettings  map[string]*Symbol `yaml:"color_settings"`
}

// Clone returns a deep copy of t, so offset application and point edits
// never mutate the caller's document.
func (t *Theme) Clone() *Theme {
	out := &Theme{
		OffsetSettings: t.OffsetSettings,
		ConfigSettings: t.ConfigSettings,
		ColorSettings:  make(map[string]*Symbol, len(t.ColorSettings)),
	}
	for name, sym := range t.ColorSettings {
		cp := *sym
		cp.Triggers = append([]string(nil), sym.Triggers...)
		out.ColorSettings[name] = &cp
	}
	return out
}

// Default returns the built-in theme.  Colors are 256-color indices; the
// word-like triggers on token-kind symbols (conditionals, builtins) match
// whole tokens only, never substrings inside longer words.
func Default() *Theme {
	return &Theme{
		OffsetSettings: OffsetSettings{
			DefaultFgOffset:    0,
			DefaultBgOffset:    0,
			HighlightIntensity: 5,
		},
		ConfigSettings: ConfigSettings{
			LineNumbering:    false,
			ThemeName:        "default",
			ThemesDir:        "themes",
			AutogenThemesDir: "autogen-themes",
			AutogenThemes:    true,
		},
		ColorSettings: map[string]*Symbol{
			"escape_sequence":             {Foreground: 93, Background: 93, Triggers: []string{`\`}},
			"curly_braces":                {Foreground: 1, Background: 1, Triggers: []string{"{", "}"}},
			"parens":                      {Foreground: 163, Background: 163, Triggers: []string{"(", ")"}},
			"bracket_square":              {Foreground: 202, Background: 202, Triggers: []string{"[", "]"}},
			"pacman_greaterthan_lessthan": {Foreground: 201, Background: 201, Triggers: []string{"<", ">"}},
			"single_quote":                {Foreground: 11, Background: 11, Triggers: []string{"'"}},
			"double_quote":                {Foreground: 51, Background: 51, Triggers: []string{`"`}},
			"smart_quote":                 {Foreground: 84, Background: 84, Triggers: []string{"“", "”"}},
			"curly_quote":                 {Foreground: 86, Background: 86, Triggers: []string{"‘", "’"}},
			"double_low_9_quotation_mark": {Foreground: 121, Background: 121, Triggers: []string{"„", "‟"}},
			"multi_line_comment":          {Foreground: 32, Background: 32, Triggers: []string{"/*", "*/"}},
			"single_line_comment":         {Foreground: 36, Background: 36, Triggers: []string{"//"}},
			"backtick":                    {Foreground: 47, Background: 47, Triggers: []string{"`"}},
			"comma":                       {Foreground: 112, Background: 112, Triggers: []string{","}},
			"colon":                       {Foreground: 172, Background: 172, Triggers: []string{":"}},
			"semicolon":                   {Foreground: 79, Background: 79, Triggers: []string{";"}},
			"period":                      {Foreground: 184, Background: 184, Triggers: []string{"."}},
			"ellipsis":                    {Foreground: 186, Background: 186, Triggers: []string{"…", "..."}},
			"exclamation":                 {Foreground: 155, Background: 155, Triggers: []string{"!"}},
			"question":                    {Foreground: 87, Background: 87, Triggers: []string{"?"}},
			"strings":                     {Foreground: 81, Background: 81, Triggers: []string{`"`, "'"}},
			"function_names":              {Foreground: 189, Background: 189, Triggers: []string{"func", "def", "fn"}},
			"conditionals":                {Foreground: 209, Background: 209, Triggers: []string{"if", "else", "elif", "for", "while"}},
			"builtin_functions":           {Foreground: 181, Background: 181, Triggers: []string{"print", "len", "input"}},
			"numbers":                     {Foreground: 11, Background: 11, Triggers: []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}},
			"operators":                   {Foreground: 207, Background: 207, Triggers: []string{"+", "-", "*", "=", "%", "&", "|", "^", "~"}},
			"variables":                   {Foreground: 203, Background: 203, Triggers: []string{"_"}},
			"punctuation":                 {Foreground: 87, Background: 87, Triggers: []string{"@", "#", "$"}},
		},
	}
}
