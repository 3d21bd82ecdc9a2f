// Package config implements the colorcat configuration store: a single
// YAML document under the user's config directory, validated on every
// load and regenerated (after a timestamped backup) when its shape is
// wrong.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"colorcat/logger"
	"colorcat/theme"
)

// DefaultFileName is the config document's filename inside the root dir.
const DefaultFileName = "colorcat.yaml"

// ScriptSettings holds the viewer defaults and the sub-paths (relative to
// RootDir) of the two theme directories.
type ScriptSettings struct {
	LineNumbering    bool   `yaml:"line_numbering"`
	ThemeName        string `yaml:"theme_name"`
	ThemesDir        string `yaml:"themes_dir"`
	AutogenThemesDir string `yaml:"autogen_themes_dir"`
	AutogenThemes    bool   `yaml:"autogen_themes"`
}

// Config is the top-level configuration document.  It is distinct from a
// theme document: it locates the theme store rather than describing colors.
type Config struct {
	RootDir            string               `yaml:"root_dir"`
	DefaultBgHighlight int                  `yaml:"default_bg_highlight"`
	ColorUpperBound    int                  `yaml:"color_upper_bound"`
	Offsets            theme.OffsetSettings `yaml:"offset_settings"`
	Script             ScriptSettings       `yaml:"script_settings"`
}

// DefaultDir returns the conventional config root, ~/.config/colorcat.
// If the home directory cannot be determined it falls back to a relative
// path, keeping first-run usable in stripped-down environments.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "colorcat")
	}
	return filepath.Join(home, ".config", "colorcat")
}

// Default returns the in-memory default document.
func Default() *Config {
	return &Config{
		RootDir:            DefaultDir(),
		DefaultBgHighlight: 239,
		ColorUpperBound:    255,
		Offsets: theme.OffsetSettings{
			DefaultFgOffset:    0,
			DefaultBgOffset:    0,
			HighlightIntensity: 5,
		},
		Script: ScriptSettings{
			LineNumbering:    false,
			ThemeName:        "default",
			ThemesDir:        "themes",
			AutogenThemesDir: "autogen-themes",
			AutogenThemes:    true,
		},
	}
}

// ThemesPath resolves the curated themes directory under RootDir.
func (c *Config) ThemesPath() string {
	return filepath.Join(c.RootDir, c.Script.ThemesDir)
}

// AutogenPath resolves the autogenerated-themes directory under RootDir.
func (c *Config) AutogenPath() string {
	return filepath.Join(c.RootDir, c.Script.AutogenThemesDir)
}

// Registry builds a theme registry rooted at this config's directories.
func (c *Config) Registry() *theme.Registry {
	return &theme.Registry{Dir: c.ThemesPath(), AutogenDir: c.AutogenPath()}
}

// Load reads dir/filename, creating a default document first when the
// file is absent.  The loaded document is always validated against
// Required; on failure the file is renamed to a timestamped backup and a
// fresh default is written and returned.  That recovery is deliberately
// destructive; there is no partial key healing.
func Load(ctx context.Context, dir, filename string) (*Config, error) {
	path := filepath.Join(dir, filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		logger.L(ctx).Info("no config file found, creating defaults", zap.String("path", path))
		return CreateDefault(ctx, dir, filename)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		// Unparseable files take the same backup-and-regenerate path as
		// structurally invalid ones.
		return recreate(ctx, path, dir, filename, []string{"unparseable: " + err.Error()})
	}
	missing, mismatched := Check(raw, Required)
	if len(missing)+len(mismatched) > 0 {
		return recreate(ctx, path, dir, filename, append(missing, mismatched...))
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// CreateDefault serializes the default document to dir/filename, creating
// parent directories as needed.
func CreateDefault(ctx context.Context, dir, filename string) (*Config, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	cfg := Default()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, err
	}
	logger.L(ctx).Info("sample config created", zap.String("path", path))
	return cfg, nil
}

// recreate renames the offending file to <stem>_backup_<timestamp><ext>
// and regenerates a fresh default in its place.
func recreate(ctx context.Context, path, dir, filename string, bad []string) (*Config, error) {
	ext := filepath.Ext(path)
	backup := strings.TrimSuffix(path, ext) + "_backup_" + time.Now().Format("20060102_150405") + ext
	if err := os.Rename(path, backup); err != nil {
		return nil, fmt.Errorf("backing up invalid config: %w", err)
	}
	logger.L(ctx).Warn("config failed validation, regenerating",
		zap.Strings("keys", bad), zap.String("backup", backup))
	return CreateDefault(ctx, dir, filename)
}
