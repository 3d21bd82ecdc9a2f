package theme

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"colorcat/logger"
)

// Ext is the filename extension of persisted theme documents.
const Ext = ".yaml"

// Registry enumerates, loads, saves and deletes named themes.  Dir holds
// the curated themes; AutogenDir receives derived themes written by
// Generate, keeping autogenerated artifacts out of the curated set.
type Registry struct {
	Dir        string
	AutogenDir string
}

func (r *Registry) path(name string) string {
	return filepath.Join(r.Dir, name+Ext)
}

// Load reads the named theme from the themes directory.  A missing file is
// not an error: the built-in default is returned and a notice logged.
func (r *Registry) Load(ctx context.Context, name string) (*Theme, error) {
	data, err := os.ReadFile(r.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		logger.L(ctx).Info("theme not found on disk, using built-in default",
			zap.String("theme", name))
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse theme %s: %w", name, err)
	}
	return &t, nil
}

// Save serializes t to <Dir>/<name>.yaml, creating the directory if
// absent.  Symbols without trigger characters are rejected: every
// persisted color_settings entry must carry all three fields.
func (r *Registry) Save(ctx context.Context, name string, t *Theme) error {
	for sym, s := range t.ColorSettings {
		if len(s.Triggers) == 0 {
			return fmt.Errorf("theme %s: symbol %s has no trigger characters", name, sym)
		}
	}
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshal theme %s: %w", name, err)
	}
	if err := os.WriteFile(r.path(name), data, 0o644); err != nil {
		return err
	}
	logger.L(ctx).Info("theme saved", zap.String("theme", name), zap.String("path", r.path(name)))
	return nil
}

// List returns the names of all themes in the themes directory, sorted.
// A missing directory yields an empty result, not an error.
func (r *Registry) List() ([]string, error) {
	entries, err := os.ReadDir(r.Dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), Ext))
	}
	return names, nil
}

// Delete removes the named theme file.  Deleting a theme that does not
// exist is a no-op with a notice.
func (r *Registry) Delete(ctx context.Context, name string) error {
	err := os.Remove(r.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		logger.L(ctx).Info("theme not found, nothing to delete", zap.String("theme", name))
		return nil
	}
	if err != nil {
		return err
	}
	logger.L(ctx).Info("theme deleted", zap.String("theme", name))
	return nil
}

// Generate applies offsetSpec to base and persists the derived theme under
// name in the autogenerated-themes directory.  base is not mutated.
func (r *Registry) Generate(ctx context.Context, name string, base *Theme, offsetSpec string) (*Theme, error) {
	offs, err := ParseOffsets(offsetSpec)
	if err != nil {
		return nil, err
	}
	derived := ApplyOffsets(base, offs)
	auto := &Registry{Dir: r.AutogenDir}
	if err := auto.Save(ctx, name, derived); err != nil {
		return nil, err
	}
	return derived, nil
}
