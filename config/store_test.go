package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestLoadCreatesDefaultOnFirstRun(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "colorcat")

	cfg, err := Load(ctx, dir, DefaultFileName)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("first-run config mismatch (-want +got):\n%s", diff)
	}
	if _, err := os.Stat(filepath.Join(dir, DefaultFileName)); err != nil {
		t.Errorf("config file not written: %v", err)
	}
}

func TestLoadKeepsValidModifiedConfig(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	cfg, err := Load(ctx, dir, DefaultFileName)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.DefaultBgHighlight = 17
	cfg.Script.ThemeName = "dusk"
	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, DefaultFileName), data, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(ctx, dir, DefaultFileName)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.DefaultBgHighlight != 17 || got.Script.ThemeName != "dusk" {
		t.Errorf("valid edits were not preserved: %+v", got)
	}
}

func TestLoadBacksUpAndRegeneratesInvalidConfig(t *testing.T) {
	ctx := context.Background()
	for _, tt := range []struct {
		name    string
		content string
	}{
		{"missing keys", "root_dir: /tmp/x\n"},
		{"wrong types", "root_dir: 3\ndefault_bg_highlight: dark\n"},
		{"unparseable", "root_dir: [unclosed\n"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, DefaultFileName)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			cfg, err := Load(ctx, dir, DefaultFileName)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if diff := cmp.Diff(Default(), cfg); diff != "" {
				t.Errorf("regenerated config is not the default (-want +got):\n%s", diff)
			}

			backups, err := filepath.Glob(filepath.Join(dir, "colorcat_backup_*.yaml"))
			if err != nil {
				t.Fatal(err)
			}
			if len(backups) != 1 {
				t.Fatalf("backups = %v, want exactly one", backups)
			}
			saved, err := os.ReadFile(backups[0])
			if err != nil {
				t.Fatal(err)
			}
			if string(saved) != tt.content {
				t.Error("backup does not hold the original content")
			}
		})
	}
}

func TestRegistryPathsFollowRootDir(t *testing.T) {
	cfg := Default()
	cfg.RootDir = "/tmp/cc"
	reg := cfg.Registry()
	if want := filepath.Join("/tmp/cc", "themes"); reg.Dir != want {
		t.Errorf("Dir = %q, want %q", reg.Dir, want)
	}
	if want := filepath.Join("/tmp/cc", "autogen-themes"); reg.AutogenDir != want {
		t.Errorf("AutogenDir = %q, want %q", reg.AutogenDir, want)
	}
}
