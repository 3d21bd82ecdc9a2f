package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"colorcat/logger"
)

// ErrCriticalDir is returned by PlanPurge when the target is a directory
// colorcat refuses to delete.
var ErrCriticalDir = errors.New("refusing to purge a critical directory")

// CriticalDirs returns the absolute paths PlanPurge refuses outright.
// Deleting any of these could leave the system (or the user's account)
// unusable, so they must be removed manually if ever intended.
func CriticalDirs() []string {
	dirs := []string{
		"/", "/bin", "/boot", "/dev", "/etc", "/home", "/lib", "/lib64",
		"/opt", "/proc", "/root", "/sbin", "/srv", "/sys", "/usr", "/var",
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home, filepath.Join(home, ".config"))
	}
	return dirs
}

// PurgePlan is the affected-path list for a pending purge.  Paths are
// ordered children before parents so Execute can remove them in order.
type PurgePlan struct {
	Root     string
	Paths    []string
	KeepRoot bool
}

// PlanPurge walks dir and returns the deletion plan without removing
// anything.  keepRoot plans a clean (empty the directory, keep it); false
// plans a full purge including the root.  The interactive confirmation
// belongs to the caller; splitting planning from execution keeps the
// destructive step testable without simulating input.
func PlanPurge(dir string, keepRoot bool) (*PurgePlan, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	for _, crit := range CriticalDirs() {
		if abs == crit {
			return nil, fmt.Errorf("%w: %s", ErrCriticalDir, abs)
		}
	}

	var paths []string
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == abs {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Reverse-lexicographic puts every child ahead of its parent.
	sort.Sort(sort.Reverse(sort.StringSlice(paths)))
	if !keepRoot {
		paths = append(paths, abs)
	}
	return &PurgePlan{Root: abs, Paths: paths, KeepRoot: keepRoot}, nil
}

// Execute removes every planned path.  Paths already gone are skipped.
func (p *PurgePlan) Execute(ctx context.Context) error {
	for _, path := range p.Paths {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	logger.L(ctx).Info("directory purged",
		zap.String("dir", p.Root), zap.Int("paths", len(p.Paths)), zap.Bool("kept_root", p.KeepRoot))
	return nil
}
