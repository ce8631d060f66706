// Package setting locates the campaign setting directory tree and reads
// its layout configuration from fh_setting.yaml.
package setting

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// ConfigFilename marks the root of a campaign setting directory tree.
const ConfigFilename = "fh_setting.yaml"

// Default layout geometry when fh_setting.yaml does not override it.
const (
	DefaultPaneWidth = 56
	DefaultPanes     = 2
)

// requiredDirs must exist directly under the setting root.
var requiredDirs = []string{"world", "monsters", "npcs"}

// ErrNoSetting is returned when no fh_setting.yaml is found in the start
// directory or any of its ancestors.
var ErrNoSetting = errors.New("no " + ConfigFilename + " found in this directory or any parent")

// StructureError indicates a setting root that is missing a required
// subdirectory.
type StructureError struct {
	Root    string
	Missing string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("setting root %s does not contain a %s directory", e.Root, e.Missing)
}

// Setting describes a located campaign setting and its layout geometry.
type Setting struct {
	Root      string
	PaneWidth int
	Panes     int
}

// Load discovers the setting root by ascending from dir and reads the
// layout configuration through v, so that defaults, fh_setting.yaml
// values, FOURHILLS_* environment variables and any bound flags resolve
// in the usual viper precedence order.
func Load(dir string, v *viper.Viper) (*Setting, error) {
	root, err := FindRoot(dir)
	if err != nil {
		return nil, err
	}

	v.SetDefault("pane_width", DefaultPaneWidth)
	v.SetDefault("panes", DefaultPanes)
	v.SetConfigFile(filepath.Join(root, ConfigFilename))
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", ConfigFilename, err)
	}

	s := &Setting{
		Root:      root,
		PaneWidth: v.GetInt("pane_width"),
		Panes:     v.GetInt("panes"),
	}
	if s.PaneWidth <= 0 {
		return nil, fmt.Errorf("pane_width must be positive, got %d", s.PaneWidth)
	}
	if s.Panes <= 0 {
		return nil, fmt.Errorf("panes must be positive, got %d", s.Panes)
	}

	return s, nil
}

// FindRoot ascends the directory tree from dir looking for ConfigFilename
// and validates that the directory holding it has the required structure.
func FindRoot(dir string) (string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving start directory: %w", err)
	}

	for {
		if info, err := os.Stat(filepath.Join(current, ConfigFilename)); err == nil && !info.IsDir() {
			for _, name := range requiredDirs {
				if info, err := os.Stat(filepath.Join(current, name)); err != nil || !info.IsDir() {
					return "", &StructureError{Root: current, Missing: name}
				}
			}
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", ErrNoSetting
		}
		current = parent
	}
}

// WorldDir returns the directory holding location data.
func (s *Setting) WorldDir() string {
	return filepath.Join(s.Root, "world")
}

// MonstersDir returns the directory holding monster stat files.
func (s *Setting) MonstersDir() string {
	return filepath.Join(s.Root, "monsters")
}

// NpcsDir returns the directory holding NPC files.
func (s *Setting) NpcsDir() string {
	return filepath.Join(s.Root, "npcs")
}

// CheatsheetsDir returns the directory holding cheatsheets. The directory
// is optional: a setting without one simply has no cheatsheets.
func (s *Setting) CheatsheetsDir() string {
	return filepath.Join(s.Root, "cheatsheets")
}

// FilenamesOfType lists the sorted base names (extension stripped) of all
// files with the given extension in dir. A missing directory yields no
// names rather than an error.
func FilenamesOfType(ext, dir string) ([]string, error) {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ext {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ext))
	}
	sort.Strings(names)

	return names, nil
}
