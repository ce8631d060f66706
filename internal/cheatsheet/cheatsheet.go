// Package cheatsheet loads and renders quick-reference sheets for the
// game master.
package cheatsheet

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessopj1/fourhills/internal/match"
	"github.com/jessopj1/fourhills/internal/setting"
	"github.com/jessopj1/fourhills/internal/text"
	"gopkg.in/yaml.v3"
)

// Section is one titled block of a cheatsheet. Content lines are written
// for a narrow column and re-wrapped to the pane width at render time.
type Section struct {
	Title   string   `yaml:"section_title"`
	Content []string `yaml:"section_content"`
}

// Lines renders the section as a titled pane.
func (s Section) Lines(width int) []string {
	lines := text.Title(s.Title, width)
	lines = append(lines, s.Content...)
	return text.WrapLines(lines, width)
}

// Cheatsheet is a set of reference sections shown side by side.
type Cheatsheet struct {
	Description string    `yaml:"description"`
	Sections    []Section `yaml:"sections"`
}

// Names lists the cheatsheets available in the setting, sorted. A setting
// without a cheatsheets directory has none.
func Names(s *setting.Setting) ([]string, error) {
	return setting.FilenamesOfType("yaml", s.CheatsheetsDir())
}

// FromName loads the cheatsheet with exactly the given name from the
// setting's cheatsheets directory.
func FromName(name string, s *setting.Setting) (*Cheatsheet, error) {
	path := filepath.Join(s.CheatsheetsDir(), name+".yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading cheatsheet %q: %w", name, err)
	}

	var cs Cheatsheet
	if err := yaml.Unmarshal(data, &cs); err != nil {
		return nil, fmt.Errorf("parsing cheatsheet file %s: %w", path, err)
	}
	if cs.Description == "" {
		return nil, fmt.Errorf("cheatsheet file %s: missing description", path)
	}
	if len(cs.Sections) == 0 {
		return nil, fmt.Errorf("cheatsheet file %s: missing sections", path)
	}

	return &cs, nil
}

// FromNameOrPrefix loads a cheatsheet by name, accepting any prefix that
// is unique among the setting's cheatsheets. Ambiguous prefixes and
// unknown names are reported as match errors, the latter with nearby
// suggestions.
func FromNameOrPrefix(name string, s *setting.Setting) (*Cheatsheet, error) {
	names, err := Names(s)
	if err != nil {
		return nil, err
	}

	resolved, err := match.Resolve(name, names)
	if err != nil {
		return nil, fmt.Errorf("cheatsheet: %w", err)
	}

	return FromName(resolved, s)
}
