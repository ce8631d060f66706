// Package npc models non-player characters and renders their summary,
// battle and roleplay views.
package npc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jessopj1/fourhills/internal/match"
	"github.com/jessopj1/fourhills/internal/setting"
	"github.com/jessopj1/fourhills/internal/stats"
	"github.com/jessopj1/fourhills/internal/text"
	"gopkg.in/yaml.v3"
)

// Npc is a non-player character. Stats is attached at load time when the
// file names a stats_base monster; it is nil for characters without stats.
type Npc struct {
	Name        string   `yaml:"name"`
	Appearance  string   `yaml:"appearance"`
	Temperament string   `yaml:"temperament"`
	Accent      string   `yaml:"accent"`
	Phrases     []string `yaml:"phrases"`
	Background  string   `yaml:"background"`
	Deceased    bool     `yaml:"deceased"`
	StatsBase   string   `yaml:"stats_base"`

	Stats *stats.StatBlock `yaml:"-"`
}

// SummaryInfo renders the NPC header: the centred name (marked deceased
// when set), a full-width rule and, when stats are attached, an
// alignment/creature line.
func (n *Npc) SummaryInfo(width int) []string {
	header := n.Name
	if n.Deceased {
		header += " (deceased)"
	}

	lines := []string{
		text.CentrePad(header, width),
		text.Rule('=', width),
	}
	if n.Stats != nil {
		lines = append(lines, fmt.Sprintf("%s %s (%s %s)",
			text.Capitalise(n.Stats.Alignment), n.Stats.Name,
			text.Capitalise(n.Stats.Size), n.Stats.CreatureType))
	}

	return text.WrapLines(lines, width)
}

// BattleInfo renders the NPC's stat block, or a single placeholder line
// for characters without stats.
func (n *Npc) BattleInfo(width int) ([]string, error) {
	if n.Stats == nil {
		return []string{"This NPC has no stats defined"}, nil
	}
	return n.Stats.BattleInfo(width)
}

// CharacterInfo renders the roleplay view: appearance, accent, demeanour
// and stock phrases. Sections without data are omitted.
func (n *Npc) CharacterInfo(width int) []string {
	lines := []string{"Appearance: " + n.Appearance}
	if n.Accent != "" {
		lines = append(lines, "Accent: "+n.Accent)
	}
	if demeanour := joinPresent(n.Temperament, n.Background); demeanour != "" {
		lines = append(lines, demeanour)
	}

	if len(n.Phrases) > 0 {
		lines = append(lines, "", "Phrases:")
		for _, phrase := range n.Phrases {
			lines = append(lines, "- "+phrase)
		}
	}

	return text.WrapLines(lines, width)
}

// joinPresent joins the non-empty parts with single spaces.
func joinPresent(parts ...string) string {
	var present []string
	for _, part := range parts {
		if part != "" {
			present = append(present, part)
		}
	}
	return strings.Join(present, " ")
}

// FromName loads the NPC with the given name from the setting's npcs
// directory, attaching its stat block when the file names one. The name
// must match a filename there, excluding the extension.
func FromName(name string, s *setting.Setting) (*Npc, error) {
	path := filepath.Join(s.NpcsDir(), name+".yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		names, listErr := setting.FilenamesOfType("yaml", s.NpcsDir())
		if listErr == nil {
			if nearby := match.Closest(name, names, 3); len(nearby) > 0 {
				return nil, fmt.Errorf("no NPC named %q (did you mean %s?)", name, strings.Join(nearby, ", "))
			}
		}
		return nil, fmt.Errorf("no NPC named %q", name)
	}

	var n Npc
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("parsing NPC file %s: %w", path, err)
	}
	if n.Name == "" {
		return nil, fmt.Errorf("NPC file %s: missing required field name", path)
	}
	if n.Appearance == "" {
		return nil, fmt.Errorf("NPC file %s: missing required field appearance", path)
	}

	if n.StatsBase != "" {
		block, err := stats.FromName(n.StatsBase, s)
		if err != nil {
			return nil, fmt.Errorf("loading stats for NPC %s: %w", n.Name, err)
		}
		n.Stats = block
	}

	return &n, nil
}
