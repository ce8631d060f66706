// Package scene loads the scene file describing the party's current
// location and assembles the panes shown by the battle, npcs and scene
// commands.
package scene

import (
	"fmt"
	"os"

	"github.com/jessopj1/fourhills/internal/npc"
	"github.com/jessopj1/fourhills/internal/setting"
	"github.com/jessopj1/fourhills/internal/stats"
	"github.com/jessopj1/fourhills/internal/text"
	"gopkg.in/yaml.v3"
)

// Filename is the scene file looked up in the current directory.
const Filename = "scene.yaml"

// MonsterRef names a monster present in a scene, with how many of it
// there are.
type MonsterRef struct {
	Name     string `yaml:"name"`
	Quantity int    `yaml:"quantity"`
}

// Scene describes one location: its monsters, NPCs and flavour text.
// All references are resolved eagerly at load time, so an unknown name
// fails the load rather than a later render.
type Scene struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	MonsterRefs []MonsterRef `yaml:"monsters"`
	NpcNames    []string     `yaml:"npcs"`

	monsters []*stats.StatBlock
	npcs     []*npc.Npc
}

// Load reads a scene file and resolves every monster and NPC it names
// against the setting.
func Load(path string, s *setting.Setting) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}

	var sc Scene
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scene file %s: %w", path, err)
	}

	for _, ref := range sc.MonsterRefs {
		block, err := stats.FromName(ref.Name, s)
		if err != nil {
			return nil, fmt.Errorf("scene file %s: %w", path, err)
		}
		sc.monsters = append(sc.monsters, block)
	}
	for _, name := range sc.NpcNames {
		n, err := npc.FromName(name, s)
		if err != nil {
			return nil, fmt.Errorf("scene file %s: %w", path, err)
		}
		sc.npcs = append(sc.npcs, n)
	}

	return &sc, nil
}

// BattlePanes renders one pane per monster and NPC in the scene: a summary
// header followed by the battle view.
func (sc *Scene) BattlePanes(width int) ([]text.Pane, error) {
	var panes []text.Pane

	for i, block := range sc.monsters {
		battle, err := block.BattleInfo(width)
		if err != nil {
			return nil, err
		}
		pane := block.SummaryInfo(width, sc.MonsterRefs[i].Quantity)
		pane = append(pane, "")
		pane = append(pane, battle...)
		panes = append(panes, pane)
	}
	for _, n := range sc.npcs {
		battle, err := n.BattleInfo(width)
		if err != nil {
			return nil, err
		}
		pane := n.SummaryInfo(width)
		pane = append(pane, "")
		pane = append(pane, battle...)
		panes = append(panes, pane)
	}

	return panes, nil
}

// NpcPanes renders one pane per NPC in the scene: a summary header
// followed by the roleplay view.
func (sc *Scene) NpcPanes(width int) []text.Pane {
	var panes []text.Pane
	for _, n := range sc.npcs {
		pane := append(text.Pane{}, n.SummaryInfo(width)...)
		pane = append(pane, "")
		pane = append(pane, n.CharacterInfo(width)...)
		panes = append(panes, pane)
	}
	return panes
}

// Info renders the scene's own view: a titled header when the scene is
// named, and the wrapped description.
func (sc *Scene) Info(width int) []string {
	var lines []string
	if sc.Name != "" {
		lines = append(lines, text.Title(sc.Name, width)...)
	}
	if sc.Description != "" {
		lines = append(lines, text.WrapIndented(sc.Description, width)...)
	}
	if len(lines) == 0 {
		lines = []string{"This scene has no description"}
	}
	return lines
}
