package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessopj1/fourhills/internal/setting"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new campaign setting",
	Long: `Initialize a new campaign setting in the current directory.

This creates:
  - fh_setting.yaml            (layout configuration, marks the root)
  - world/example_location/    (with an example scene.yaml)
  - monsters/                  (with an example monster)
  - npcs/                      (with an example NPC)
  - cheatsheets/               (with an example cheatsheet)

You should then edit these files to build your own world.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing files")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("finding working directory: %w", err)
	}

	if _, err := os.Stat(filepath.Join(wd, setting.ConfigFilename)); err == nil && !force {
		return fmt.Errorf("%s already exists here\nUse --force to overwrite", setting.ConfigFilename)
	}

	fmt.Printf("Initializing campaign setting in %s\n\n", wd)

	files := []struct {
		path    string
		content string
	}{
		{setting.ConfigFilename, settingTemplate},
		{filepath.Join("world", "example_location", "scene.yaml"), sceneTemplate},
		{filepath.Join("monsters", "example_monster.yaml"), monsterTemplate},
		{filepath.Join("npcs", "example_npc.yaml"), npcTemplate},
		{filepath.Join("cheatsheets", "conditions.yaml"), cheatsheetTemplate},
	}
	for _, file := range files {
		dest := filepath.Join(wd, file.path)
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", file.path, err)
		}
		if err := os.WriteFile(dest, []byte(file.content), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", file.path, err)
		}
		fmt.Printf("  Created %s\n", file.path)
	}

	fmt.Println()
	fmt.Println("Setting initialized!")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Edit the example files to describe your own world")
	fmt.Println("  2. Run 'fourhills monster example_monster' to see a stat block")
	fmt.Println("  3. Run 'fourhills battle' from world/example_location")

	return nil
}

const settingTemplate = `# Fourhills campaign setting configuration.
# The presence of this file marks the setting root.

# Characters per pane, and panes shown side by side. Stat blocks need a
# pane at least 56 characters wide.
pane_width: 56
panes: 2
`

const sceneTemplate = `name: Example location
description: >
  A small clearing in the woods. A ruined watchtower leans over the path,
  and something rustles in the undergrowth.
monsters:
  - name: example_monster
    quantity: 3
npcs:
  - example_npc
`

const monsterTemplate = `name: Wolf
size: medium
creature_type: beast
alignment: unaligned
ac: 13 (natural armour)
hp: 11 (2d8+2)
speed: 40 ft.
ability:
  STR: 12
  DEX: 15
  CON: 12
  INT: 3
  WIS: 12
  CHA: 6
challenge: 0.25
passive_perception: 13
skills:
  Perception: +3
  Stealth: +4
languages:
special_traits:
  keen hearing and smell: >
    The wolf has advantage on Wisdom (Perception) checks that rely on
    hearing or smell.
  pack tactics: >
    The wolf has advantage on attack rolls against a creature if at least
    one of the wolf's allies is within 5 ft. of the creature.
melee_attacks:
  bite:
    hit: "+4"
    reach: 5 ft.
    targets: one target
    damage: 7 (2d4+2) piercing
    info: >
      If the target is a creature, it must succeed on a DC 11 Strength
      saving throw or be knocked prone
`

const npcTemplate = `name: Bertrand the Miller
appearance: A stout, flour-dusted man with a magnificent moustache.
temperament: Cheerful, but tight-fisted.
accent: West country
background: >
  Has run the mill for thirty years and knows everyone in the village.
phrases:
  - "That'll cost you extra, mind."
  - "My old dad always said..."
stats_base: example_monster
`

const cheatsheetTemplate = `description: Common status conditions
sections:
  - section_title: Prone
    section_content:
      - "- Only movement option is to crawl, unless it stands up"
      - "- Disadvantage on attack rolls"
      - "- Attack rolls against the creature have advantage if the
        attacker is within 5 feet; otherwise disadvantage"
  - section_title: Restrained
    section_content:
      - "- Speed becomes 0"
      - "- Attack rolls against the creature have advantage"
      - "- The creature's attack rolls have disadvantage"
      - "- Disadvantage on Dexterity saving throws"
`
