package cmd

import (
	"github.com/jessopj1/fourhills/internal/stats"
	"github.com/spf13/cobra"
)

var monsterCmd = &cobra.Command{
	Use:   "monster <name>",
	Short: "Display a single monster's stat block",
	Long: `Display the full stat block of one monster, regardless of the current
scene.

Monsters are referred to by their filename in the setting's monsters
directory, excluding the .yaml extension.

Example:
  fourhills monster example_monster`,
	Args: cobra.ExactArgs(1),
	RunE: runMonster,
}

func init() {
	rootCmd.AddCommand(monsterCmd)
}

func runMonster(cmd *cobra.Command, args []string) error {
	s, err := loadSetting()
	if err != nil {
		return err
	}

	block, err := stats.FromName(args[0], s)
	if err != nil {
		return err
	}

	battle, err := block.BattleInfo(s.PaneWidth)
	if err != nil {
		return err
	}

	lines := block.SummaryInfo(s.PaneWidth, 0)
	lines = append(lines, "")
	lines = append(lines, battle...)
	printLines(lines)
	return nil
}
