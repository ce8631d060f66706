package cmd

import (
	"github.com/jessopj1/fourhills/internal/text"
	"github.com/spf13/cobra"
)

var battleCmd = &cobra.Command{
	Use:   "battle",
	Short: "Display monster and NPC stat blocks for the current scene",
	Long: `Display the stat blocks of every monster and NPC in the scene at the
current location, arranged side by side in panes.

Example:
  fourhills battle`,
	Args: cobra.NoArgs,
	RunE: runBattle,
}

func init() {
	rootCmd.AddCommand(battleCmd)
}

func runBattle(cmd *cobra.Command, args []string) error {
	s, err := loadSetting()
	if err != nil {
		return err
	}
	sc, err := loadScene(s)
	if err != nil {
		return err
	}

	panes, err := sc.BattlePanes(s.PaneWidth)
	if err != nil {
		return err
	}

	printLines(text.ComposePanes(panes, s.Panes, s.PaneWidth))
	return nil
}
