package cmd

import (
	"github.com/jessopj1/fourhills/internal/text"
	"github.com/spf13/cobra"
)

var npcsCmd = &cobra.Command{
	Use:   "npcs",
	Short: "Display details of the NPCs in the current scene",
	Long: `Display the roleplay notes (appearance, accent, demeanour, stock
phrases) of every NPC in the scene at the current location, arranged side
by side in panes.

Example:
  fourhills npcs`,
	Args: cobra.NoArgs,
	RunE: runNpcs,
}

func init() {
	rootCmd.AddCommand(npcsCmd)
}

func runNpcs(cmd *cobra.Command, args []string) error {
	s, err := loadSetting()
	if err != nil {
		return err
	}
	sc, err := loadScene(s)
	if err != nil {
		return err
	}

	printLines(text.ComposePanes(sc.NpcPanes(s.PaneWidth), s.Panes, s.PaneWidth))
	return nil
}
