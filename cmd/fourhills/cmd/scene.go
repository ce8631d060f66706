package cmd

import (
	"github.com/spf13/cobra"
)

var sceneCmd = &cobra.Command{
	Use:   "scene",
	Short: "Display information about the current scene",
	Long: `Display the name and description of the scene at the current location.

Example:
  fourhills scene`,
	Args: cobra.NoArgs,
	RunE: runScene,
}

func init() {
	rootCmd.AddCommand(sceneCmd)
}

func runScene(cmd *cobra.Command, args []string) error {
	s, err := loadSetting()
	if err != nil {
		return err
	}
	sc, err := loadScene(s)
	if err != nil {
		return err
	}

	printLines(sc.Info(s.PaneWidth))
	return nil
}
