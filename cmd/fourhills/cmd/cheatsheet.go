package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jessopj1/fourhills/internal/cheatsheet"
	"github.com/jessopj1/fourhills/internal/text"
	"github.com/spf13/cobra"
)

var cheatsheetCmd = &cobra.Command{
	Use:   "cheatsheet <name>",
	Short: "Display a cheatsheet",
	Long: `Display the named cheatsheet, one pane per section.

Cheatsheets are referred to by their filename in the setting's cheatsheets
directory, excluding the .yaml extension. Any unique prefix of a name is
accepted.

Examples:
  fourhills cheatsheet conditions
  fourhills cheatsheet cond
  fourhills cheatsheet --list`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheatsheet,
}

func init() {
	rootCmd.AddCommand(cheatsheetCmd)
	cheatsheetCmd.Flags().BoolP("list", "l", false, "list the available cheatsheets")
}

func runCheatsheet(cmd *cobra.Command, args []string) error {
	s, err := loadSetting()
	if err != nil {
		return err
	}

	if list, _ := cmd.Flags().GetBool("list"); list {
		names, err := cheatsheet.Names(s)
		if err != nil {
			return err
		}
		fmt.Println(strings.Join(names, "  "))
		return nil
	}

	if len(args) == 0 {
		return errors.New("cheatsheet name required (or --list to see what is available)")
	}

	cs, err := cheatsheet.FromNameOrPrefix(args[0], s)
	if err != nil {
		return err
	}

	panes := make([]text.Pane, len(cs.Sections))
	for i, section := range cs.Sections {
		panes[i] = section.Lines(s.PaneWidth)
	}

	printLines(text.ComposePanes(panes, s.Panes, s.PaneWidth))
	return nil
}
