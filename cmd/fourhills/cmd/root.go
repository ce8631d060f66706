// Package cmd contains all CLI commands for the fourhills tool.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jessopj1/fourhills/internal/match"
	"github.com/jessopj1/fourhills/internal/scene"
	"github.com/jessopj1/fourhills/internal/setting"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "fourhills",
	Short: "Terminal reference panels for tabletop game masters",
	Long: `Fourhills renders monster stat blocks, NPC notes, scene data and
cheatsheets from a YAML campaign setting as fixed-width terminal panels.

A campaign setting is a directory tree marked by an fh_setting.yaml file
at its root, with world/, monsters/ and npcs/ directories (and optionally
cheatsheets/). Commands run from anywhere inside the tree; the battle,
npcs and scene commands read the scene.yaml in the current directory.

Commands may be abbreviated to any unique prefix, e.g. 'fourhills bat'.`,
	Version:       "0.2.0",
	SilenceErrors: true,
}

// Execute resolves a unique command prefix, then runs the root command.
func Execute() error {
	if len(os.Args) > 1 && !strings.HasPrefix(os.Args[1], "-") {
		resolved, err := match.Resolve(os.Args[1], commandNames())
		switch {
		case err == nil:
			os.Args[1] = resolved
		case errors.As(err, new(*match.AmbiguousError)):
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return err
		}
		// An unknown name falls through for cobra's usual reporting.
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().Int("pane-width", setting.DefaultPaneWidth, "characters per pane")
	rootCmd.PersistentFlags().Int("panes", setting.DefaultPanes, "panes shown side by side")

	viper.BindPFlag("pane_width", rootCmd.PersistentFlags().Lookup("pane-width"))
	viper.BindPFlag("panes", rootCmd.PersistentFlags().Lookup("panes"))

	viper.SetEnvPrefix("FOURHILLS")
	viper.AutomaticEnv()
}

// commandNames lists the registered subcommands for prefix resolution.
func commandNames() []string {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	return names
}

// loadSetting locates the campaign setting enclosing the working
// directory and reads its layout configuration.
func loadSetting() (*setting.Setting, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("finding working directory: %w", err)
	}

	s, err := setting.Load(wd, viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("current directory is not part of a valid setting: %w", err)
	}
	return s, nil
}

// loadScene reads the scene file in the current directory.
func loadScene(s *setting.Setting) (*scene.Scene, error) {
	sc, err := scene.Load(scene.Filename, s)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.New("no scene file at this location")
		}
		return nil, err
	}
	return sc, nil
}

// printLines writes rendered lines to stdout, one per line.
func printLines(lines []string) {
	for _, line := range lines {
		fmt.Println(line)
	}
}
