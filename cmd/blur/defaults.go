package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blur/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults <scene>",
	Short: "Print the built-in config of a scene",
	Long: `Print the embedded default YAML of a scene. Save it to
~/.blur/configs/<scene>.yaml or pass it with --config to override values.

Examples:
  blur defaults turret > ~/.blur/configs/turret.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data := config.GetDefaultYAML(args[0])
		if data == nil {
			return fmt.Errorf("no config for scene %q", args[0])
		}
		_, err := cmd.OutOrStdout().Write(data)
		return err
	},
}
