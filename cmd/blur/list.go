package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blur/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available scenes",
	Long:  `Shows a list of all scenes registered in blur.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	scenes := registry.List()

	if len(scenes) == 0 {
		fmt.Fprintln(out, "No scenes available.")
		return
	}

	fmt.Fprintln(out, "Available scenes:")
	fmt.Fprintln(out)

	maxIDLen := 2 // "ID" header
	for _, s := range scenes {
		maxIDLen = max(maxIDLen, len(s.ID))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, s := range scenes {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'blur play <id>' to start a scene.")
}
