package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cosmic-heat/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List playable modes",
	Long:  `Shows every difficulty mode that can be played or served.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	modes := registry.List()
	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	width := len("ID")
	for _, m := range modes {
		width = max(width, len(m.ID))
	}

	fmt.Printf("  %-*s  %s\n", width, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", width, "--", "-----")
	for _, m := range modes {
		fmt.Printf("  %-*s  %s\n", width, m.ID, m.Title)
	}

	fmt.Println()
	fmt.Println("Run 'cosmicheat play <difficulty>' to play, e.g. 'cosmicheat play hard'.")
}
