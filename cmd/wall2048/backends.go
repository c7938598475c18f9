package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wall2048/internal/wallpaper"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List wallpaper backends",
	Long:  `Shows every wallpaper backend and which one "auto" picks on this machine.`,
	Run:   runBackends,
}

func runBackends(cmd *cobra.Command, args []string) {
	backends := wallpaper.List()
	detected := wallpaper.Detect()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, b := range backends {
		if len(b.Name) > maxNameLen {
			maxNameLen = len(b.Name)
		}
	}

	fmt.Println("Wallpaper backends:")
	fmt.Println()
	fmt.Printf("    %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("    %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, b := range backends {
		marker := "  "
		if b.Name == detected {
			marker = "* "
		}
		fmt.Printf("  %s%-*s  %s\n", marker, maxNameLen, b.Name, b.Description)
	}

	fmt.Println()
	fmt.Println("* = picked by --backend auto")
}
