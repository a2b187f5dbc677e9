package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dashcourse/internal/registry"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level catalog",
	Long: `Generates every level of the catalog and lists its mode, tier, physics
and obstacle counts. Levels are regenerated each time they are entered, so the
counts change from run to run unless --seed is set.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	catalog, err := newCatalog(newLogger())
	if err != nil {
		fail(err)
	}

	lvls := catalog.Levels()

	maxName := len("Name")
	for _, l := range lvls {
		maxName = max(maxName, len(l.Name))
	}

	fmt.Printf("  %-3s  %-*s  %-8s  %-4s  %-6s  %-7s  %-6s  %-9s\n",
		"ID", maxName, "Name", "Mode", "Tier", "Speed", "Gravity", "Length", "Obstacles")
	fmt.Printf("  %-3s  %-*s  %-8s  %-4s  %-6s  %-7s  %-6s  %-9s\n",
		"--", maxName, "----", "----", "----", "-----", "-------", "------", "---------")

	for _, l := range lvls {
		fmt.Printf("  %-3d  %-*s  %-8s  %-4d  %-6.0f  %-7.0f  %-6.0f  %d (%d hold)\n",
			l.ID, maxName, l.Name, registry.Title(l.Mode), l.Difficulty,
			l.Speed, l.Gravity, l.Length, len(l.Obstacles), l.HoldCount())
	}

	fmt.Println()
	fmt.Println("Run 'dashcourse preview <id>' to browse a level.")
}
