package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dashcourse/internal/levels"
	"github.com/vovakirdan/dashcourse/internal/platform/tui"
	"github.com/vovakirdan/dashcourse/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
	flagLimit       int
)

var historyCmd = &cobra.Command{
	Use:   "history [level]",
	Short: "Show stored audit results",
	Long: `Show the audit history of one level, or a summary of every level when no
level is given.

Examples:
  dashcourse history
  dashcourse history 3 --limit 20
  dashcourse history --interactive
  dashcourse history 3 --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse history in a table")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the history of the level")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of audits to show")
}

func runHistory(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail(fmt.Errorf("opening audit database: %w", err))
	}
	defer store.Close()

	catalog, err := newCatalog(newLogger())
	if err != nil {
		fail(err)
	}

	id, err := parseLevel(args)
	if err != nil {
		fail(err)
	}
	lvl, err := catalog.Level(id)
	if err != nil {
		fail(err)
	}

	if flagClear {
		if len(args) == 0 {
			fail(fmt.Errorf("--clear needs a level"))
		}
		if err := store.ClearAudits(id); err != nil {
			fail(err)
		}
		fmt.Printf("Cleared audit history of level %d.\n", id)
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(store, catalog.Levels(), id, width, height); err != nil {
			fail(err)
		}
		return
	}

	if len(args) == 0 {
		printSummary(store, catalog.Levels())
		return
	}

	fmt.Printf("Audit History - %d. %s\n\n", lvl.ID, lvl.Name)

	audits, err := store.RecentAudits(id, flagLimit)
	if err != nil {
		fail(err)
	}
	if len(audits) == 0 {
		fmt.Println("No audits recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'dashcourse audit %d' to record one.\n", id)
		return
	}

	fmt.Printf("  %-16s  %-4s  %-9s  %-5s  %s\n", "Date", "Tier", "Cleared", "Holds", "Seed")
	fmt.Printf("  %-16s  %-4s  %-9s  %-5s  %s\n", "----", "----", "-------", "-----", "----")
	for _, a := range audits {
		fmt.Printf("  %-16s  %-4d  %-9s  %-5d  %d\n",
			a.CreatedAt.Format("2006-01-02 15:04"), a.Difficulty,
			fmt.Sprintf("%d/%d", a.Cleared, a.Obstacles), a.Holds, a.Seed)
	}

	stats, err := store.Stats(id)
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d, passed: %d, average cleared: %.0f%%\n", stats.Runs, stats.Passed, stats.AvgRate*100)
	}
}

func printSummary(store *storage.Store, lvls []levels.LevelConfig) {
	fmt.Println("Audit Summary")
	fmt.Println()
	fmt.Printf("  %-3s  %-20s  %-4s  %-6s  %-8s  %s\n", "ID", "Name", "Runs", "Passed", "Cleared", "Last")
	fmt.Printf("  %-3s  %-20s  %-4s  %-6s  %-8s  %s\n", "--", "----", "----", "------", "-------", "----")

	for _, l := range lvls {
		stats, err := store.Stats(l.ID)
		if err != nil {
			fail(err)
		}
		last := "-"
		if stats.Runs > 0 {
			last = stats.LastAudit.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-3d  %-20s  %-4d  %-6d  %-8s  %s\n",
			l.ID, l.Name, stats.Runs, stats.Passed, fmt.Sprintf("%.0f%%", stats.AvgRate*100), last)
	}
}
