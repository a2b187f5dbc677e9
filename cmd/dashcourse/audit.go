package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dashcourse/internal/course"
	"github.com/vovakirdan/dashcourse/internal/levels"
	"github.com/vovakirdan/dashcourse/internal/registry"
	"github.com/vovakirdan/dashcourse/internal/storage"
)

var (
	flagNoSave bool
	flagRuns   int
)

var auditCmd = &cobra.Command{
	Use:   "audit [level]",
	Short: "Replay levels with the autopilot",
	Long: `Generate levels and replay each one with the autopilot, which presses
at the middle of every jump window. Gravity levels replay the solver's jumps;
wave levels steer through the open side of every block. Results are stored in
the audit database unless --no-save is given.

The command exits non-zero if any obstacle was not cleared.

Examples:
  dashcourse audit
  dashcourse audit 5 --runs 20
  dashcourse audit --difficulty hard --no-save`,
	Args: cobra.MaximumNArgs(1),
	Run:  runAudit,
}

func init() {
	auditCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record results")
	auditCmd.Flags().IntVar(&flagRuns, "runs", 1, "Regenerate and replay each level this many times")
}

func runAudit(_ *cobra.Command, args []string) {
	logger := newLogger()
	catalog, err := newCatalog(logger)
	if err != nil {
		fail(err)
	}

	ids := make([]int, 0, catalog.Len())
	if len(args) == 1 {
		id, err := parseLevel(args)
		if err != nil {
			fail(err)
		}
		ids = append(ids, id)
	} else {
		for _, l := range catalog.Levels() {
			ids = append(ids, l.ID)
		}
	}

	var store *storage.Store
	if !flagNoSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open audit database, results will not be saved", "error", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	fmt.Printf("  %-3s  %-4s  %-8s  %-4s  %-9s  %s\n", "ID", "Run", "Mode", "Tier", "Cleared", "Result")
	fmt.Printf("  %-3s  %-4s  %-8s  %-4s  %-9s  %s\n", "--", "---", "----", "----", "-------", "------")

	failed := 0
	runs := max(flagRuns, 1)
	for _, id := range ids {
		for run := 1; run <= runs; run++ {
			lvl, err := auditLevel(catalog, id, run)
			if err != nil {
				fail(err)
			}

			report := lvl.Audit(catalog.Arena())
			cleared, total := report.Cleared(), len(report.Outcomes)
			result := "pass"
			if !report.Passed() {
				result = "FAIL " + firstMiss(report.Outcomes)
				failed++
			}
			fmt.Printf("  %-3d  %-4d  %-8s  %-4d  %-9s  %s\n",
				lvl.ID, run, registry.Title(lvl.Mode), lvl.Difficulty,
				fmt.Sprintf("%d/%d", cleared, total), result)

			if store == nil {
				continue
			}
			_, err = store.SaveAudit(storage.AuditRecord{
				LevelID:    lvl.ID,
				Mode:       string(lvl.Mode),
				Difficulty: lvl.Difficulty,
				Seed:       flagSeed,
				Obstacles:  len(lvl.Obstacles),
				Holds:      lvl.HoldCount(),
				Cleared:    cleared,
			})
			if err != nil {
				logger.Warn("could not save audit", "level", lvl.ID, "error", err)
			}
		}
	}

	fmt.Println()
	if failed > 0 {
		fmt.Printf("%d of %d runs left obstacles uncleared.\n", failed, len(ids)*runs)
		os.Exit(1)
	}
	fmt.Printf("All %d runs cleared.\n", len(ids)*runs)
}

// auditLevel returns the generated level for the first run and a fresh
// regeneration for every later one.
func auditLevel(catalog *levels.Catalog, id, run int) (levels.LevelConfig, error) {
	if run == 1 {
		return catalog.Level(id)
	}
	return catalog.Enter(id)
}

func firstMiss(outcomes []course.Outcome) string {
	for _, o := range outcomes {
		if !o.Cleared {
			return fmt.Sprintf("at obstacle %d (press x %.0f)", o.Index+1, o.PressX)
		}
	}
	return ""
}
