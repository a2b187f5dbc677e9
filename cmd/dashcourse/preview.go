package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dashcourse/internal/core"
	"github.com/vovakirdan/dashcourse/internal/platform/tui"
	"github.com/vovakirdan/dashcourse/internal/storage"
)

var flagFPS int

var previewCmd = &cobra.Command{
	Use:   "preview [level]",
	Short: "Browse a level in the terminal",
	Long: `Open a level in the terminal previewer. Scroll along the course, toggle
the jump window lane, regenerate the level, or watch the autopilot run it.
Autopilot results are recorded in the audit database.

Controls:
  left/right or h/l  - Scroll
  n / p              - Next / previous level
  r                  - Regenerate
  a or space         - Autoplay
  w                  - Toggle jump windows
  ?                  - Help
  q                  - Quit

Examples:
  dashcourse preview
  dashcourse preview 5 --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPreview,
}

func init() {
	previewCmd.Flags().IntVar(&flagFPS, "fps", 60, "Autoplay frames per second")
}

func runPreview(_ *cobra.Command, args []string) {
	id, err := parseLevel(args)
	if err != nil {
		fail(err)
	}

	logger := newLogger()
	catalog, err := newCatalog(logger)
	if err != nil {
		fail(err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open audit database", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	cfg := core.DefaultViewConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = max(flagFPS, 1)

	if err := tui.Run(catalog, store, cfg, id, flagSeed, logger); err != nil {
		fail(err)
	}
}
