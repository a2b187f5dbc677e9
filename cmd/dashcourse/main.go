// dashcourse generates and inspects obstacle courses for a side-scrolling
// runner with gravity and wave movement.
//
// Usage:
//
//	dashcourse levels              - List the level catalog
//	dashcourse generate <level>    - Generate a level and print it
//	dashcourse simulate            - Print one jump trajectory
//	dashcourse solve               - Solve the jump window for one obstacle
//	dashcourse audit [level]       - Replay levels with the autopilot
//	dashcourse history [level]     - Show stored audit results
//	dashcourse preview [level]     - Browse a level in the terminal
//	dashcourse serve               - Serve the previewer over SSH
//
// Global flags:
//
//	--seed <value>        - RNG seed (0 = seeded from the clock)
//	--config <path>       - Course tuning YAML
//	--db <path>           - Audit database (default: ~/.dashcourse/audits.db)
//	--log-level <level>   - debug, info, warn or error
//	--difficulty <preset> - easy, normal or hard
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dashcourse/internal/config"
	"github.com/vovakirdan/dashcourse/internal/course"
	"github.com/vovakirdan/dashcourse/internal/levels"
	"github.com/vovakirdan/dashcourse/internal/storage"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDBPath     string
	flagLogLevel   string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dashcourse",
	Short: "Procedural obstacle courses for a side-scrolling runner",
	Long: `dashcourse generates obstacle courses that are guaranteed clearable by
simulating the player's jump in advance, and tells the player where each
jump has to start.

Available commands:
  levels    - List the level catalog
  generate  - Generate one level and print it
  simulate  - Print a jump trajectory
  solve     - Solve the jump window for one obstacle
  audit     - Replay levels with the autopilot
  history   - Show stored audit results
  preview   - Browse a level in the terminal
  serve     - Serve the previewer over SSH

Examples:
  dashcourse levels
  dashcourse generate 3 --seed 42
  dashcourse solve --level 1 --x 1000 --width 30 --height 40
  dashcourse audit --difficulty hard
  dashcourse preview 5`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to course tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to audit database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(serveCmd)
}

// fail prints an error and exits.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// newLogger builds the CLI logger at the --log-level level.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "dashcourse",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadConfig loads course tuning and applies the --difficulty preset.
func loadConfig() (config.CourseConfig, error) {
	cfg, err := config.LoadCourse(flagConfig)
	if err != nil {
		return config.CourseConfig{}, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.CourseConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// newCatalog loads config and generates every level.
func newCatalog(logger *log.Logger) (*levels.Catalog, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return levels.NewCatalog(cfg, course.NewRand(flagSeed), logger)
}

// parseLevel parses a level argument, defaulting to 1 when absent.
func parseLevel(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid level %q", args[0])
	}
	return id, nil
}
