package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dashcourse/internal/course"
	"github.com/vovakirdan/dashcourse/internal/levels"
)

var (
	flagMotionLevel int
	flagImpulse     float64
	flagGravity     float64
	flagSpeed       float64
	flagStartX      float64
	flagHold        float64
	flagEvery       int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Print one jump trajectory",
	Long: `Integrate a single jump from the ground at a fixed 1/60 s step and print
the trajectory until landing. Motion comes from --level or from the explicit
--impulse, --gravity and --speed flags.

Examples:
  dashcourse simulate
  dashcourse simulate --level 4 --hold 0.5
  dashcourse simulate --impulse -500 --gravity 800 --speed 240 --every 1`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

// addMotionFlags registers the flags describing player motion.
func addMotionFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagMotionLevel, "level", 0, "Take motion from this catalog level (0 = use flags)")
	cmd.Flags().Float64Var(&flagImpulse, "impulse", -426, "Jump impulse, negative is up")
	cmd.Flags().Float64Var(&flagGravity, "gravity", 670, "Gravity")
	cmd.Flags().Float64Var(&flagSpeed, "speed", 192, "Horizontal scroll speed")
}

func init() {
	addMotionFlags(simulateCmd)
	simulateCmd.Flags().Float64Var(&flagStartX, "start", 0, "Launch x")
	simulateCmd.Flags().Float64Var(&flagHold, "hold", 0, "Seconds the input stays held")
	simulateCmd.Flags().IntVar(&flagEvery, "every", 6, "Print every Nth sample")
}

// motionFromFlags resolves the motion and arena for simulate and solve.
func motionFromFlags() (course.Motion, course.Arena, error) {
	cfg, err := loadConfig()
	if err != nil {
		return course.Motion{}, course.Arena{}, err
	}
	arena := cfg.Generator.Arena

	if flagMotionLevel == 0 {
		return course.Motion{Speed: flagSpeed, Impulse: flagImpulse, Gravity: flagGravity}, arena, nil
	}

	if flagMotionLevel < 1 || flagMotionLevel > cfg.Catalog.Tiers {
		return course.Motion{}, arena, fmt.Errorf("%w: %d", levels.ErrUnknownLevel, flagMotionLevel)
	}
	mode := cfg.Catalog.ModeFor(flagMotionLevel)
	if mode != course.ModeGravity {
		return course.Motion{}, arena, fmt.Errorf("level %d is a %s level, jumps only exist in gravity mode", flagMotionLevel, mode)
	}
	tier := course.ClampTier(flagMotionLevel + cfg.Catalog.TierOffset)
	return cfg.Motion(tier, mode), arena, nil
}

func runSimulate(_ *cobra.Command, _ []string) {
	m, arena, err := motionFromFlags()
	if err != nil {
		fail(err)
	}

	samples := arena.Simulate(flagStartX, m.Impulse, m.Gravity, m.Speed, flagHold)
	every := max(flagEvery, 1)

	fmt.Printf("impulse %.1f  gravity %.1f  speed %.1f  hold %.2fs\n\n", m.Impulse, m.Gravity, m.Speed, flagHold)
	fmt.Printf("  %-7s  %-9s  %-9s  %s\n", "T", "X", "Y", "Rise")
	fmt.Printf("  %-7s  %-9s  %-9s  %s\n", "-", "-", "-", "----")

	rest := arena.RestY()
	for i, s := range samples {
		if i%every != 0 && i != len(samples)-1 {
			continue
		}
		fmt.Printf("  %-7.3f  %-9.2f  %-9.2f  %.2f\n", s.T, s.X, s.Y, rest-s.Y)
	}

	last := samples[len(samples)-1]
	fmt.Println()
	fmt.Printf("peak rise %.2f, airtime %.3fs, lands at x %.2f\n",
		rest-course.Peak(samples), course.Airtime(samples), last.X)
}
