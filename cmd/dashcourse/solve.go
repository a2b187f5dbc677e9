package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagObstacleX      float64
	flagObstacleWidth  float64
	flagObstacleHeight float64
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the jump window for one obstacle",
	Long: `Find the earliest and latest launch positions that clear an obstacle
standing on the ground. If a tap cannot reach the clearance height the solver
tries held jumps and, failing those, falls back to default offsets.

Examples:
  dashcourse solve --x 1000 --width 30 --height 40
  dashcourse solve --level 9 --x 2000 --width 80 --height 90`,
	Args: cobra.NoArgs,
	Run:  runSolve,
}

func init() {
	addMotionFlags(solveCmd)
	solveCmd.Flags().Float64Var(&flagObstacleX, "x", 1000, "Obstacle leading edge")
	solveCmd.Flags().Float64Var(&flagObstacleWidth, "width", 30, "Obstacle width")
	solveCmd.Flags().Float64Var(&flagObstacleHeight, "height", 40, "Obstacle height")
}

func runSolve(_ *cobra.Command, _ []string) {
	m, arena, err := motionFromFlags()
	if err != nil {
		fail(err)
	}

	c := arena.Solve(flagObstacleX, flagObstacleWidth, flagObstacleHeight, m.Impulse, m.Gravity, m.Speed)

	fmt.Printf("obstacle x %.1f  width %.1f  height %.1f\n", flagObstacleX, flagObstacleWidth, flagObstacleHeight)
	fmt.Printf("required centre y %.1f\n\n", arena.RequiredY(flagObstacleHeight))
	fmt.Printf("earliest launch  %.2f\n", c.EarliestX)
	fmt.Printf("latest launch    %.2f\n", c.LatestX)
	fmt.Printf("window width     %.2f\n", c.LatestX-c.EarliestX)
	if c.NeedsHold {
		fmt.Printf("input            hold %.1fs\n", c.HoldSeconds)
	} else {
		fmt.Println("input            tap")
	}
}
