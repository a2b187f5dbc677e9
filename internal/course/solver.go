package course

import "math"

// Hold sweep and fallback defaults.
const (
	HoldSweepStep    = 0.1   // Seconds between hold candidates
	HoldSweepMax     = 1.0   // Longest hold candidate tried
	FallbackFirstOff = 50.0  // First qualifying offset when none is found
	FallbackLastOff  = 150.0 // Last qualifying offset when none is found
)

// RequiredY returns the largest centre Y at which the player passes over an
// obstacle of the given height.
func (a Arena) RequiredY(obstacleHeight float64) float64 {
	return (a.GroundY - obstacleHeight) - a.Half() - ClearanceSlack
}

// Solve finds the input window for an obstacle.
//
// The window is derived from a launch at offset 0: the first and last
// offsets at which the trajectory is above the clearance height tell how far
// ahead of the obstacle the input may begin. When a tap cannot reach the
// clearance height, hold durations are swept shortest first. If nothing
// works the solver still returns a usable window built from fallback
// offsets.
func (a Arena) Solve(obstacleX, obstacleWidth, obstacleHeight, impulse, gravity, scrollSpeed float64) Clearance {
	required := a.RequiredY(obstacleHeight)

	var c Clearance
	traj := a.Simulate(0, impulse, gravity, scrollSpeed, 0)
	first, last, ok := qualifyingOffsets(traj, required)

	if Peak(traj) > required || !ok {
		c.NeedsHold = true
		c.HoldSeconds = HoldSweepMax

		// Integer steps keep the sweep free of float drift
		steps := int(math.Round(HoldSweepMax / HoldSweepStep))
		for i := 1; i <= steps; i++ {
			hold := float64(i) * HoldSweepStep
			held := a.Simulate(0, impulse, gravity, scrollSpeed, hold)
			if Peak(held) > required {
				continue
			}
			c.HoldSeconds = hold
			first, last, ok = qualifyingOffsets(held, required)
			break
		}
	}

	if !ok {
		first, last = FallbackFirstOff, FallbackLastOff
	}

	latest := obstacleX - first
	earliest := obstacleX + obstacleWidth - last
	c.EarliestX = math.Min(earliest, latest)
	c.LatestX = math.Max(earliest, latest)
	return c
}

// qualifyingOffsets returns the first and last X at which the trajectory is
// at or above the required height.
func qualifyingOffsets(samples []Sample, required float64) (first, last float64, ok bool) {
	for _, s := range samples {
		if s.Y > required {
			continue
		}
		if !ok {
			first = s.X
			ok = true
		}
		last = s.X
	}
	return first, last, ok
}
