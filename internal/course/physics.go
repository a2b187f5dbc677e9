package course

// Simulation constants.
const (
	StepSeconds    = 1.0 / 60.0 // Fixed integration step, windows are tuned against it
	MaxSimSeconds  = 10.0       // Safety bound on simulated time
	ClearanceSlack = 10.0       // Extra height required above an obstacle
)

// Arena describes the playable band the simulator runs in.
// Vertical coordinates grow downwards.
type Arena struct {
	GroundY       float64 `yaml:"ground_y"`       // Ground line
	CeilingY      float64 `yaml:"ceiling_y"`      // Top boundary of the playable band
	PlayerSize    float64 `yaml:"player_size"`    // Player extent (square hitbox)
	HoldTolerance float64 `yaml:"hold_tolerance"` // How close to the ground a held jump re-triggers
}

// DefaultArena returns the standard arena geometry.
func DefaultArena() Arena {
	return Arena{
		GroundY:       480,
		CeilingY:      40,
		PlayerSize:    40,
		HoldTolerance: 2,
	}
}

// Half returns half the player extent.
func (a Arena) Half() float64 {
	return a.PlayerSize / 2
}

// RestY is the player's centre when standing on the ground.
func (a Arena) RestY() float64 {
	return a.GroundY - a.Half()
}

// TopY is the highest centre position the player can reach.
func (a Arena) TopY() float64 {
	return a.CeilingY + a.Half()
}

// BandHeight is the vertical extent of the playable band.
func (a Arena) BandHeight() float64 {
	return a.GroundY - a.CeilingY
}

// Extent returns the world-space vertical span of an obstacle in a mode.
// Gaps span from the ground line down by their depth marker.
func (a Arena) Extent(o Obstacle, mode Mode) (top, bottom float64) {
	switch {
	case o.Kind == KindGap:
		return a.GroundY, a.GroundY + o.Height
	case mode == ModeWave:
		top = a.CeilingY + o.Y*a.BandHeight()
		return top, top + o.Height
	default:
		return a.GroundY - o.Height, a.GroundY
	}
}

// Simulate integrates one jump arc from launch to landing.
// A positive holdSeconds keeps the input asserted, re-applying the impulse
// each time the body touches down while the hold lasts.
func (a Arena) Simulate(startX, impulse, gravity, scrollSpeed, holdSeconds float64) []Sample {
	ground := a.RestY()
	top := a.TopY()

	x, y, vy, t := startX, ground, impulse, 0.0
	remaining := holdSeconds
	holding := holdSeconds > 0

	samples := make([]Sample, 0, 96)
	samples = append(samples, Sample{X: x, Y: y, T: t})

	for t <= MaxSimSeconds {
		vy += gravity * StepSeconds

		if holding && remaining > 0 && y >= ground-a.HoldTolerance && vy >= 0 {
			y = ground
			vy = impulse
		}
		if holding {
			remaining -= StepSeconds
			if remaining <= 0 {
				holding = false
			}
		}

		y += vy * StepSeconds
		x += scrollSpeed * StepSeconds
		t += StepSeconds

		// No bounce off the ceiling
		if y < top {
			y = top
			vy = 0
		}

		if y >= ground && vy >= 0 && !holding {
			samples = append(samples, Sample{X: x, Y: ground, T: t})
			return samples
		}
		samples = append(samples, Sample{X: x, Y: y, T: t})
	}

	return samples
}

// Peak returns the highest point (smallest Y) of a trajectory.
func Peak(samples []Sample) float64 {
	if len(samples) == 0 {
		return 0
	}
	peak := samples[0].Y
	for _, s := range samples[1:] {
		if s.Y < peak {
			peak = s.Y
		}
	}
	return peak
}

// Airtime returns the duration of a trajectory in seconds.
func Airtime(samples []Sample) float64 {
	if len(samples) == 0 {
		return 0
	}
	return samples[len(samples)-1].T
}
