package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tier1 is the motion of the easiest gravity level.
var tier1 = Motion{Speed: 192, Impulse: -426, Gravity: 670}

func TestSimulateDeterministic(t *testing.T) {
	a := DefaultArena()

	first := a.Simulate(0, -420, 650, 180, 0)
	second := a.Simulate(0, -420, 650, 180, 0)

	assert.Equal(t, first, second)
}

func TestSimulateLaunchAndLanding(t *testing.T) {
	a := DefaultArena()
	traj := a.Simulate(100, tier1.Impulse, tier1.Gravity, tier1.Speed, 0)
	require.NotEmpty(t, traj)

	start := traj[0]
	assert.Equal(t, Sample{X: 100, Y: a.RestY(), T: 0}, start)

	end := traj[len(traj)-1]
	assert.Equal(t, a.RestY(), end.Y, "landing should snap to the ground")
	assert.Less(t, end.T, MaxSimSeconds, "a normal jump must land before the safety bound")
	assert.InDelta(t, 2*426.0/670.0, end.T, 0.05)
	assert.Greater(t, end.X, start.X)
}

func TestSimulatePeak(t *testing.T) {
	a := DefaultArena()
	traj := a.Simulate(0, tier1.Impulse, tier1.Gravity, tier1.Speed, 0)

	rise := a.RestY() - Peak(traj)
	// v^2 / 2g, slightly less with discrete steps
	assert.InDelta(t, 426.0*426.0/(2*670.0), rise, 5)

	for _, s := range traj {
		assert.LessOrEqual(t, s.Y, a.RestY())
	}
}

func TestSimulateCeilingClamp(t *testing.T) {
	a := DefaultArena()
	traj := a.Simulate(0, -420, 0, 180, 0)

	for _, s := range traj {
		assert.GreaterOrEqual(t, s.Y, a.TopY(), "body must never pass the ceiling")
	}
	assert.Equal(t, a.TopY(), Peak(traj))
	// Without gravity the body never comes down again
	assert.Greater(t, Airtime(traj), MaxSimSeconds)
}

func TestSimulateHoldRebounds(t *testing.T) {
	a := DefaultArena()
	tap := a.Simulate(0, tier1.Impulse, tier1.Gravity, tier1.Speed, 0)
	held := a.Simulate(0, tier1.Impulse, tier1.Gravity, tier1.Speed, 2.0)

	assert.Greater(t, Airtime(held), 1.5*Airtime(tap))
	assert.Less(t, Airtime(held), MaxSimSeconds)
	assert.Equal(t, a.RestY(), held[len(held)-1].Y)
}

func TestSimulateShortHoldMatchesTap(t *testing.T) {
	a := DefaultArena()
	tap := a.Simulate(0, tier1.Impulse, tier1.Gravity, tier1.Speed, 0)
	// The hold expires before touchdown, so nothing is re-applied
	held := a.Simulate(0, tier1.Impulse, tier1.Gravity, tier1.Speed, 0.5)

	assert.Equal(t, tap, held)
}

func TestArenaGeometry(t *testing.T) {
	a := DefaultArena()

	assert.Equal(t, 20.0, a.Half())
	assert.Equal(t, 460.0, a.RestY())
	assert.Equal(t, 60.0, a.TopY())
	assert.Equal(t, 440.0, a.BandHeight())
}

func TestPeakAndAirtimeEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Peak(nil))
	assert.Equal(t, 0.0, Airtime(nil))
}
