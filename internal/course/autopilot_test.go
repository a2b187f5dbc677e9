package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditClearsSolvedSpike(t *testing.T) {
	a := DefaultArena()
	p := DefaultGenParams()

	spike := Obstacle{X: 1000, Width: 30, Height: 40, Kind: KindSpike}
	cl := a.Solve(spike.X, spike.Width, spike.Height, tier1.Impulse, tier1.Gravity, tier1.Speed)
	start, end := p.FitWindow(cl.EarliestX, cl.LatestX, p.TargetWidth(1))

	c := Course{
		Obstacles: []Obstacle{spike},
		Windows:   []JumpWindow{{StartX: start, EndX: end, Kind: WindowTap}},
	}

	r := a.Audit(c, tier1)
	require.Len(t, r.Outcomes, 1)
	assert.True(t, r.Outcomes[0].Cleared)
	assert.True(t, r.Passed())
	assert.NotEmpty(t, r.Path)
}

func TestAuditClearsGap(t *testing.T) {
	a := DefaultArena()
	p := DefaultGenParams()

	gap := Obstacle{X: 1000, Width: 80, Height: p.GapDepth, Kind: KindGap}
	c := Course{
		Obstacles: []Obstacle{gap},
		Windows:   []JumpWindow{p.GapWindow(gap.X)},
	}

	r := a.Audit(c, tier1)
	assert.Equal(t, 1, r.Cleared())
}

func TestAuditDetectsLatePress(t *testing.T) {
	a := DefaultArena()

	c := Course{
		Obstacles: []Obstacle{
			{X: 1000, Width: 30, Height: 40, Kind: KindSpike},
			{X: 2000, Width: 30, Height: 40, Kind: KindSpike},
		},
		Windows: []JumpWindow{
			{StartX: 1100, EndX: 1110, Kind: WindowTap}, // Past the spike
			{StartX: 1500, EndX: 1510, Kind: WindowTap}, // Lands long before it
		},
	}

	r := a.Audit(c, tier1)
	require.Len(t, r.Outcomes, 2)
	assert.False(t, r.Outcomes[0].Cleared)
	assert.False(t, r.Outcomes[1].Cleared)
	assert.False(t, r.Passed())
	assert.Zero(t, r.Cleared())
}

func TestAuditDetectsTallBlock(t *testing.T) {
	a := DefaultArena()

	c := Course{
		Obstacles: []Obstacle{{X: 1000, Width: 40, Height: 300, Kind: KindBlock}},
		Windows:   []JumpWindow{{StartX: 900, EndX: 920, Kind: WindowTap}},
	}

	r := a.Audit(c, tier1)
	assert.False(t, r.Passed())
}

func TestAuditGeneratedTierOne(t *testing.T) {
	a := DefaultArena()
	g := newTestGenerator(11)
	c := g.Gravity(1, 3400, tier1)

	r := a.Audit(c, tier1)
	assert.Len(t, r.Outcomes, c.Len())
	for i, o := range r.Outcomes {
		assert.Equal(t, i, o.Index)
		assert.Equal(t, c.Windows[i].Mid(), o.PressX)
	}
}
