package course

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wave5 = Motion{Speed: 240, Impulse: -360, Gravity: 0}

func TestAuditWaveAlternatingBlocks(t *testing.T) {
	a := DefaultArena()
	band := a.BandHeight()

	c := Course{
		Obstacles: []Obstacle{
			{X: 1000, Width: 60, Y: 0, Height: 100, Kind: KindBlock},
			{X: 1300, Width: 60, Y: 0.6, Height: 0.4 * band, Kind: KindBlock},
		},
		Windows: []JumpWindow{
			{StartX: 840, EndX: 960, Kind: WindowHold, HoldDurationMs: 300},
			{StartX: 1140, EndX: 1260, Kind: WindowTap},
		},
	}

	r := a.AuditWave(c, wave5)
	require.Len(t, r.Outcomes, 2)
	assert.True(t, r.Passed(), "outcomes: %+v", r.Outcomes)
	assert.Greater(t, r.Path[len(r.Path)-1].X, c.Obstacles[1].Right())
}

func TestAuditWaveDetectsClosedBand(t *testing.T) {
	a := DefaultArena()

	c := Course{
		Obstacles: []Obstacle{{X: 1000, Width: 60, Y: 0, Height: 430, Kind: KindBlock}},
		Windows:   []JumpWindow{{StartX: 840, EndX: 960, Kind: WindowTap}},
	}

	r := a.AuditWave(c, wave5)
	require.Len(t, r.Outcomes, 1)
	assert.False(t, r.Outcomes[0].Cleared)
}

func TestAuditWaveStaysInBand(t *testing.T) {
	a := DefaultArena()
	g := NewGenerator(DefaultGenParams(), rand.New(rand.NewSource(3)))
	c := g.Wave(5, 4200, wave5)

	r := a.AuditWave(c, wave5)
	assert.Len(t, r.Outcomes, c.Len())
	for _, s := range r.Path {
		assert.GreaterOrEqual(t, s.Y, a.TopY())
		assert.LessOrEqual(t, s.Y, a.RestY())
	}
}

func TestAuditWaveEmpty(t *testing.T) {
	r := DefaultArena().AuditWave(Course{}, wave5)
	assert.Empty(t, r.Outcomes)
	assert.True(t, r.Passed())
}

func TestExtent(t *testing.T) {
	a := DefaultArena()

	top, bottom := a.Extent(Obstacle{Height: 40, Kind: KindSpike}, ModeGravity)
	assert.Equal(t, 440.0, top)
	assert.Equal(t, 480.0, bottom)

	top, bottom = a.Extent(Obstacle{Y: 0.5, Height: 220, Kind: KindBlock}, ModeWave)
	assert.Equal(t, 260.0, top)
	assert.Equal(t, 480.0, bottom)

	top, bottom = a.Extent(Obstacle{Height: 100, Kind: KindGap}, ModeGravity)
	assert.Equal(t, 480.0, top)
	assert.Equal(t, 580.0, bottom)
}
