package levels

import (
	"errors"
	"io"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/dashcourse/internal/config"
	"github.com/vovakirdan/dashcourse/internal/course"
	"github.com/vovakirdan/dashcourse/internal/registry"
)

func newTestCatalog(t *testing.T, seed int64) *Catalog {
	t.Helper()
	c, err := NewCatalog(config.DefaultCourseConfig(), rand.New(rand.NewSource(seed)), log.New(io.Discard))
	require.NoError(t, err)
	return c
}

func TestModesRegistered(t *testing.T) {
	assert.True(t, registry.Exists(course.ModeGravity))
	assert.True(t, registry.Exists(course.ModeWave))
	assert.Equal(t, "Wave", registry.Title(course.ModeWave))
}

func TestCatalogHasEveryTier(t *testing.T) {
	c := newTestCatalog(t, 1)
	require.Equal(t, 15, c.Len())

	for i, lvl := range c.Levels() {
		assert.Equal(t, i+1, lvl.ID)
		assert.NotEmpty(t, lvl.Name)
		assert.Len(t, lvl.JumpWindows, len(lvl.Obstacles), "level %d", lvl.ID)
		assert.NotEmpty(t, lvl.Obstacles, "level %d", lvl.ID)
		assert.NotEmpty(t, lvl.Palette.Background)
	}
}

func TestCatalogTierOnePhysics(t *testing.T) {
	c := newTestCatalog(t, 1)
	lvl, err := c.Level(1)
	require.NoError(t, err)

	assert.Equal(t, course.ModeGravity, lvl.Mode)
	assert.Equal(t, 1, lvl.Difficulty)
	assert.InDelta(t, 192, lvl.Speed, 1e-9)
	assert.InDelta(t, 670, lvl.Gravity, 1e-9)
	assert.InDelta(t, -426, lvl.JumpForce, 1e-9)
	assert.InDelta(t, 3400, lvl.Length, 1e-9)
	assert.Equal(t, lvl.Motion(), course.Motion{Speed: 192, Impulse: -426, Gravity: 670})
}

func TestCatalogWaveLevels(t *testing.T) {
	c := newTestCatalog(t, 2)
	for _, lvl := range c.Levels() {
		if lvl.ID%5 == 0 {
			assert.Equal(t, course.ModeWave, lvl.Mode, "level %d", lvl.ID)
			assert.Zero(t, lvl.Gravity, "level %d", lvl.ID)
			assert.Less(t, lvl.JumpForce, 0.0)
			assert.Equal(t, "minor", lvl.Music.Scale)
		} else {
			assert.Equal(t, course.ModeGravity, lvl.Mode, "level %d", lvl.ID)
			assert.Greater(t, lvl.Gravity, 0.0)
		}
	}
}

func TestEnterRegenerates(t *testing.T) {
	c := newTestCatalog(t, 3)
	before, err := c.Level(3)
	require.NoError(t, err)

	after, err := c.Enter(3)
	require.NoError(t, err)
	assert.NotEqual(t, before.Obstacles, after.Obstacles, "entering a level should produce a new layout")

	stored, err := c.Level(3)
	require.NoError(t, err)
	assert.Equal(t, after, stored)
}

func TestEnterWaveRegenerates(t *testing.T) {
	c := newTestCatalog(t, 4)
	before, _ := c.Level(5)

	after, err := c.Enter(5)
	require.NoError(t, err)
	assert.Equal(t, course.ModeWave, after.Mode)
	assert.NotEqual(t, before.Obstacles, after.Obstacles)
}

func TestUnknownLevel(t *testing.T) {
	c := newTestCatalog(t, 1)
	for _, id := range []int{0, -1, 16} {
		_, err := c.Level(id)
		assert.True(t, errors.Is(err, ErrUnknownLevel), "Level(%d)", id)
		_, err = c.Enter(id)
		assert.True(t, errors.Is(err, ErrUnknownLevel), "Enter(%d)", id)
	}
}

func TestPresetShiftsTiers(t *testing.T) {
	cfg := config.DefaultCourseConfig()
	config.ApplyPreset(&cfg, config.DifficultyHard)

	c, err := NewCatalog(cfg, rand.New(rand.NewSource(1)), nil)
	require.NoError(t, err)

	lvl, _ := c.Level(1)
	assert.Equal(t, 6, lvl.Difficulty)
	assert.Equal(t, course.ModeGravity, lvl.Mode)

	last, _ := c.Level(15)
	assert.Equal(t, course.MaxTier, last.Difficulty, "tiers clamp at the top")
}

func TestLevelsReturnsCopy(t *testing.T) {
	c := newTestCatalog(t, 1)
	snapshot := c.Levels()
	snapshot[0].Name = "changed"

	lvl, _ := c.Level(1)
	assert.NotEqual(t, "changed", lvl.Name)
}

func TestGeneratedLevelsAudit(t *testing.T) {
	arena := course.DefaultArena()
	c := newTestCatalog(t, 9)

	lvl, err := c.Level(1)
	require.NoError(t, err)
	report := lvl.Audit(arena)
	assert.Len(t, report.Outcomes, len(lvl.Obstacles))

	wave, err := c.Level(5)
	require.NoError(t, err)
	report = wave.Audit(arena)
	assert.Len(t, report.Outcomes, len(wave.Obstacles))
	assert.NotEmpty(t, report.Path)
}

func TestHoldCount(t *testing.T) {
	lvl := LevelConfig{JumpWindows: []course.JumpWindow{
		{Kind: course.WindowTap},
		{Kind: course.WindowHold, HoldDurationMs: 400},
		{Kind: course.WindowHold, HoldDurationMs: 300},
	}}
	assert.Equal(t, 2, lvl.HoldCount())
}
