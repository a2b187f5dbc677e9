package levels

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dashcourse/internal/config"
	"github.com/vovakirdan/dashcourse/internal/course"
	"github.com/vovakirdan/dashcourse/internal/registry"
)

// ErrUnknownLevel is returned for level IDs outside the catalog.
var ErrUnknownLevel = errors.New("levels: unknown level")

func init() {
	registry.Register(course.ModeGravity, "Gravity", (*course.Generator).Gravity)
	registry.Register(course.ModeWave, "Wave", (*course.Generator).Wave)
}

// Catalog owns the level table. It is not safe for concurrent use;
// each player session should hold its own.
type Catalog struct {
	cfg    config.CourseConfig
	gen    *course.Generator
	levels []LevelConfig
	logger *log.Logger
}

// NewCatalog generates every tier up front.
func NewCatalog(cfg config.CourseConfig, rng course.Rand, logger *log.Logger) (*Catalog, error) {
	if logger == nil {
		logger = log.Default()
	}

	c := &Catalog{
		cfg:    cfg,
		gen:    course.NewGenerator(cfg.Generator, rng),
		levels: make([]LevelConfig, cfg.Catalog.Tiers),
		logger: logger,
	}

	for id := 1; id <= cfg.Catalog.Tiers; id++ {
		lvl, err := c.build(id)
		if err != nil {
			return nil, err
		}
		c.levels[id-1] = lvl
	}

	logger.Debug("catalog generated", "levels", len(c.levels))
	return c, nil
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.levels)
}

// Levels returns a snapshot of all levels.
func (c *Catalog) Levels() []LevelConfig {
	out := make([]LevelConfig, len(c.levels))
	copy(out, c.levels)
	return out
}

// Level returns the current layout of a level without regenerating it.
func (c *Catalog) Level(id int) (LevelConfig, error) {
	if id < 1 || id > len(c.levels) {
		return LevelConfig{}, fmt.Errorf("%w: %d", ErrUnknownLevel, id)
	}
	return c.levels[id-1], nil
}

// Enter regenerates a level with new obstacles and returns it.
// Every entry, first attempt or retry, gets a fresh layout.
func (c *Catalog) Enter(id int) (LevelConfig, error) {
	if id < 1 || id > len(c.levels) {
		return LevelConfig{}, fmt.Errorf("%w: %d", ErrUnknownLevel, id)
	}

	lvl, err := c.build(id)
	if err != nil {
		return LevelConfig{}, err
	}
	c.levels[id-1] = lvl

	c.logger.Debug("level regenerated",
		"id", id,
		"mode", lvl.Mode,
		"obstacles", len(lvl.Obstacles),
		"holds", lvl.HoldCount(),
	)
	return lvl, nil
}

// Arena returns the arena geometry levels are generated for.
func (c *Catalog) Arena() course.Arena {
	return c.cfg.Generator.Arena
}

// Tier returns the difficulty tier used for a level ID.
func (c *Catalog) Tier(id int) int {
	return course.ClampTier(id + c.cfg.Catalog.TierOffset)
}

// build generates one level from scratch.
func (c *Catalog) build(id int) (LevelConfig, error) {
	tier := c.Tier(id)
	mode := c.cfg.Catalog.ModeFor(id)

	builder, err := registry.Lookup(mode)
	if err != nil {
		return LevelConfig{}, fmt.Errorf("levels: level %d: %w", id, err)
	}

	m := c.cfg.Motion(tier, mode)
	length := c.cfg.Catalog.Length(tier)
	crs := builder(c.gen, tier, length, m)

	return LevelConfig{
		ID:          id,
		Name:        levelName(id),
		Mode:        mode,
		Difficulty:  tier,
		Speed:       m.Speed,
		Gravity:     m.Gravity,
		JumpForce:   m.Impulse,
		Palette:     paletteFor(id),
		Obstacles:   crs.Obstacles,
		JumpWindows: crs.Windows,
		Length:      length,
		Music:       musicFor(id, tier, mode),
	}, nil
}
