// Package config provides YAML-based course tuning and difficulty presets.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/dashcourse/internal/course"
)

// CourseConfig contains all tuning for level generation.
type CourseConfig struct {
	Physics   PhysicsConfig    `yaml:"physics"`
	Wave      WaveConfig       `yaml:"wave"`
	Catalog   CatalogConfig    `yaml:"catalog"`
	Generator course.GenParams `yaml:"generator"`
}

// PhysicsConfig defines gravity-mode motion as a function of tier.
// Each value is Base + PerTier*tier.
type PhysicsConfig struct {
	BaseSpeed        float64 `yaml:"base_speed"`
	SpeedPerTier     float64 `yaml:"speed_per_tier"`
	BaseGravity      float64 `yaml:"base_gravity"`
	GravityPerTier   float64 `yaml:"gravity_per_tier"`
	BaseJumpForce    float64 `yaml:"base_jump_force"` // Negative = up
	JumpForcePerTier float64 `yaml:"jump_force_per_tier"`
}

// WaveConfig defines wave-mode vertical motion.
type WaveConfig struct {
	BaseClimb    float64 `yaml:"base_climb"` // Vertical speed while held
	ClimbPerTier float64 `yaml:"climb_per_tier"`
}

// CatalogConfig defines the level table.
type CatalogConfig struct {
	Tiers         int     `yaml:"tiers"`
	WaveEvery     int     `yaml:"wave_every"` // Every Nth tier is a wave level, 0 disables
	BaseLength    float64 `yaml:"base_length"`
	LengthPerTier float64 `yaml:"length_per_tier"`
	TierOffset    int     `yaml:"tier_offset"` // Added to each level's tier, set by presets
}

// ModeFor returns the movement mode of a level.
func (c CatalogConfig) ModeFor(id int) course.Mode {
	if c.WaveEvery > 0 && id%c.WaveEvery == 0 {
		return course.ModeWave
	}
	return course.ModeGravity
}

// Length returns the course length of a tier.
func (c CatalogConfig) Length(tier int) float64 {
	return c.BaseLength + c.LengthPerTier*float64(tier-1)
}

// Motion returns the motion parameters of a tier in the given mode.
// Wave levels have no gravity; their jump force is the climb speed.
func (c CourseConfig) Motion(tier int, mode course.Mode) course.Motion {
	d := float64(tier)
	m := course.Motion{
		Speed:   c.Physics.BaseSpeed + c.Physics.SpeedPerTier*d,
		Impulse: c.Physics.BaseJumpForce + c.Physics.JumpForcePerTier*d,
		Gravity: c.Physics.BaseGravity + c.Physics.GravityPerTier*d,
	}
	if mode == course.ModeWave {
		m.Gravity = 0
		m.Impulse = -(c.Wave.BaseClimb + c.Wave.ClimbPerTier*d)
	}
	return m
}

// Validate checks that the config can drive the generator.
func (c CourseConfig) Validate() error {
	var errs []error

	if c.Catalog.Tiers < course.MinTier || c.Catalog.Tiers > course.MaxTier {
		errs = append(errs, fmt.Errorf("catalog.tiers must be within %d..%d, got %d", course.MinTier, course.MaxTier, c.Catalog.Tiers))
	}
	if c.Catalog.WaveEvery < 0 {
		errs = append(errs, fmt.Errorf("catalog.wave_every must not be negative, got %d", c.Catalog.WaveEvery))
	}
	if c.Catalog.BaseLength <= 0 {
		errs = append(errs, fmt.Errorf("catalog.base_length must be positive, got %g", c.Catalog.BaseLength))
	}
	if c.Physics.BaseSpeed <= 0 {
		errs = append(errs, fmt.Errorf("physics.base_speed must be positive, got %g", c.Physics.BaseSpeed))
	}
	if c.Physics.BaseGravity < 0 {
		errs = append(errs, fmt.Errorf("physics.base_gravity must not be negative, got %g", c.Physics.BaseGravity))
	}
	if c.Physics.BaseJumpForce >= 0 {
		errs = append(errs, fmt.Errorf("physics.base_jump_force must be negative (upward), got %g", c.Physics.BaseJumpForce))
	}

	g := c.Generator
	if g.Arena.GroundY <= g.Arena.CeilingY {
		errs = append(errs, errors.New("generator.arena.ground_y must be below ceiling_y"))
	}
	if g.Arena.PlayerSize <= 0 {
		errs = append(errs, errors.New("generator.arena.player_size must be positive"))
	}
	if g.SpacingFloor <= 0 {
		errs = append(errs, errors.New("generator.spacing_floor must be positive"))
	}
	if g.EarlyShare < 0 || g.EarlyShare > 1 {
		errs = append(errs, fmt.Errorf("generator.early_share must be within 0..1, got %g", g.EarlyShare))
	}
	if g.MinWindow <= 0 {
		errs = append(errs, errors.New("generator.min_window must be positive"))
	}
	if g.ClusterMin < 1 || g.ClusterMax < g.ClusterMin {
		errs = append(errs, fmt.Errorf("generator cluster range %d..%d is invalid", g.ClusterMin, g.ClusterMax))
	}
	if g.WaveCenterMin < 0 || g.WaveCenterMax > 1 || g.WaveCenterMax < g.WaveCenterMin {
		errs = append(errs, fmt.Errorf("generator wave centre range %g..%g is invalid", g.WaveCenterMin, g.WaveCenterMax))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid course config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. Empty means "use config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty preset %q", s)
	}
}

// TierOffsetForPreset returns how many tiers a preset shifts every level.
func TierOffsetForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 2
	case DifficultyHard:
		return 5
	default:
		return 0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *CourseConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Catalog.TierOffset = TierOffsetForPreset(preset)
}
