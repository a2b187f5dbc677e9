package config

import (
	_ "embed"

	"github.com/vovakirdan/dashcourse/internal/course"
)

//go:embed defaults/course.yaml
var defaultCourseYAML []byte

// DefaultCourseConfig returns the default course configuration.
func DefaultCourseConfig() CourseConfig {
	return CourseConfig{
		Physics: PhysicsConfig{
			BaseSpeed:        180,
			SpeedPerTier:     12,
			BaseGravity:      650,
			GravityPerTier:   20,
			BaseJumpForce:    -420,
			JumpForcePerTier: -6,
		},
		Wave: WaveConfig{
			BaseClimb:    320,
			ClimbPerTier: 8,
		},
		Catalog: CatalogConfig{
			Tiers:         15,
			WaveEvery:     5,
			BaseLength:    3400,
			LengthPerTier: 200,
		},
		Generator: course.DefaultGenParams(),
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCourseYAML
}
