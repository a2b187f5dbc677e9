// Package levels builds the level table the game plays through.
// Every tier is generated at startup and regenerated with fresh obstacles
// each time it is entered.
package levels

import (
	"github.com/vovakirdan/dashcourse/internal/course"
)

// Palette holds the colours a renderer uses for a level, as hex strings.
type Palette struct {
	Background string `yaml:"background" json:"background"`
	Ground     string `yaml:"ground" json:"ground"`
	Obstacle   string `yaml:"obstacle" json:"obstacle"`
	Player     string `yaml:"player" json:"player"`
	Window     string `yaml:"window" json:"window"`
}

// Music holds the parameters handed to the audio collaborator.
type Music struct {
	Tempo int    `yaml:"tempo" json:"tempo"` // Beats per minute
	Key   string `yaml:"key" json:"key"`
	Scale string `yaml:"scale" json:"scale"`
}

// LevelConfig describes one playable stage.
// Obstacles and JumpWindows are index aligned and treated as read-only.
type LevelConfig struct {
	ID          int                 `yaml:"id" json:"id"`
	Name        string              `yaml:"name" json:"name"`
	Mode        course.Mode         `yaml:"mode" json:"mode"`
	Difficulty  int                 `yaml:"difficulty" json:"difficulty"`
	Speed       float64             `yaml:"speed" json:"speed"`
	Gravity     float64             `yaml:"gravity" json:"gravity"`
	JumpForce   float64             `yaml:"jump_force" json:"jumpForce"`
	Palette     Palette             `yaml:"palette" json:"palette"`
	Obstacles   []course.Obstacle   `yaml:"obstacles" json:"obstacles"`
	JumpWindows []course.JumpWindow `yaml:"jump_windows" json:"jumpWindows"`
	Length      float64             `yaml:"length" json:"length"`
	Music       Music               `yaml:"music" json:"music"`
}

// Motion returns the level's movement parameters.
func (l LevelConfig) Motion() course.Motion {
	return course.Motion{Speed: l.Speed, Impulse: l.JumpForce, Gravity: l.Gravity}
}

// Course returns the level's obstacles and windows.
func (l LevelConfig) Course() course.Course {
	return course.Course{Obstacles: l.Obstacles, Windows: l.JumpWindows}
}

// Audit replays the level with the autopilot for its mode.
func (l LevelConfig) Audit(arena course.Arena) course.Report {
	if l.Mode == course.ModeWave {
		return arena.AuditWave(l.Course(), l.Motion())
	}
	return arena.Audit(l.Course(), l.Motion())
}

// HoldCount returns how many windows ask for a held input.
func (l LevelConfig) HoldCount() int {
	n := 0
	for _, w := range l.JumpWindows {
		if w.Kind == course.WindowHold {
			n++
		}
	}
	return n
}

var names = []string{
	"First Steps",
	"Spike Street",
	"Block Party",
	"Mind the Gap",
	"Paper Plane",
	"Bounce House",
	"Rooftop Run",
	"Cactus Canyon",
	"Pit Stop",
	"Sky Ribbon",
	"Night Shift",
	"Thunder Road",
	"Last Train",
	"Crystal Caves",
	"Storm Flight",
}

var palettes = []Palette{
	{Background: "#1d2b53", Ground: "#29adff", Obstacle: "#ff004d", Player: "#ffec27", Window: "#00e436"},
	{Background: "#2b1d53", Ground: "#ff77a8", Obstacle: "#ffa300", Player: "#fff1e8", Window: "#29adff"},
	{Background: "#0f3b2e", Ground: "#00e436", Obstacle: "#7e2553", Player: "#ffccaa", Window: "#ffec27"},
	{Background: "#3b0f1d", Ground: "#ffa300", Obstacle: "#83769c", Player: "#29adff", Window: "#ff77a8"},
	{Background: "#101018", Ground: "#c2c3c7", Obstacle: "#ff004d", Player: "#00e436", Window: "#ffa300"},
}

var keys = []string{"C", "D", "E", "F", "G", "A", "B"}

// levelName returns the display name of a level.
func levelName(id int) string {
	return names[(id-1)%len(names)]
}

// paletteFor picks a palette for a level.
func paletteFor(id int) Palette {
	return palettes[(id-1)%len(palettes)]
}

// musicFor derives music parameters: faster with difficulty, minor for wave levels.
func musicFor(id, tier int, mode course.Mode) Music {
	scale := "major"
	if mode == course.ModeWave {
		scale = "minor"
	}
	return Music{
		Tempo: 110 + 4*tier,
		Key:   keys[(id-1)%len(keys)],
		Scale: scale,
	}
}
