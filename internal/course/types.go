// Package course generates obstacle courses for the side-scrolling runner.
// It simulates the player's jump arc, solves the timing window needed to
// clear each obstacle, and lays obstacles out along a course of fixed length.
// Everything here is pure computation with no I/O.
package course

// Mode is the movement model a course is generated for.
type Mode string

const (
	ModeGravity Mode = "gravity" // Discrete jumps from the ground
	ModeWave    Mode = "wave"    // Continuous flight between ceiling and ground
)

// Kind identifies the type of a placed obstacle.
type Kind string

const (
	KindSpike  Kind = "spike"
	KindBlock  Kind = "block"
	KindGap    Kind = "gap"
	KindMoving Kind = "moving" // Reserved, never emitted by the generator
)

// WindowKind tells the player how the input must be issued.
type WindowKind string

const (
	WindowTap  WindowKind = "tap"
	WindowHold WindowKind = "hold"
)

// Obstacle is a placed hazard.
//
// Y is mode dependent: in gravity mode it is a ground-relative fraction
// (0 = resting on the ground line); in wave mode it is the fraction of the
// playable band measured from its top edge. Width, Height and X share world
// units. For gaps, Height is a pit depth marker only.
type Obstacle struct {
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
	Kind   Kind    `yaml:"kind" json:"kind"`
}

// Right returns the trailing edge of the obstacle.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// JumpWindow is the horizontal interval in which the input for one obstacle
// must begin. HoldDurationMs is non-zero iff Kind is WindowHold.
type JumpWindow struct {
	StartX         float64    `yaml:"start_x" json:"startX"`
	EndX           float64    `yaml:"end_x" json:"endX"`
	Kind           WindowKind `yaml:"kind" json:"kind"`
	HoldDurationMs int        `yaml:"hold_duration_ms,omitempty" json:"holdDurationMs,omitempty"`
}

// Width returns the size of the window in world units.
func (w JumpWindow) Width() float64 {
	return w.EndX - w.StartX
}

// Mid returns the centre of the window.
func (w JumpWindow) Mid() float64 {
	return (w.StartX + w.EndX) / 2
}

// HoldSeconds returns the hold duration in seconds (0 for taps).
func (w JumpWindow) HoldSeconds() float64 {
	return float64(w.HoldDurationMs) / 1000
}

// Course is the generator output: obstacles and their index-aligned windows.
type Course struct {
	Obstacles []Obstacle   `yaml:"obstacles" json:"obstacles"`
	Windows   []JumpWindow `yaml:"jump_windows" json:"jumpWindows"`
}

// Len returns the number of obstacles in the course.
func (c Course) Len() int {
	return len(c.Obstacles)
}

// Aligned reports whether every obstacle has exactly one window.
func (c Course) Aligned() bool {
	return len(c.Obstacles) == len(c.Windows)
}

// Motion holds the level's movement parameters.
type Motion struct {
	Speed   float64 // Horizontal scroll speed, units per second
	Impulse float64 // Jump impulse, negative = up
	Gravity float64 // Downward acceleration, units per second squared
}

// Sample is one point of a simulated trajectory.
type Sample struct {
	X float64 // Horizontal position
	Y float64 // Vertical position of the player's centre (smaller = higher)
	T float64 // Elapsed seconds since launch
}

// Clearance is the solver's answer for one obstacle.
type Clearance struct {
	EarliestX   float64 // Earliest input position
	LatestX     float64 // Latest input position
	NeedsHold   bool    // A tap does not reach the clearance height
	HoldSeconds float64 // Shortest sufficient hold, when NeedsHold
}
