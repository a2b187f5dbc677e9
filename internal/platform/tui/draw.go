package tui

import (
	"github.com/vovakirdan/dashcourse/internal/core"
	"github.com/vovakirdan/dashcourse/internal/course"
	"github.com/vovakirdan/dashcourse/internal/levels"
)

// Glyphs used on the course screen.
const (
	glyphSpike  = '^'
	glyphBlock  = '#'
	glyphGround = '='
	glyphPlayer = '@'
	glyphTap    = '-'
	glyphHold   = '~'
	glyphMark   = '|'
)

// minCourseRows is the smallest screen drawCourse can lay a course out on.
const minCourseRows = 4

// scene draws a level into a screen. The bottom two rows hold the ground
// line and the jump window lane; the rest shows the arena band.
type scene struct {
	arena   course.Arena
	xScale  float64 // World units per column
	windows bool    // Draw the window lane
}

// viewport returns the projection used for a screen with its left edge at world x.
func (sc scene) viewport(s *core.Screen, left float64) core.Viewport {
	return core.NewViewport(left, sc.arena.CeilingY, sc.arena.GroundY, sc.xScale, s.Width(), s.Height()-2)
}

// draw renders lvl with the screen's left edge at world x. A nil player
// draws the runner standing on the ground at the left of the view.
func (sc scene) draw(s *core.Screen, lvl levels.LevelConfig, left float64, player *course.Sample) {
	pal := lvl.Palette
	s.SetBackground(core.Color(pal.Background))
	s.Clear()
	if s.Height() < minCourseRows || s.Width() == 0 {
		return
	}

	v := sc.viewport(s, left)
	groundRow := s.Height() - 2
	laneRow := s.Height() - 1

	s.DrawHLine(0, groundRow, s.Width(), glyphGround, core.Color(pal.Ground).Or(core.ColorGreen))

	obstacleColor := core.Color(pal.Obstacle).Or(core.ColorRed)
	windowColor := core.Color(pal.Window).Or(core.ColorCyan)
	right := left + v.Width()

	for i, obs := range lvl.Obstacles {
		if obs.Right() < left || obs.X > right {
			continue
		}

		top, bottom := sc.arena.Extent(obs, lvl.Mode)
		r := v.Project(obs.X, top, obs.Width, bottom-top)

		switch obs.Kind {
		case course.KindGap:
			s.DrawHLine(r.X, groundRow, r.W, ' ', core.ColorDefault)
		case course.KindSpike:
			s.DrawRect(r, glyphSpike, obstacleColor)
		default:
			s.DrawRect(r, glyphBlock, obstacleColor)
		}

		if sc.windows && i < len(lvl.JumpWindows) {
			sc.drawWindow(s, v, lvl.JumpWindows[i], laneRow, windowColor)
			s.SetColored(r.X, laneRow, glyphMark, obstacleColor)
		}
	}

	p := course.Sample{X: left + v.Width()/8, Y: sc.arena.RestY()}
	if player != nil {
		p = *player
	}
	half := sc.arena.Half()
	s.DrawRect(v.Project(p.X-half, p.Y-half, sc.arena.PlayerSize, sc.arena.PlayerSize),
		glyphPlayer, core.Color(pal.Player).Or(core.ColorYellow))
}

func (sc scene) drawWindow(s *core.Screen, v core.Viewport, w course.JumpWindow, row int, fg core.Color) {
	glyph := glyphTap
	if w.Kind == course.WindowHold {
		glyph = glyphHold
	}
	start := v.Column(w.StartX)
	end := max(v.Column(w.EndX), start+1)
	s.DrawHLine(start, row, end-start, glyph, fg)
}
