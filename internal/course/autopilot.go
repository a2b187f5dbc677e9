package course

// Outcome is the autopilot result for one obstacle.
type Outcome struct {
	Index   int     // Obstacle index
	PressX  float64 // Where the input was issued
	Cleared bool
}

// Report summarises an autopilot run.
type Report struct {
	Outcomes []Outcome
	Path     []Sample // Stitched trajectory of every attempted jump
}

// Cleared returns how many obstacles were cleared.
func (r Report) Cleared() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Cleared {
			n++
		}
	}
	return n
}

// Passed reports whether every obstacle was cleared.
func (r Report) Passed() bool {
	return r.Cleared() == len(r.Outcomes)
}

// Audit replays a gravity-mode course by pressing at the middle of every
// window and checks each simulated arc against its obstacle. It reports but
// never changes the course.
func (a Arena) Audit(c Course, m Motion) Report {
	var r Report
	n := min(len(c.Obstacles), len(c.Windows))
	r.Outcomes = make([]Outcome, 0, n)

	for i := 0; i < n; i++ {
		obs, win := c.Obstacles[i], c.Windows[i]
		press := win.Mid()
		traj := a.Simulate(press, m.Impulse, m.Gravity, m.Speed, win.HoldSeconds())

		r.Outcomes = append(r.Outcomes, Outcome{
			Index:   i,
			PressX:  press,
			Cleared: a.clears(obs, traj),
		})
		r.Path = append(r.Path, traj...)
	}
	return r
}

// clears checks a trajectory against one obstacle.
func (a Arena) clears(obs Obstacle, traj []Sample) bool {
	half := a.Half()
	ground := a.RestY()

	if obs.Kind == KindGap {
		// Centre must be airborne over the whole pit
		if len(traj) == 0 || traj[0].X > obs.X || traj[len(traj)-1].X < obs.Right() {
			return false
		}
		for _, s := range traj {
			if s.X >= obs.X && s.X <= obs.Right() && s.Y >= ground {
				return false
			}
		}
		return true
	}

	// Pressing past the obstacle means running through it
	if len(traj) == 0 || traj[0].X >= obs.Right() {
		return false
	}

	top := a.GroundY - obs.Height
	for _, s := range traj {
		if s.X+half <= obs.X || s.X-half >= obs.Right() {
			continue
		}
		if s.Y+half > top {
			return false
		}
	}
	// Landing before the obstacle is not a clear
	if traj[len(traj)-1].X < obs.Right() {
		return false
	}
	return true
}
