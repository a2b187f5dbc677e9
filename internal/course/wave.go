package course

import "math"

// AuditWave flies a wave-mode course and checks every block. After passing
// a block the player steers toward the open side of the next one at the
// mode's climb rate, then holds that height until the block is behind it.
// Like Audit it only reports.
func (a Arena) AuditWave(c Course, m Motion) Report {
	var r Report
	n := min(len(c.Obstacles), len(c.Windows))
	if n == 0 {
		return r
	}
	r.Outcomes = make([]Outcome, 0, n)

	half := a.Half()
	rate := math.Abs(m.Impulse)
	dx := m.Speed * StepSeconds

	x := math.Min(c.Windows[0].StartX, c.Obstacles[0].X)
	y := (a.TopY() + a.RestY()) / 2
	t := 0.0
	r.Path = append(r.Path, Sample{X: x, Y: y, T: t})

	for i := 0; i < n; i++ {
		obs := c.Obstacles[i]
		top, bottom := a.Extent(obs, ModeWave)
		target := a.waveTarget(obs, top, bottom)

		out := Outcome{Index: i, PressX: x, Cleared: true}
		for end := obs.Right() + half; x < end && dx > 0; {
			x += dx
			t += StepSeconds
			y = approach(y, target, rate*StepSeconds)

			if x+half > obs.X && x-half < obs.Right() && y+half > top && y-half < bottom {
				out.Cleared = false
			}
			r.Path = append(r.Path, Sample{X: x, Y: y, T: t})
		}
		r.Outcomes = append(r.Outcomes, out)
	}
	return r
}

// waveTarget is the centre height that passes a block on its open side.
func (a Arena) waveTarget(obs Obstacle, top, bottom float64) float64 {
	margin := a.Half() + ClearanceSlack
	target := top - margin
	if obs.Y == 0 {
		target = bottom + margin
	}
	return math.Max(a.TopY(), math.Min(a.RestY(), target))
}

// approach moves v toward target by at most step.
func approach(v, target, step float64) float64 {
	if math.Abs(target-v) <= step {
		return target
	}
	if target > v {
		return v + step
	}
	return v - step
}
