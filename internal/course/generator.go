package course

import "math"

// Generator lays obstacles out along a course. It is not safe for
// concurrent use: every call draws from the same random source.
type Generator struct {
	params GenParams
	rng    Rand
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(p GenParams, rng Rand) *Generator {
	return &Generator{params: p, rng: rng}
}

// Params returns the generator's tuning.
func (g *Generator) Params() GenParams {
	return g.params
}

// Gravity generates a course for the jumping mode. Each non-gap obstacle is
// solved against the level's motion, and the resulting window is trimmed to
// the tier's target width. Obstacles are never revisited once placed.
func (g *Generator) Gravity(difficulty int, length float64, m Motion) Course {
	p := g.params
	tier := ClampTier(difficulty)
	target := p.TargetWidth(tier)

	var c Course
	holdSeen := false

	for x := p.SafeStart; x < length-p.SafeEnd; {
		// Tier 1 must teach the hold mechanic at least once
		forced := tier == MinTier && !holdSeen && c.Len() >= p.ForceHoldAfter
		held := forced || g.rng.Float64() < p.HoldChance(tier)

		kind := KindSpike
		if !held {
			kind = g.pickKind(tier)
		}
		obs := g.shape(kind, held, x, tier)

		var win JumpWindow
		if kind == KindGap {
			win = p.GapWindow(obs.X)
		} else {
			cl := p.Arena.Solve(obs.X, obs.Width, obs.Height, m.Impulse, m.Gravity, m.Speed)
			start, end := p.FitWindow(cl.EarliestX, cl.LatestX, target)
			win = JumpWindow{StartX: start, EndX: end, Kind: WindowTap}

			if cl.NeedsHold || held {
				hold := 0.0
				if cl.NeedsHold {
					hold = cl.HoldSeconds
				}
				if held {
					hold = math.Max(hold, p.ForcedHold(obs.Width, m.Speed))
				}
				win.Kind = WindowHold
				win.HoldDurationMs = toMs(hold)
				holdSeen = true
			}
		}

		c.Obstacles = append(c.Obstacles, obs)
		c.Windows = append(c.Windows, win)

		x += obs.Width + g.spacing(tier)
	}

	return c
}

// Wave generates a course for the flying mode. Blocks alternate between the
// top and the bottom of the band around a random passable gap; each window
// is a heuristic taken from the gap's vertical position alone.
func (g *Generator) Wave(difficulty int, length float64, m Motion) Course {
	p := g.params
	tier := ClampTier(difficulty)
	band := p.Arena.BandHeight()
	gap := p.WaveGap(tier)

	var c Course
	fromTop := true

	for x := p.SafeStart; x < length-p.SafeEnd; {
		center := between(g.rng, p.WaveCenterMin, p.WaveCenterMax)
		upper := math.Max(0, center-gap/2)
		lower := math.Min(1, center+gap/2)
		width := p.WaveWidth + jitter(g.rng, p.WaveWidthJitter)

		obs := Obstacle{X: x, Width: width, Kind: KindBlock}
		if fromTop {
			obs.Y = 0
			obs.Height = upper * band
		} else {
			obs.Y = lower
			obs.Height = (1 - lower) * band
		}

		win := JumpWindow{StartX: x - p.WaveLead, EndX: x - p.WaveTail, Kind: WindowTap}
		if center < 0.5 {
			ms := p.WaveMinHoldMs
			if climb := math.Abs(m.Impulse); climb > 0 {
				ms = max(ms, toMs((0.5-center)*band/climb))
			}
			win.Kind = WindowHold
			win.HoldDurationMs = max(ms, 1)
		}

		c.Obstacles = append(c.Obstacles, obs)
		c.Windows = append(c.Windows, win)

		fromTop = !fromTop
		x += width + g.spacing(tier)
	}

	return c
}

// pickKind draws a non-hold obstacle category by tier weight.
func (g *Generator) pickKind(tier int) Kind {
	spike, block, gap := g.params.Weights(tier)
	total := spike + block + gap
	if total <= 0 {
		return KindSpike
	}

	roll := g.rng.Float64() * total
	switch {
	case roll < spike:
		return KindSpike
	case roll < spike+block:
		return KindBlock
	default:
		return KindGap
	}
}

// shape computes obstacle geometry for a category at cursor x.
func (g *Generator) shape(kind Kind, held bool, x float64, tier int) Obstacle {
	p := g.params
	obs := Obstacle{X: x, Kind: kind}

	switch kind {
	case KindBlock:
		obs.Width = scale(p.BlockWidth, p.BlockWidthPerTier, tier) + jitter(g.rng, p.BlockWidthJitter)
		obs.Height = scale(p.BlockHeight, p.BlockHeightPerTier, tier) + jitter(g.rng, p.BlockHeightJitter)
	case KindGap:
		obs.Width = scale(p.GapWidth, p.GapWidthPerTier, tier) + jitter(g.rng, p.GapWidthJitter)
		obs.Height = p.GapDepth
	default:
		spikes := 1
		if held {
			spikes = p.ClusterMin
			if p.ClusterMax > p.ClusterMin {
				spikes += g.rng.Intn(p.ClusterMax - p.ClusterMin + 1)
			}
		}
		obs.Width = float64(spikes) * (p.SpikeWidth + jitter(g.rng, p.SpikeWidthJitter))
		obs.Height = scale(p.SpikeHeight, p.SpikeHeightPerTier, tier) + jitter(g.rng, p.SpikeHeightJitter)
	}

	if obs.Width <= 0 {
		obs.Width = 1
	}
	return obs
}

// spacing draws the distance to the next obstacle.
func (g *Generator) spacing(tier int) float64 {
	lo, hi := g.params.SpacingRange(tier)
	return between(g.rng, lo, hi)
}
