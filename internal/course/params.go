package course

import "math"

// Difficulty tier bounds.
const (
	MinTier = 1
	MaxTier = 15
)

// ClampTier restricts a difficulty to the supported tier range.
func ClampTier(difficulty int) int {
	if difficulty < MinTier {
		return MinTier
	}
	if difficulty > MaxTier {
		return MaxTier
	}
	return difficulty
}

// GenParams configures generator behaviour. Per-tier fields are applied
// linearly from tier 1.
type GenParams struct {
	Arena Arena `yaml:"arena"`

	SafeStart float64 `yaml:"safe_start"` // No obstacles before this X
	SafeEnd   float64 `yaml:"safe_end"`   // No obstacles in the last stretch of the course

	// Category weights at tier 1; spikes give way to gaps as tiers rise
	SpikeWeight        float64 `yaml:"spike_weight"`
	BlockWeight        float64 `yaml:"block_weight"`
	GapWeight          float64 `yaml:"gap_weight"`
	SpikeWeightPerTier float64 `yaml:"spike_weight_per_tier"`
	GapWeightPerTier   float64 `yaml:"gap_weight_per_tier"`

	HoldChancePerTier float64 `yaml:"hold_chance_per_tier"`
	MaxHoldChance     float64 `yaml:"max_hold_chance"`
	ForceHoldAfter    int     `yaml:"force_hold_after"` // Tier 1 only

	SpikeWidth         float64 `yaml:"spike_width"`
	SpikeWidthJitter   float64 `yaml:"spike_width_jitter"`
	SpikeHeight        float64 `yaml:"spike_height"`
	SpikeHeightPerTier float64 `yaml:"spike_height_per_tier"`
	SpikeHeightJitter  float64 `yaml:"spike_height_jitter"`
	ClusterMin         int     `yaml:"cluster_min"` // Spikes per hold cluster
	ClusterMax         int     `yaml:"cluster_max"`

	BlockWidth         float64 `yaml:"block_width"`
	BlockWidthPerTier  float64 `yaml:"block_width_per_tier"`
	BlockWidthJitter   float64 `yaml:"block_width_jitter"`
	BlockHeight        float64 `yaml:"block_height"`
	BlockHeightPerTier float64 `yaml:"block_height_per_tier"`
	BlockHeightJitter  float64 `yaml:"block_height_jitter"`

	GapWidth        float64 `yaml:"gap_width"`
	GapWidthPerTier float64 `yaml:"gap_width_per_tier"`
	GapWidthJitter  float64 `yaml:"gap_width_jitter"`
	GapDepth        float64 `yaml:"gap_depth"`
	GapLead         float64 `yaml:"gap_lead"` // Window start before the pit
	GapTail         float64 `yaml:"gap_tail"` // Window end before the pit

	TargetWindow        float64 `yaml:"target_window"`
	TargetWindowPerTier float64 `yaml:"target_window_per_tier"`
	MinTargetWindow     float64 `yaml:"min_target_window"`
	MinWindow           float64 `yaml:"min_window"`
	EarlyShare          float64 `yaml:"early_share"` // Share of the excess trimmed from the start

	HoldLead      float64 `yaml:"hold_lead"`
	MinForcedHold float64 `yaml:"min_forced_hold"`
	MaxForcedHold float64 `yaml:"max_forced_hold"`

	SpacingMin        float64 `yaml:"spacing_min"`
	SpacingMax        float64 `yaml:"spacing_max"`
	SpacingMinPerTier float64 `yaml:"spacing_min_per_tier"`
	SpacingMaxPerTier float64 `yaml:"spacing_max_per_tier"`
	SpacingFloor      float64 `yaml:"spacing_floor"`
	SpacingBand       float64 `yaml:"spacing_band"`

	WaveCenterMin      float64 `yaml:"wave_center_min"`
	WaveCenterMax      float64 `yaml:"wave_center_max"`
	WaveGapSize        float64 `yaml:"wave_gap_size"`
	WaveGapSizePerTier float64 `yaml:"wave_gap_size_per_tier"`
	WaveMinGapSize     float64 `yaml:"wave_min_gap_size"`
	WaveWidth          float64 `yaml:"wave_width"`
	WaveWidthJitter    float64 `yaml:"wave_width_jitter"`
	WaveLead           float64 `yaml:"wave_lead"`
	WaveTail           float64 `yaml:"wave_tail"`
	WaveMinHoldMs      int     `yaml:"wave_min_hold_ms"`
}

// DefaultGenParams returns the tuned defaults.
func DefaultGenParams() GenParams {
	return GenParams{
		Arena: DefaultArena(),

		SafeStart: 600,
		SafeEnd:   400,

		SpikeWeight:        50,
		BlockWeight:        35,
		GapWeight:          15,
		SpikeWeightPerTier: -1,
		GapWeightPerTier:   1,

		HoldChancePerTier: 0.04,
		MaxHoldChance:     0.5,
		ForceHoldAfter:    2,

		SpikeWidth:         30,
		SpikeWidthJitter:   10,
		SpikeHeight:        36,
		SpikeHeightPerTier: 2,
		SpikeHeightJitter:  8,
		ClusterMin:         2,
		ClusterMax:         3,

		BlockWidth:         50,
		BlockWidthPerTier:  3,
		BlockWidthJitter:   30,
		BlockHeight:        40,
		BlockHeightPerTier: 3,
		BlockHeightJitter:  10,

		GapWidth:        60,
		GapWidthPerTier: 3,
		GapWidthJitter:  20,
		GapDepth:        100,
		GapLead:         120,
		GapTail:         20,

		TargetWindow:        220,
		TargetWindowPerTier: 16,
		MinTargetWindow:     60,
		MinWindow:           30,
		EarlyShare:          0.3,

		HoldLead:      0.2,
		MinForcedHold: 0.3,
		MaxForcedHold: 1.5,

		SpacingMin:        260,
		SpacingMax:        420,
		SpacingMinPerTier: 8,
		SpacingMaxPerTier: 12,
		SpacingFloor:      140,
		SpacingBand:       40,

		WaveCenterMin:      0.3,
		WaveCenterMax:      0.7,
		WaveGapSize:        0.5,
		WaveGapSizePerTier: 0.015,
		WaveMinGapSize:     0.25,
		WaveWidth:          60,
		WaveWidthJitter:    20,
		WaveLead:           160,
		WaveTail:           40,
		WaveMinHoldMs:      100,
	}
}

// scale applies a per-tier delta to a tier-1 base value.
func scale(base, perTier float64, tier int) float64 {
	return base + perTier*float64(tier-1)
}

// HoldChance is the probability that an obstacle is hold-type.
func (p GenParams) HoldChance(tier int) float64 {
	return math.Min(p.MaxHoldChance, p.HoldChancePerTier*float64(tier))
}

// TargetWidth is the window width the generator trims natural windows to.
func (p GenParams) TargetWidth(tier int) float64 {
	return math.Max(p.MinTargetWindow, scale(p.TargetWindow, -p.TargetWindowPerTier, tier))
}

// SpacingRange returns the bounds of the gap left after each obstacle.
func (p GenParams) SpacingRange(tier int) (lo, hi float64) {
	lo = math.Max(p.SpacingFloor, scale(p.SpacingMin, -p.SpacingMinPerTier, tier))
	hi = math.Max(lo+p.SpacingBand, scale(p.SpacingMax, -p.SpacingMaxPerTier, tier))
	return lo, hi
}

// Weights returns the spike, block and gap category weights for a tier.
func (p GenParams) Weights(tier int) (spike, block, gap float64) {
	spike = math.Max(0, scale(p.SpikeWeight, p.SpikeWeightPerTier, tier))
	block = math.Max(0, p.BlockWeight)
	gap = math.Max(0, scale(p.GapWeight, p.GapWeightPerTier, tier))
	return spike, block, gap
}

// WaveGap returns the passable gap size as a fraction of the band.
func (p GenParams) WaveGap(tier int) float64 {
	return math.Max(p.WaveMinGapSize, scale(p.WaveGapSize, -p.WaveGapSizePerTier, tier))
}

// GapWindow is the fixed heuristic window placed ahead of a pit.
func (p GenParams) GapWindow(x float64) JumpWindow {
	return JumpWindow{StartX: x - p.GapLead, EndX: x - p.GapTail, Kind: WindowTap}
}

// FitWindow trims a window wider than target. The start moves forward by
// EarlyShare of the excess and the end back by the rest, so late inputs get
// less slack than early ones.
func (p GenParams) FitWindow(start, end, target float64) (float64, float64) {
	excess := (end - start) - target
	if excess <= 0 {
		return start, end
	}
	start += excess * p.EarlyShare
	end -= excess * (1 - p.EarlyShare)
	if end-start < p.MinWindow {
		end = start + p.MinWindow
	}
	return start, end
}

// ForcedHold returns the hold needed to scroll past an obstacle of the given
// width, rounded up to the sweep step.
func (p GenParams) ForcedHold(width, speed float64) float64 {
	if speed <= 0 {
		return p.MaxForcedHold
	}
	secs := width/speed + p.HoldLead
	secs = math.Ceil(secs/HoldSweepStep-1e-9) * HoldSweepStep
	return math.Max(p.MinForcedHold, math.Min(p.MaxForcedHold, secs))
}

// toMs converts a hold duration to whole milliseconds, never below one.
func toMs(seconds float64) int {
	ms := int(math.Round(seconds * 1000))
	if ms < 1 {
		ms = 1
	}
	return ms
}
