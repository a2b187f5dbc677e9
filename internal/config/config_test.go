package config

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/dashcourse/internal/course"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(default yaml) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultCourseConfig()) {
		t.Errorf("embedded YAML and DefaultCourseConfig() disagree:\n%+v\n%+v", cfg, DefaultCourseConfig())
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("catalog:\n  tiers: 10\ngenerator:\n  gap_lead: 150\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Catalog.Tiers != 10 {
		t.Errorf("Tiers = %d, expected 10", cfg.Catalog.Tiers)
	}
	if cfg.Generator.GapLead != 150 {
		t.Errorf("GapLead = %g, expected 150", cfg.Generator.GapLead)
	}
	// Untouched keys keep their defaults
	if cfg.Generator.GapTail != 20 {
		t.Errorf("GapTail = %g, expected default 20", cfg.Generator.GapTail)
	}
	if cfg.Physics.BaseSpeed != 180 {
		t.Errorf("BaseSpeed = %g, expected default 180", cfg.Physics.BaseSpeed)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero tiers", "catalog:\n  tiers: 0\n"},
		{"too many tiers", "catalog:\n  tiers: 40\n"},
		{"downward jump", "physics:\n  base_jump_force: 100\n"},
		{"ceiling below ground", "generator:\n  arena:\n    ceiling_y: 900\n"},
		{"bad early share", "generator:\n  early_share: 1.5\n"},
		{"bad cluster", "generator:\n  cluster_min: 4\n  cluster_max: 2\n"},
		{"malformed", "catalog: [1, 2"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.yaml)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadCourseCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("catalog:\n  wave_every: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCourse(path)
	if err != nil {
		t.Fatalf("LoadCourse() failed: %v", err)
	}
	if cfg.Catalog.WaveEvery != 3 {
		t.Errorf("WaveEvery = %d, expected 3", cfg.Catalog.WaveEvery)
	}

	if _, err := LoadCourse(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadCourse() with a missing file should fail")
	}
}

func TestLoadCourseFallsBack(t *testing.T) {
	cfg, err := LoadCourse("")
	if err != nil {
		t.Fatalf("LoadCourse() failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("fallback config should be valid: %v", err)
	}
}

func TestLocate(t *testing.T) {
	if got := Locate("/some/where.yaml"); got != "/some/where.yaml" {
		t.Errorf("Locate() = %q, expected the custom path", got)
	}

	// Relative lookup runs against ./configs
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	if got := Locate(""); got != "" {
		t.Errorf("Locate() = %q, expected none", got)
	}

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", FileName), []byte("{}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if got := Locate(""); got != filepath.Join("configs", FileName) {
		t.Errorf("Locate() = %q, expected ./configs/%s", got, FileName)
	}
}

func TestMotion(t *testing.T) {
	cfg := DefaultCourseConfig()

	got := cfg.Motion(1, course.ModeGravity)
	want := course.Motion{Speed: 192, Impulse: -426, Gravity: 670}
	if got != want {
		t.Errorf("Motion(1, gravity) = %+v, expected %+v", got, want)
	}

	wave := cfg.Motion(5, course.ModeWave)
	if wave.Gravity != 0 {
		t.Errorf("wave gravity = %g, expected 0", wave.Gravity)
	}
	if wave.Impulse != -360 {
		t.Errorf("wave impulse = %g, expected -360", wave.Impulse)
	}
	if wave.Speed != 240 {
		t.Errorf("wave speed = %g, expected 240", wave.Speed)
	}
}

func TestCatalogModesAndLength(t *testing.T) {
	c := DefaultCourseConfig().Catalog

	if c.ModeFor(5) != course.ModeWave || c.ModeFor(15) != course.ModeWave {
		t.Error("tiers 5 and 15 should be wave levels")
	}
	if c.ModeFor(4) != course.ModeGravity {
		t.Error("tier 4 should be a gravity level")
	}
	if c.Length(1) != 3400 || c.Length(3) != 3800 {
		t.Errorf("Length() = %g/%g, expected 3400/3800", c.Length(1), c.Length(3))
	}

	c.WaveEvery = 0
	if c.ModeFor(5) != course.ModeGravity {
		t.Error("wave_every 0 should disable wave levels")
	}
}

func TestPresets(t *testing.T) {
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("unknown preset should fail")
	}

	preset, err := ParsePreset("hard")
	if err != nil {
		t.Fatalf("ParsePreset() failed: %v", err)
	}

	cfg := DefaultCourseConfig()
	ApplyPreset(&cfg, preset)
	if cfg.Catalog.TierOffset != 5 {
		t.Errorf("TierOffset = %d, expected 5", cfg.Catalog.TierOffset)
	}

	ApplyPreset(&cfg, "")
	if cfg.Catalog.TierOffset != 5 {
		t.Error("empty preset should leave the config alone")
	}
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("catalog:\n  tiers: 12\n"), 0o600))

	initial, err := LoadCourse(path)
	require.NoError(t, err)

	w, err := NewWatcher(path, initial, log.New(io.Discard))
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.NoError(t, os.WriteFile(path, []byte("catalog:\n  tiers: 9\n"), 0o600))
	assert.Eventually(t, func() bool {
		return w.Current().Catalog.Tiers == 9
	}, 2*time.Second, 20*time.Millisecond)

	// Invalid edits keep the last good config
	require.NoError(t, os.WriteFile(path, []byte("catalog:\n  tiers: 0\n"), 0o600))
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, 9, w.Current().Catalog.Tiers)
}
