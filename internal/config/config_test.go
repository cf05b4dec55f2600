package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"AFF_BODY_MASS", "AFF_STATURE", "AFF_CV",
		"AFF_PERCENT_CAPABLE", "AFF_OUTPUT_DIR", "AFF_WORKERS",
	} {
		t.Setenv(key, "")
	}
}

func TestResolveDefaults(t *testing.T) {
	clearEnv(t)

	var cfg Config
	cfg.Resolve(Flags{})

	assert.Equal(t, 73.5, cfg.BodyMass)
	assert.Equal(t, 1.619, cfg.Stature)
	assert.Equal(t, 0.277, cfg.CV)
	assert.Equal(t, 75.0, cfg.PercentCapable)
	assert.Equal(t, "aff-results", cfg.OutputDir)
	assert.Equal(t, 512, cfg.DiagramSize)
	assert.Equal(t, 2, cfg.Supersample)
	assert.Greater(t, cfg.Workers, 0)
}

func TestResolveEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("AFF_BODY_MASS", "81.25")
	t.Setenv("AFF_PERCENT_CAPABLE", "90")
	t.Setenv("AFF_OUTPUT_DIR", "/tmp/aff-out")
	t.Setenv("AFF_WORKERS", "3")

	var cfg Config
	cfg.Resolve(Flags{})

	assert.Equal(t, 81.25, cfg.BodyMass)
	assert.Equal(t, 90.0, cfg.PercentCapable)
	assert.Equal(t, "/tmp/aff-out", cfg.OutputDir)
	assert.Equal(t, 3, cfg.Workers)

	t.Run("file values win over environment", func(t *testing.T) {
		cfg := Config{BodyMass: 60}
		cfg.Resolve(Flags{})
		assert.Equal(t, 60.0, cfg.BodyMass)
	})

	t.Run("unparseable value falls through to default", func(t *testing.T) {
		t.Setenv("AFF_BODY_MASS", "heavy")
		var cfg Config
		cfg.Resolve(Flags{})
		assert.Equal(t, 73.5, cfg.BodyMass)
	})
}

func TestResolveFlagPriority(t *testing.T) {
	clearEnv(t)
	t.Setenv("AFF_OUTPUT_DIR", "/tmp/env-out")
	t.Setenv("AFF_PERCENT_CAPABLE", "90")

	var cfg Config
	cfg.Resolve(Flags{OutputDir: "/tmp/flag-out", PercentCapable: 10, Workers: 2, DiagramSize: 256})

	assert.Equal(t, "/tmp/flag-out", cfg.OutputDir)
	assert.Equal(t, 10.0, cfg.PercentCapable)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 256, cfg.DiagramSize)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"body_mass": 68.0,
		"cv": 0.3,
		"output_dir": "results",
		"render_diagrams": true
	}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 68.0, cfg.BodyMass)
	assert.Equal(t, 0.3, cfg.CV)
	assert.Equal(t, "results", cfg.OutputDir)
	assert.True(t, cfg.RenderDiagrams)

	clearEnv(t)
	cfg.Resolve(Flags{})
	assert.Equal(t, 68.0, cfg.BodyMass)
	assert.Equal(t, 1.619, cfg.Stature)

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		assert.ErrorContains(t, err, "read")
	})

	t.Run("malformed file", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte("{"), 0644))
		_, err := Load(bad)
		assert.ErrorContains(t, err, "parse")
	})
}

func TestModel(t *testing.T) {
	clearEnv(t)

	var cfg Config
	cfg.Resolve(Flags{})

	m := cfg.Model()
	require.NotNil(t, m.Network)
	assert.Equal(t, cfg.BodyMass, m.Population.BodyMass)
	assert.Equal(t, cfg.CV, m.Population.CV)
}
