// Package config holds the runtime settings shared by the CLI binaries:
// population constants, output paths and render options. Precedence is
// CLI flags, then environment (with .env support), then the config file,
// then defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"

	"armff/internal/aff"
	"armff/internal/ann"
	"armff/internal/anthro"
)

// Config holds all configurable population and output settings.
type Config struct {
	// Population
	BodyMass       float64 `json:"body_mass"`
	Stature        float64 `json:"stature"`
	CV             float64 `json:"cv"`
	PercentCapable float64 `json:"percent_capable"`

	// Output settings
	OutputDir      string `json:"output_dir"`
	RenderDiagrams bool   `json:"render_diagrams"`
	DiagramSize    int    `json:"diagram_size"`
	Supersample    int    `json:"supersample"`
	Workers        int    `json:"workers"`
}

// Flags holds CLI flag values that override everything else.
type Flags struct {
	OutputDir      string
	PercentCapable float64
	Workers        int
	DiagramSize    int
}

// Load reads a JSON config file. Fields not set in the file keep their
// zero values until Resolve fills them.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies environment overrides, CLI flags and defaults.
func (c *Config) Resolve(flags Flags) {
	// .env file, if present, feeds the environment layer.
	_ = godotenv.Load()

	if c.BodyMass == 0 {
		c.BodyMass = envFloat("AFF_BODY_MASS", 0)
	}
	if c.Stature == 0 {
		c.Stature = envFloat("AFF_STATURE", 0)
	}
	if c.CV == 0 {
		c.CV = envFloat("AFF_CV", 0)
	}
	if c.PercentCapable == 0 {
		c.PercentCapable = envFloat("AFF_PERCENT_CAPABLE", 0)
	}
	if c.OutputDir == "" {
		c.OutputDir = os.Getenv("AFF_OUTPUT_DIR")
	}
	if c.Workers == 0 {
		c.Workers = envInt("AFF_WORKERS", 0)
	}

	// CLI flags take priority.
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.PercentCapable > 0 {
		c.PercentCapable = flags.PercentCapable
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.DiagramSize > 0 {
		c.DiagramSize = flags.DiagramSize
	}

	// Defaults.
	pop := anthro.DefaultPopulation()
	if c.BodyMass <= 0 {
		c.BodyMass = pop.BodyMass
	}
	if c.Stature <= 0 {
		c.Stature = pop.Stature
	}
	if c.CV <= 0 {
		c.CV = pop.CV
	}
	if c.PercentCapable <= 0 {
		c.PercentCapable = 75
	}
	if c.OutputDir == "" {
		c.OutputDir = "aff-results"
	}
	if c.DiagramSize <= 0 {
		c.DiagramSize = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Population returns the configured population constants.
func (c Config) Population() anthro.Population {
	return anthro.Population{BodyMass: c.BodyMass, Stature: c.Stature, CV: c.CV}
}

// Model builds the evaluation model for the configured population.
func (c Config) Model() aff.Model {
	return aff.Model{Network: ann.Default(), Population: c.Population()}
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %s: %v, using default\n", key, err)
		return fallback
	}
	return f
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %s: %v, using default\n", key, err)
		return fallback
	}
	return n
}
