// Package posture defines the JSON input format for evaluation cases and
// the published reference posture.
package posture

import (
	"encoding/json"
	"fmt"
	"os"

	"armff/internal/aff"
	"armff/internal/anatomy"
)

// DefaultPercentCapable is applied when a posture file does not request a
// percentile.
const DefaultPercentCapable = 75

// Posture is one named evaluation case: joint landmarks, force directions,
// actual hand loads and the requested percentile. Coordinates are meters in
// the global frame (+x lateral-left, +y superior, +z anterior); loads are
// newtons.
type Posture struct {
	Name           string           `json:"name,omitempty"`
	Joints         anatomy.JointSet `json:"joints"`
	LeftLoad       float64          `json:"left_load"`
	RightLoad      float64          `json:"right_load"`
	PercentCapable float64          `json:"percent_capable,omitempty"`
}

// Input converts the posture into an evaluation input, applying the
// percentile default.
func (p Posture) Input() aff.Input {
	pc := p.PercentCapable
	if pc == 0 {
		pc = DefaultPercentCapable
	}
	return aff.Input{
		Joints:         p.Joints,
		LeftLoad:       p.LeftLoad,
		RightLoad:      p.RightLoad,
		PercentCapable: pc,
	}
}

// Load reads a single-posture JSON file.
func Load(path string) (Posture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Posture{}, fmt.Errorf("posture: read %s: %w", path, err)
	}
	var p Posture
	if err := json.Unmarshal(data, &p); err != nil {
		return Posture{}, fmt.Errorf("posture: parse %s: %w", path, err)
	}
	return p, nil
}

// LoadBatch reads a batch file: either a bare JSON array of postures or an
// object with a "postures" field.
func LoadBatch(path string) ([]Posture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("posture: read %s: %w", path, err)
	}

	var list []Posture
	if err := json.Unmarshal(data, &list); err == nil {
		return named(list), nil
	}

	var wrapper struct {
		Postures []Posture `json:"postures"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("posture: parse %s: %w", path, err)
	}
	return named(wrapper.Postures), nil
}

// named fills in positional names for unnamed entries so batch results stay
// addressable.
func named(list []Posture) []Posture {
	for i := range list {
		if list[i].Name == "" {
			list[i].Name = fmt.Sprintf("posture-%03d", i)
		}
	}
	return list
}
