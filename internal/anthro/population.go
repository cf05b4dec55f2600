// Package anthro holds the anthropometric constants the strength model is
// calibrated against: segment mass and center-of-gravity ratios, and the
// population parameters (body mass, stature, strength coefficient of
// variation) that scale it.
package anthro

// Gravity is gravitational acceleration in m/s².
const Gravity = 9.81

// Segment center-of-gravity ratios, measured as a fraction of segment
// length from the proximal joint.
const (
	UpperArmCogRatio = 0.436 // from shoulder
	ForearmCogRatio  = 0.430 // from elbow
	HandCogRatio     = 0.740 // from wrist
)

// Segment masses as fractions of total body mass.
const (
	UpperArmMassRatio = 0.0280
	ForearmMassRatio  = 0.0170
	HandMassRatio     = 0.0060
)

// Population describes the population the strength distribution is drawn
// from. All fields must be positive.
type Population struct {
	BodyMass float64 `json:"body_mass"` // kg
	Stature  float64 `json:"stature"`   // m
	CV       float64 `json:"cv"`        // strength coefficient of variation
}

// DefaultPopulation returns the 50th-percentile female population the
// published model was calibrated for.
func DefaultPopulation() Population {
	return Population{
		BodyMass: 73.5,
		Stature:  1.619,
		CV:       0.277,
	}
}

// SegmentWeights returns the upper arm, forearm and hand weights in newtons
// for the population body mass.
func (p Population) SegmentWeights() (upperArm, forearm, hand float64) {
	return p.BodyMass * UpperArmMassRatio * Gravity,
		p.BodyMass * ForearmMassRatio * Gravity,
		p.BodyMass * HandMassRatio * Gravity
}
