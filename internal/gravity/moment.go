// Package gravity computes the moments the arm's own weight causes about
// the shoulder and turns them into a force-equivalent contribution along an
// applied hand force (the gravity force effect, GFE).
package gravity

import (
	"fmt"

	"armff/internal/anatomy"
	"armff/internal/anthro"
	"armff/internal/mathutil"
)

// Below this norm the assist cross product (moment axis near parallel to
// the reach direction) is treated as undefined and the force effect
// degrades to zero instead of dividing by a vanishing length.
const assistEpsilon = 1e-9

// Effect holds the gravity moment aggregate for one arm, in frame
// coordinates.
type Effect struct {
	// Segment centers of gravity relative to the shoulder.
	UpperArmCog mathutil.Vec3
	ForearmCog  mathutil.Vec3
	HandCog     mathutil.Vec3

	// Per-segment and aggregate moments about the shoulder (N·m).
	UpperArmMoment mathutil.Vec3
	ForearmMoment  mathutil.Vec3
	HandMoment     mathutil.Vec3
	TotalMoment    mathutil.Vec3
	MomentResultant float64

	// Reach geometry and the resulting force effect.
	Reach       float64       // shoulder-to-hand distance (m)
	ReachDir    mathutil.Vec3 // unit hand direction
	AssistDir   mathutil.Vec3 // unit direction gravity pushes the hand, zero when undefined
	ForceEffect mathutil.Vec3 // GFE vector (N)
	Resultant   float64       // GFE magnitude (N)
}

// Compute derives the gravity effect for one projected arm. gravityDir is
// the frame-coordinate gravity unit vector shared by both arms.
func Compute(arm anatomy.ArmKinematics, gravityDir mathutil.Vec3, pop anthro.Population) (Effect, error) {
	var e Effect

	// Segment CoGs: the shoulder is the frame origin, so the upper arm CoG
	// sits on the shoulder-elbow line directly.
	e.UpperArmCog = arm.Elbow.Scale(anthro.UpperArmCogRatio)
	e.ForearmCog = arm.Elbow.Add(arm.Wrist.Sub(arm.Elbow).Scale(anthro.ForearmCogRatio))
	e.HandCog = arm.Wrist.Add(arm.Hand.Sub(arm.Wrist).Scale(anthro.HandCogRatio))

	uaWt, faWt, hWt := pop.SegmentWeights()
	e.UpperArmMoment = e.UpperArmCog.Cross(gravityDir).Scale(uaWt)
	e.ForearmMoment = e.ForearmCog.Cross(gravityDir).Scale(faWt)
	e.HandMoment = e.HandCog.Cross(gravityDir).Scale(hWt)
	e.TotalMoment = e.UpperArmMoment.Add(e.ForearmMoment).Add(e.HandMoment)
	e.MomentResultant = e.TotalMoment.Len()

	e.Reach = arm.Hand.Len()
	if e.Reach < assistEpsilon {
		return Effect{}, fmt.Errorf("gravity: %s hand coincides with shoulder, reach undefined", arm.Side)
	}
	e.ReachDir = arm.Hand.Scale(1 / e.Reach)
	e.Resultant = e.MomentResultant / e.Reach

	momentDir := e.TotalMoment.Normalize()
	assist := momentDir.Cross(e.ReachDir)
	if l := assist.Len(); l >= assistEpsilon {
		e.AssistDir = assist.Scale(1 / l)
		e.ForceEffect = assist.Scale(e.Resultant / l)
	}
	// Otherwise the moment axis is parallel to the reach line and gravity
	// has no defined push direction at the hand; the effect stays zero.

	return e, nil
}

// AlongForce returns the component of the gravity force effect acting along
// the arm's applied force direction. Positive values assist the exertion.
func (e Effect) AlongForce(arm anatomy.ArmKinematics) float64 {
	return e.ForceEffect.Dot(arm.Force)
}
