package anatomy

import (
	"fmt"

	"armff/internal/mathutil"
)

// Side tags which arm a quantity belongs to.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// LateralSign is −1 for the left side and +1 for the right. The left arm's
// lateral components are mirrored so that positive lateral means "away from
// the body midline" on both sides.
func (s Side) LateralSign() float64 {
	if s == Left {
		return -1
	}
	return 1
}

// Sides lists both arms in evaluation order.
var Sides = [2]Side{Left, Right}

// ArmKinematics is one arm expressed in the shoulder axis system: joint
// positions relative to the ipsilateral shoulder and the unit force
// direction, all with the left side's lateral component mirrored.
type ArmKinematics struct {
	Side  Side
	Hand  mathutil.Vec3
	Wrist mathutil.Vec3
	Elbow mathutil.Vec3
	Force mathutil.Vec3
}

// ProjectArm expresses one arm's joints and force direction in the frame.
// The force vector is normalized in the global frame before projection.
func ProjectArm(f Frame, j JointSet, side Side) (ArmKinematics, error) {
	var shoulder, hand, wrist, elbow, force mathutil.Vec3
	if side == Left {
		shoulder, hand, wrist, elbow, force = j.LeftShoulder, j.LeftHand, j.LeftWrist, j.LeftElbow, j.LeftForce
	} else {
		shoulder, hand, wrist, elbow, force = j.RightShoulder, j.RightHand, j.RightWrist, j.RightElbow, j.RightForce
	}

	if force.Len() < degenerateTol {
		return ArmKinematics{}, fmt.Errorf("anatomy: %s hand force direction has zero length", side)
	}

	sign := side.LateralSign()
	mirror := func(v mathutil.Vec3) mathutil.Vec3 {
		v[AxisLateral] *= sign
		return v
	}

	return ArmKinematics{
		Side:  side,
		Hand:  mirror(f.Project(hand.Sub(shoulder))),
		Wrist: mirror(f.Project(wrist.Sub(shoulder))),
		Elbow: mirror(f.Project(elbow.Sub(shoulder))),
		Force: mirror(f.Project(force.Normalize())),
	}, nil
}
