// Package anatomy builds the shoulder axis system from raw joint landmarks
// and expresses per-arm kinematics in it.
//
// The global frame convention is +x lateral-left, +y superior, +z anterior.
// The shoulder axis system (SAS) is row-ordered [anterior; superior;
// lateral], so projected components index as anterior=0, superior=1,
// lateral=2. Downstream dot products assume that row order.
package anatomy

import (
	"errors"
	"fmt"

	"armff/internal/mathutil"
)

// Frame component indices.
const (
	AxisAnterior = 0
	AxisSuperior = 1
	AxisLateral  = 2
)

// ErrDegenerateFrame is returned when the landmarks cannot define an
// anatomical frame (coincident shoulders or spine points).
var ErrDegenerateFrame = errors.New("anatomy: degenerate frame geometry")

// If a landmark difference vector has a length below this, the frame is
// considered undefined rather than noisy.
const degenerateTol = 1e-9

// JointSet holds the raw landmark coordinates and force directions of one
// evaluation, all in the global frame. Force vectors need not be unit
// length; they are normalized before projection.
type JointSet struct {
	LeftHand      mathutil.Vec3 `json:"left_hand"`
	LeftWrist     mathutil.Vec3 `json:"left_wrist"`
	LeftElbow     mathutil.Vec3 `json:"left_elbow"`
	LeftShoulder  mathutil.Vec3 `json:"left_shoulder"`
	RightHand     mathutil.Vec3 `json:"right_hand"`
	RightWrist    mathutil.Vec3 `json:"right_wrist"`
	RightElbow    mathutil.Vec3 `json:"right_elbow"`
	RightShoulder mathutil.Vec3 `json:"right_shoulder"`
	C7T1          mathutil.Vec3 `json:"c7t1"`
	L5S1          mathutil.Vec3 `json:"l5s1"`
	LeftForce     mathutil.Vec3 `json:"left_force"`
	RightForce    mathutil.Vec3 `json:"right_force"`
}

// Frame is the orthonormal shoulder axis system. Rows of the projection
// matrix are the anterior, superior and lateral unit axes in global
// coordinates.
type Frame struct {
	m mathutil.Mat3
}

// BuildFrame constructs the shoulder axis system from the shoulder-width
// and trunk vectors:
//
//	lateral  = unit(rightShoulder − leftShoulder)
//	anterior = unit(trunk × lateral),  trunk = unit(C7T1 − L5S1)
//	superior = lateral × anterior
func BuildFrame(j JointSet) (Frame, error) {
	shoulder := j.RightShoulder.Sub(j.LeftShoulder)
	if shoulder.Len() < degenerateTol {
		return Frame{}, fmt.Errorf("%w: shoulders coincide", ErrDegenerateFrame)
	}
	lateral := shoulder.Normalize()

	spine := j.C7T1.Sub(j.L5S1)
	if spine.Len() < degenerateTol {
		return Frame{}, fmt.Errorf("%w: spine landmarks coincide", ErrDegenerateFrame)
	}
	trunk := spine.Normalize()

	anteriorRaw := trunk.Cross(lateral)
	if anteriorRaw.Len() < degenerateTol {
		return Frame{}, fmt.Errorf("%w: trunk parallel to shoulder line", ErrDegenerateFrame)
	}
	anterior := anteriorRaw.Normalize()

	// Unit length already: cross of two orthonormal vectors.
	superior := lateral.Cross(anterior)

	return Frame{m: mathutil.Mat3FromRows(anterior, superior, lateral)}, nil
}

// Anterior returns the anterior unit axis in global coordinates.
func (f Frame) Anterior() mathutil.Vec3 { return f.m.Row(AxisAnterior) }

// Superior returns the superior unit axis in global coordinates.
func (f Frame) Superior() mathutil.Vec3 { return f.m.Row(AxisSuperior) }

// Lateral returns the lateral unit axis in global coordinates.
func (f Frame) Lateral() mathutil.Vec3 { return f.m.Row(AxisLateral) }

// Project expresses a global vector in frame coordinates
// [anterior, superior, lateral].
func (f Frame) Project(v mathutil.Vec3) mathutil.Vec3 {
	return f.m.MulVec3(v)
}

// Unproject maps a frame-coordinate vector back to the global frame. The
// frame is orthonormal, so the inverse is the transpose.
func (f Frame) Unproject(v mathutil.Vec3) mathutil.Vec3 {
	return f.m.Transpose().MulVec3(v)
}

// GravityDirection is the global gravity unit vector (straight down).
var GravityDirection = mathutil.Vec3{0, -1, 0}

// Gravity returns the gravity direction in frame coordinates. It is shared
// by both arms; the left arm's lateral mirroring is never applied to it,
// matching the published model.
func (f Frame) Gravity() mathutil.Vec3 {
	return f.Project(GravityDirection)
}
