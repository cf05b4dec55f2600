// Package ann derives the geometric feature vector for one arm and runs the
// fixed feed-forward network that estimates zero-gravity arm strength.
package ann

import (
	"math"

	"armff/internal/anatomy"
)

// InputCount is the length of the network's feature vector.
const InputCount = 18

// Features derives the network inputs from one arm's frame-coordinate hand
// position and force direction. The layout is architecture-specific and
// must match the trained weights exactly:
//
//	0..2   hand position (superior, anterior, lateral)
//	3..5   2D projections of the hand position, each omitting one axis
//	6..8   force direction cosines (superior, anterior, lateral)
//	9..11  3D moment arm (position × force)
//	12..14 moment arm resultant, squared, cubed
//	15..17 products of each 2D projection with the matching force cosine
func Features(arm anatomy.ArmKinematics) [InputCount]float64 {
	var v [InputCount]float64

	v[0] = arm.Hand[anatomy.AxisSuperior]
	v[1] = arm.Hand[anatomy.AxisAnterior]
	v[2] = arm.Hand[anatomy.AxisLateral]

	v[3] = math.Sqrt(v[1]*v[1] + v[2]*v[2])
	v[4] = math.Sqrt(v[0]*v[0] + v[2]*v[2])
	v[5] = math.Sqrt(v[0]*v[0] + v[1]*v[1])

	v[6] = arm.Force[anatomy.AxisSuperior]
	v[7] = arm.Force[anatomy.AxisAnterior]
	v[8] = arm.Force[anatomy.AxisLateral]

	v[9] = v[1]*v[8] - v[2]*v[7]
	v[10] = v[2]*v[6] - v[0]*v[8]
	v[11] = v[0]*v[7] - v[1]*v[6]

	v[12] = math.Sqrt(v[9]*v[9] + v[10]*v[10] + v[11]*v[11])
	v[13] = v[12] * v[12]
	v[14] = v[12] * v[12] * v[12]

	v[15] = v[3] * v[6]
	v[16] = v[4] * v[7]
	v[17] = v[5] * v[8]

	return v
}
