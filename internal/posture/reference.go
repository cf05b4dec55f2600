package posture

import (
	"armff/internal/anatomy"
	"armff/internal/mathutil"
)

// Reference returns the published example posture: both hands forward of
// the shoulders pushing straight up against 50 N, evaluated at the 75th
// percentile. Useful as a demo input and as the compatibility fixture for
// the published outputs.
func Reference() Posture {
	return Posture{
		Name: "reference",
		Joints: anatomy.JointSet{
			LeftHand:      mathutil.Vec3{0.29034, 0.91934, 0.29134},
			LeftWrist:     mathutil.Vec3{0.26170, 0.96619, 0.23538},
			LeftElbow:     mathutil.Vec3{0.19100, 1.11068, 0.09171},
			LeftShoulder:  mathutil.Vec3{0.09191, 1.30461, -0.06136},
			RightHand:     mathutil.Vec3{-0.37368, 1.20097, 0.360862},
			RightWrist:    mathutil.Vec3{-0.36905, 1.20173, 0.28260},
			RightElbow:    mathutil.Vec3{-0.42676, 1.28636, 0.09280},
			RightShoulder: mathutil.Vec3{-0.21538, 1.32291, -0.06481},
			C7T1:          mathutil.Vec3{-0.06385, 1.35457, -0.06182},
			L5S1:          mathutil.Vec3{-0.06300, 0.95253, -0.07984},
			LeftForce:     mathutil.Vec3{0, 1, 0},
			RightForce:    mathutil.Vec3{0, 1, 0},
		},
		LeftLoad:       50,
		RightLoad:      50,
		PercentCapable: 75,
	}
}
