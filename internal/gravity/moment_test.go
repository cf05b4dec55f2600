package gravity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"armff/internal/anatomy"
	"armff/internal/anthro"
	"armff/internal/mathutil"
)

// Frame-coordinate left arm and gravity direction of the published example
// posture.
var (
	refGravityDir = mathutil.Vec3{0.04480143370991666, -0.9972257844219977, -0.0594438089414446}

	refLeftArm = anatomy.ArmKinematics{
		Side:  anatomy.Left,
		Hand:  mathutil.Vec3{0.36681770260735164, -0.35645475554446143, 0.22492111529067862},
		Wrist: mathutil.Vec3{0.30921794820799475, -0.31396962337232776, 0.1929214975203036},
		Elbow: mathutil.Vec3{0.16021422548653325, -0.18058642396809954, 0.11215187617763744},
		Force: mathutil.Vec3{-0.04480143370991666, 0.9972257844219977, -0.0594438089414446},
	}
)

func TestComputeReference(t *testing.T) {
	e, err := Compute(refLeftArm, refGravityDir, anthro.DefaultPopulation())
	require.NoError(t, err)

	assertVec := func(t *testing.T, want, got mathutil.Vec3) {
		t.Helper()
		for i := range want {
			assert.InDelta(t, want[i], got[i], 1e-9)
		}
	}

	t.Run("segment CoGs", func(t *testing.T) {
		assertVec(t, mathutil.Vec3{0.0698534023121285, -0.0787356808500914, 0.04889821801344992}, e.UpperArmCog)
		assertVec(t, mathutil.Vec3{0.2242858262567617, -0.23794119971191768, 0.14688281335498388}, e.ForearmCog)
		assertVec(t, mathutil.Vec3{0.35184176646351883, -0.34540862117970667, 0.21660121467038113}, e.HandCog)
	})

	t.Run("moments", func(t *testing.T) {
		assertVec(t, mathutil.Vec3{4.071056402726927, 0.5046086337122493, -5.397022545101928}, e.TotalMoment)
		assert.InDelta(t, 6.779084190341593, e.MomentResultant, 1e-9)
	})

	t.Run("force effect", func(t *testing.T) {
		assert.InDelta(t, 0.5587528324760421, e.Reach, 1e-9)
		assert.InDelta(t, 12.132527651450005, e.Resultant, 1e-9)
		assertVec(t, mathutil.Vec3{-5.800433882619705, -9.277215846377402, -5.2427531056001735}, e.ForceEffect)
		assert.InDelta(t, 1.0, e.AssistDir.Len(), 1e-12)
	})

	t.Run("assist along force", func(t *testing.T) {
		// Pushing up against gravity: the arm weight opposes the exertion.
		ga := e.AlongForce(refLeftArm)
		assert.InDelta(t, -8.679961881638489, ga, 1e-9)
		assert.Less(t, ga, 0.0)
	})
}

func TestComputeZeroMoment(t *testing.T) {
	// Arm hanging straight along gravity: every CoG is parallel to the
	// gravity direction, so the total moment vanishes and the force effect
	// must degrade to zero rather than divide by it.
	down := mathutil.Vec3{0, -1, 0}
	arm := anatomy.ArmKinematics{
		Side:  anatomy.Right,
		Hand:  mathutil.Vec3{0, -0.55, 0},
		Wrist: mathutil.Vec3{0, -0.45, 0},
		Elbow: mathutil.Vec3{0, -0.28, 0},
		Force: down,
	}

	e, err := Compute(arm, down, anthro.DefaultPopulation())
	require.NoError(t, err)

	assert.InDelta(t, 0.0, e.MomentResultant, 1e-12)
	assert.True(t, e.AssistDir.IsZero())
	assert.True(t, e.ForceEffect.IsZero())
	assert.Equal(t, 0.0, e.AlongForce(arm))
}

func TestComputeZeroReach(t *testing.T) {
	arm := anatomy.ArmKinematics{
		Side:  anatomy.Right,
		Hand:  mathutil.Vec3{},
		Wrist: mathutil.Vec3{0, -0.3, 0},
		Elbow: mathutil.Vec3{0, -0.28, 0},
		Force: mathutil.Vec3{0, 1, 0},
	}

	_, err := Compute(arm, mathutil.Vec3{0, -1, 0}, anthro.DefaultPopulation())
	assert.ErrorContains(t, err, "reach undefined")
}
