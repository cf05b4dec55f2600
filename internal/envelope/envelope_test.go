package envelope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"armff/internal/anatomy"
	"armff/internal/mathutil"
)

func armWith(handSuperior float64, force mathutil.Vec3) anatomy.ArmKinematics {
	return anatomy.ArmKinematics{
		Hand:  mathutil.Vec3{0.4, handSuperior, 0.2},
		Force: force,
	}
}

func TestClassifyHeightDeadband(t *testing.T) {
	force := mathutil.Vec3{0, 1, 0}

	tests := []struct {
		name string
		h    float64
		want int
	}{
		{"well below", -0.3, -1},
		{"just below band", -0.010000001, -1},
		{"lower band edge", -0.01, 0},
		{"level", 0, 0},
		{"upper band edge", 0.01, 0},
		{"just above band", 0.010000001, 1},
		{"well above", 0.3, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := Classify(armWith(tc.h, force))
			assert.Equal(t, tc.want, c.Height)
		})
	}
}

func TestClassifyForceSigns(t *testing.T) {
	t.Run("axis aligned force sets one code", func(t *testing.T) {
		c := Classify(armWith(0.2, mathutil.Vec3{0, -1, 0}))
		assert.Equal(t, Code{Height: 1, AntPost: 0, SupInf: -1, MedLat: 0}, c)
	})

	t.Run("oblique force sets all codes", func(t *testing.T) {
		c := Classify(armWith(-0.2, mathutil.Vec3{0.5, -0.3, -0.8}))
		assert.Equal(t, Code{Height: -1, AntPost: 1, SupInf: -1, MedLat: -1}, c)
	})

	t.Run("reference posture arms", func(t *testing.T) {
		left := anatomy.ArmKinematics{
			Hand:  mathutil.Vec3{0.36681770260735164, -0.35645475554446143, 0.22492111529067862},
			Force: mathutil.Vec3{-0.04480143370991666, 0.9972257844219977, -0.0594438089414446},
		}
		right := anatomy.ArmKinematics{
			Hand:  mathutil.Vec3{0.4328642699852991, -0.11153475397111795, 0.14599119018179246},
			Force: mathutil.Vec3{-0.04480143370991666, 0.9972257844219977, 0.0594438089414446},
		}
		assert.Equal(t, Code{Height: -1, AntPost: -1, SupInf: 1, MedLat: -1}, Classify(left))
		assert.Equal(t, Code{Height: -1, AntPost: -1, SupInf: 1, MedLat: 1}, Classify(right))
	})
}

func TestLookup(t *testing.T) {
	t.Run("reference codes", func(t *testing.T) {
		b, err := Lookup(Code{Height: -1, AntPost: -1, SupInf: 1, MedLat: -1})
		require.NoError(t, err)
		assert.Equal(t, Bounds{Min: 51.3, Max: 223.2}, b)

		b, err = Lookup(Code{Height: -1, AntPost: -1, SupInf: 1, MedLat: 1})
		require.NoError(t, err)
		assert.Equal(t, Bounds{Min: 49.9, Max: 223.2}, b)
	})

	t.Run("no observed data", func(t *testing.T) {
		// A zero force direction never happens for a unit vector; the table
		// carries sentinels there at every height.
		for _, ht := range []int{-1, 0, 1} {
			_, err := Lookup(Code{Height: ht})
			assert.ErrorIs(t, err, ErrNoObservedData)
		}
	})

	t.Run("all observable codes have sane bounds", func(t *testing.T) {
		for ht := -1; ht <= 1; ht++ {
			for ap := -1; ap <= 1; ap++ {
				for si := -1; si <= 1; si++ {
					for ml := -1; ml <= 1; ml++ {
						c := Code{Height: ht, AntPost: ap, SupInf: si, MedLat: ml}
						if ap == 0 && si == 0 && ml == 0 {
							continue
						}
						b, err := Lookup(c)
						require.NoError(t, err, "code %s", c)
						assert.Greater(t, b.Min, 0.0, "code %s", c)
						assert.GreaterOrEqual(t, b.Max, b.Min, "code %s", c)
					}
				}
			}
		}
	})
}

func TestClamp(t *testing.T) {
	b := Bounds{Min: 51.3, Max: 223.2}

	assert.Equal(t, 51.3, b.Clamp(12.0))
	assert.Equal(t, 223.2, b.Clamp(500.0))
	assert.Equal(t, 106.8, b.Clamp(106.8))

	// Idempotent.
	assert.Equal(t, b.Clamp(500.0), b.Clamp(b.Clamp(500.0)))
}
