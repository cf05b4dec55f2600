// Package envelope clamps the raw network estimate to the min/max strength
// range observed for the posture-height and force-direction class of the
// evaluation.
package envelope

import (
	"errors"
	"fmt"

	"armff/internal/anatomy"
)

// tableSize is 3^4: four code dimensions, each in {-1, 0, 1}.
const tableSize = 81

// heightBand is the deadband (m) around shoulder height inside which the
// hand codes as level with the shoulder.
const heightBand = 0.01

// ErrNoObservedData marks a posture/force class with no empirical bounds.
// The tables carry a 9999/−9999 sentinel there; clamping into that inverted
// range would be nonsense, so lookups report it instead.
var ErrNoObservedData = errors.New("envelope: no observed strength data for code")

// Code is the discrete posture/force classification: hand height relative
// to the shoulder and the sign of each force component, each in {-1, 0, 1}.
type Code struct {
	Height  int
	AntPost int
	SupInf  int
	MedLat  int
}

func (c Code) String() string {
	return fmt.Sprintf("{ht:%+d ap:%+d si:%+d ml:%+d}", c.Height, c.AntPost, c.SupInf, c.MedLat)
}

// Classify derives the envelope code for one projected arm. The height code
// uses the deadband; force components code as the exact sign, zero staying
// zero.
func Classify(arm anatomy.ArmKinematics) Code {
	var c Code

	switch h := arm.Hand[anatomy.AxisSuperior]; {
	case h < -heightBand:
		c.Height = -1
	case h > heightBand:
		c.Height = 1
	}

	c.AntPost = sign(arm.Force[anatomy.AxisAnterior])
	c.SupInf = sign(arm.Force[anatomy.AxisSuperior])
	c.MedLat = sign(arm.Force[anatomy.AxisLateral])

	return c
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// Bounds is an observed [Min, Max] strength range in newtons.
type Bounds struct {
	Min float64
	Max float64
}

// Clamp bounds a raw estimate into the observed range.
func (b Bounds) Clamp(x float64) float64 {
	if x < b.Min {
		return b.Min
	}
	if x > b.Max {
		return b.Max
	}
	return x
}

// Lookup returns the observed bounds for a code, or ErrNoObservedData for
// sentinel entries.
func Lookup(c Code) (Bounds, error) {
	i := (c.Height+1)*27 + (c.AntPost+1)*9 + (c.SupInf+1)*3 + (c.MedLat + 1)
	b := Bounds{Min: minTable[i], Max: maxTable[i]}
	if b.Min > b.Max {
		return b, fmt.Errorf("%w %s", ErrNoObservedData, c)
	}
	return b, nil
}
