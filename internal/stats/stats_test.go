package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistributionMoments(t *testing.T) {
	d := NewDistribution(100, 0.277)
	assert.Equal(t, 100.0, d.Mean())
	assert.InDelta(t, 27.7, d.StdDev(), 1e-12)
}

func TestStrengthAt(t *testing.T) {
	d := NewDistribution(100, 0.277)

	t.Run("median equals mean", func(t *testing.T) {
		assert.InDelta(t, 100.0, d.StrengthAt(50), 1e-9)
	})

	t.Run("monotone decreasing in percentile", func(t *testing.T) {
		s25 := d.StrengthAt(25)
		s50 := d.StrengthAt(50)
		s75 := d.StrengthAt(75)
		s99 := d.StrengthAt(99)
		assert.Greater(t, s25, s50)
		assert.Greater(t, s50, s75)
		assert.Greater(t, s75, s99)
	})

	t.Run("published reference percentile", func(t *testing.T) {
		// Bounded left-arm estimate of the example posture at pc=75.
		d := NewDistribution(106.77810727814341, 0.277)
		assert.InDelta(t, 86.82836260161204, d.StrengthAt(75), 1e-6)
	})
}

func TestPercentCapableInversion(t *testing.T) {
	d := NewDistribution(86.4, 0.277)

	for _, pc := range []float64{5, 25, 50, 75, 95} {
		s := d.StrengthAt(pc)
		assert.InDelta(t, pc, d.PercentCapable(s), 1e-9, "pc=%v", pc)
	}
}

func TestPercentCapableBounds(t *testing.T) {
	d := NewDistribution(100, 0.277)

	assert.InDelta(t, 50.0, d.PercentCapable(100), 1e-9)
	assert.Greater(t, d.PercentCapable(0), 99.0)
	assert.Less(t, d.PercentCapable(1000), 1e-6)
}
