package ann

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateReference(t *testing.T) {
	n := Default()
	require.NotNil(t, n)

	t.Run("left", func(t *testing.T) {
		got := n.Estimate(Features(referenceLeftArm()))
		assert.InDelta(t, 106.77810727814341, got, 1e-9)
	})

	t.Run("right", func(t *testing.T) {
		got := n.Estimate(Features(referenceRightArm()))
		assert.InDelta(t, 95.56843725287573, got, 1e-9)
	})
}

func TestEstimateContinuity(t *testing.T) {
	n := Default()
	feat := Features(referenceLeftArm())
	base := n.Estimate(feat)

	// A tiny input perturbation must not jump the estimate: tanh layers are
	// smooth and the affine maps are fixed.
	feat[0] += 1e-9
	assert.InDelta(t, base, n.Estimate(feat), 1e-5)
}

func TestEstimateDeterministic(t *testing.T) {
	n := Default()
	feat := Features(referenceRightArm())
	assert.Equal(t, n.Estimate(feat), n.Estimate(feat))
}
