package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	z := Vec3{0, 0, 1}

	assert.Equal(t, z, x.Cross(y))
	assert.Equal(t, x, y.Cross(z))
	assert.Equal(t, y, z.Cross(x))
	assert.Equal(t, Vec3{0, 0, -1}, y.Cross(x))
}

func TestVec3Normalize(t *testing.T) {
	t.Run("unit length", func(t *testing.T) {
		v := Vec3{3, 4, 12}.Normalize()
		assert.InDelta(t, 1.0, v.Len(), 1e-12)
	})

	t.Run("zero vector stays zero", func(t *testing.T) {
		v := Vec3{}.Normalize()
		assert.True(t, v.IsZero())
	})
}

func TestMat3MulVec3(t *testing.T) {
	m := Mat3FromRows(Vec3{1, 2, 3}, Vec3{4, 5, 6}, Vec3{7, 8, 9})
	got := m.MulVec3(Vec3{1, 0, -1})
	assert.Equal(t, Vec3{-2, -2, -2}, got)
}

func TestMat3Transpose(t *testing.T) {
	m := Mat3FromRows(Vec3{1, 2, 3}, Vec3{4, 5, 6}, Vec3{7, 8, 10})
	mt := m.Transpose()
	assert.Equal(t, Vec3{1, 4, 7}, mt.Row(0))
	assert.Equal(t, m, mt.Transpose())
	assert.InDelta(t, m.Det(), mt.Det(), 1e-12)
}
