package polymouse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tphakala/go-polymouse/internal/testutil"
)

func TestVec2_Arithmetic(t *testing.T) {
	a, b := V2(3, 4), V2(1, -2)
	assert.Equal(t, V2(4, 2), a.Add(b))
	assert.Equal(t, V2(2, 6), a.Sub(b))
	assert.Equal(t, V2(6, 8), a.Scale(2))
	assert.InDelta(t, 5.0, a.Len(), 1e-6)
	assert.InDelta(t, 5.0, V2(4, 6).Dist(V2(1, 2)), 1e-6)
}

func TestVec2_Unit(t *testing.T) {
	u := V2(0, -7).Unit()
	testutil.AssertPointInDelta(t, 0, -1, u.X, u.Y, 1e-7)

	u = V2(3, 4).Unit()
	testutil.AssertPointInDelta(t, 0.6, 0.8, u.X, u.Y, 1e-6)

	assert.Equal(t, Vec2{}, Vec2{}.Unit(), "zero vector has no direction")
}

func TestVec2_Trunc(t *testing.T) {
	assert.Equal(t, IntVec2{X: 1, Y: -1}, V2(1.9, -1.7).Trunc())
	assert.Equal(t, IntVec2{}, V2(0.99, -0.99).Trunc())
}

func TestIntVec2(t *testing.T) {
	p := IntVec2{X: 10, Y: -5}
	assert.Equal(t, IntVec2{X: 11, Y: -3}, p.Add(IntVec2{X: 1, Y: 2}))
	assert.Equal(t, V2(10, -5), p.Float())
}
