package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, 2)

	assert.Equal(t, Pt(4, 6), p.Add(q))
	assert.Equal(t, Pt(2, 2), p.Sub(q))
	assert.Equal(t, Pt(6, 8), p.Mul(2))
	assert.Equal(t, 11.0, p.Dot(q))
	assert.Equal(t, 5.0, p.Length())
	assert.Equal(t, 25.0, p.LengthSquared())
}

func TestPointDistance(t *testing.T) {
	assert.Equal(t, 5.0, Pt(0, 0).Distance(Pt(3, 4)))
	assert.Equal(t, 0.0, Pt(2, 2).Distance(Pt(2, 2)))
}

func TestPointRotate(t *testing.T) {
	r := Pt(1, 0).Rotate(math.Pi / 2)
	assert.InDelta(t, 0, r.X, 1e-12)
	assert.InDelta(t, 1, r.Y, 1e-12)

	r = Pt(1, 0).Rotate(math.Pi)
	assert.InDelta(t, -1, r.X, 1e-12)
	assert.InDelta(t, 0, r.Y, 1e-12)

	// Rotating by an angle then its negation is the identity.
	r = Pt(3, 7).Rotate(1.1).Rotate(-1.1)
	assert.InDelta(t, 3, r.X, 1e-12)
	assert.InDelta(t, 7, r.Y, 1e-12)
}

func TestPointLerp(t *testing.T) {
	p := Pt(0, 0)
	q := Pt(10, 20)

	assert.Equal(t, p, p.Lerp(q, 0))
	assert.Equal(t, q, p.Lerp(q, 1))
	assert.Equal(t, Pt(5, 10), p.Lerp(q, 0.5))
}
