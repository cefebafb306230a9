package spline

import (
	"math"
	"testing"
)

func TestCubicPoint(t *testing.T) {
	p0, p1, p2, p3 := Pt(1, 0, 0), Pt(2, 0, 0), Pt(3, 0, 0), Pt(4, 0, 0)
	const epsilon = 1e-12

	assertNear(t, CubicPoint(p0, p1, p2, p3, 0), p0, epsilon)
	assertNear(t, CubicPoint(p0, p1, p2, p3, 1), p3, epsilon)
	assertNear(t, CubicPoint(p0, p1, p2, p3, 0.5), Pt(2.5, 0, 0), epsilon)

	// Out of range parameters are clamped.
	assertNear(t, CubicPoint(p0, p1, p2, p3, -3), p0, epsilon)
	assertNear(t, CubicPoint(p0, p1, p2, p3, 3), p3, epsilon)
	assertNear(t, CubicPoint(p0, p1, p2, p3, math.NaN()), p0, epsilon)
}

func TestCubicDerivative(t *testing.T) {
	p0, p1, p2, p3 := Pt(0, 0, 0), Pt(1, 1, 0), Pt(2, 1, 1), Pt(3, 0, 1)
	const epsilon = 1e-12

	assertNearVec(t, CubicDerivative(p0, p1, p2, p3, 0), p1.Sub(p0).Mul(3), epsilon)
	assertNearVec(t, CubicDerivative(p0, p1, p2, p3, 1), p3.Sub(p2).Mul(3), epsilon)
	assertNearVec(t, CubicDerivative(p0, p1, p2, p3, -1), p1.Sub(p0).Mul(3), epsilon)
	assertNearVec(t, CubicDerivative(p0, p1, p2, p3, 2), p3.Sub(p2).Mul(3), epsilon)
}

func TestQuadPoint(t *testing.T) {
	p0, p1, p2 := Pt(0, 0, 0), Pt(1, 2, 0), Pt(2, 0, 2)
	const epsilon = 1e-12

	assertNear(t, QuadPoint(p0, p1, p2, 0), p0, epsilon)
	assertNear(t, QuadPoint(p0, p1, p2, 1), p2, epsilon)
	assertNear(t, QuadPoint(p0, p1, p2, 0.5), Pt(1, 1, 0.5), epsilon)
	assertNear(t, QuadPoint(p0, p1, p2, -1), p0, epsilon)
	assertNear(t, QuadPoint(p0, p1, p2, 2), p2, epsilon)
}

func TestQuadDerivative(t *testing.T) {
	p0, p1, p2 := Pt(0, 0, 0), Pt(1, 2, 0), Pt(2, 0, 2)
	const epsilon = 1e-12

	assertNearVec(t, QuadDerivative(p0, p1, p2, 0), Vec(2, 4, 0), epsilon)
	assertNearVec(t, QuadDerivative(p0, p1, p2, 1), Vec(2, -4, 4), epsilon)
	assertNearVec(t, QuadDerivative(p0, p1, p2, 0.5), Vec(2, 0, 2), epsilon)

	// The derivative clamps its parameter like the other functions do.
	assertNearVec(t, QuadDerivative(p0, p1, p2, -5), Vec(2, 4, 0), epsilon)
	assertNearVec(t, QuadDerivative(p0, p1, p2, 5), Vec(2, -4, 4), epsilon)
}
