package spline

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestVec3Products(t *testing.T) {
	if d := Vec(1, 2, 3).Dot(Vec(4, -5, 6)); d != 12 {
		t.Errorf("got dot product %v, want 12", d)
	}
	diff(t, Vec(1, 0, 0).Cross(Vec(0, 1, 0)), Vec(0, 0, 1))
	diff(t, Vec(0, 1, 0).Cross(Vec(1, 0, 0)), Vec(0, 0, -1))

	// Agree with go3d.
	a, b := Vec(1, 2, 3), Vec(-2, 0.5, 4)
	aa, bb := a.Array(), b.Array()
	diff(t, VecFromArray(vec3.Cross(&aa, &bb)), a.Cross(b))
	if got, want := a.Dot(b), vec3.Dot(&aa, &bb); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestVec3Hypot(t *testing.T) {
	v := Vec(2, 3, 6)
	if h := v.Hypot(); h != 7 {
		t.Errorf("got %v, want 7", h)
	}
	if h := v.Hypot2(); h != 49 {
		t.Errorf("got %v, want 49", h)
	}
}

func TestVec3Normalize(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, Vec(0, 3, 4).Normalize(), Vec(0, 0.6, 0.8), approx)
	diff(t, Vec(0, 3, 4).NormalizeOrZero(), Vec(0, 0.6, 0.8), approx)

	if !Vec(0, 0, 0).Normalize().IsNaN() {
		t.Error("normalizing the zero vector should produce NaN")
	}
	for _, v := range []Vec3{
		Vec(0, 0, 0),
		Vec(math.Inf(1), 0, 0),
		Vec(0, math.NaN(), 0),
	} {
		if got := v.NormalizeOrZero(); !got.IsZero() {
			t.Errorf("NormalizeOrZero(%s) = %s, want zero vector", v, got)
		}
	}
}

func TestVec3Arithmetic(t *testing.T) {
	v := Vec(1, 2, 3)
	diff(t, v.Add(Vec(1, 1, 1)), Vec(2, 3, 4))
	diff(t, v.Sub(Vec(1, 1, 1)), Vec(0, 1, 2))
	diff(t, v.Mul(2), Vec(2, 4, 6))
	diff(t, v.Div(2), Vec(0.5, 1, 1.5))
	diff(t, v.Negate(), Vec(-1, -2, -3))
	diff(t, v.Lerp(Vec(3, 4, 5), 0.5), Vec(2, 3, 4))
}
