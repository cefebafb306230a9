package spline

import (
	"sort"

	"github.com/ungerik/go3d/float64/mat4"
)

var _ ParametricCurve = QuadBez{}
var _ Extremer = QuadBez{}

type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Raise raises the order by 1.
//
// Returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

func (q QuadBez) BoundingBox() Box {
	return BoundingBox(q)
}

// Eval evaluates the quadratic Bernstein blend
// (1−t)² p0 + 2(1−t)t p1 + t² p2. It doesn't clamp t.
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec3(q.P0).Mul(mt * mt)
	b := Vec3(q.P1).Mul(mt * 2.0)
	c := Vec3(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

// Deriv returns the first derivative 2(1−t)(p1−p0) + 2t(p2−p1). It doesn't
// clamp t.
func (q QuadBez) Deriv(t float64) Vec3 {
	return Vec3(q.Differentiate().Eval(t))
}

func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	pm := q.Eval(0.5)
	return QuadBez{q.P0, q.P0.Midpoint(q.P1), pm},
		QuadBez{pm, q.P1.Midpoint(q.P2), q.P2}
}

func (q QuadBez) SubdivideCurve() (ParametricCurve, ParametricCurve) {
	return q.Subdivide()
}

func (q QuadBez) Subsegment(t0 float64, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	p1 := p0.Translate(q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t0).Mul(t1 - t0))
	return QuadBez{p0, p1, p2}
}

func (q QuadBez) SubsegmentCurve(t0 float64, t1 float64) ParametricCurve {
	return q.Subsegment(t0, t1)
}

// Differentiate returns the derivative curve. Its points are to be
// interpreted as vectors.
func (q QuadBez) Differentiate() Line {
	return Line{
		Point(q.P1.Sub(q.P0).Mul(2)),
		Point(q.P2.Sub(q.P1).Mul(2)),
	}
}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}

func (q QuadBez) Extrema() ([MaxExtrema]float64, int) {
	// Finding the extrema of a quadratic bezier means finding the roots in the
	// quadratic's first derivative, which is a line. There is at most one
	// root per axis.
	var out [MaxExtrema]float64
	var outN int
	oneCoord := func(d0, d1 float64) {
		dd := d1 - d0
		if dd == 0 {
			return
		}
		t := -d0 / dd
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
		}
	}
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	oneCoord(d0.X, d1.X)
	oneCoord(d0.Y, d1.Y)
	oneCoord(d0.Z, d1.Z)
	sort.Float64s(out[:outN])
	return out, outN
}

// Nearest finds the nearest point on the curve to pt, using an analytical
// algorithm based on cubic root finding. It returns the squared distance and
// the parameter of the nearest point.
func (q QuadBez) Nearest(pt Point, accuracy float64) (distSq, outT float64) {
	var rBest option[float64]
	tBest := 0.0
	evalT := func(t float64, p Point) {
		r := p.Sub(pt).Hypot2()
		if !rBest.isSet || r < rBest.value {
			rBest.set(r)
			tBest = t
		}
	}

	d0 := q.P1.Sub(q.P0)
	d1 := Vec3(q.P0).Add(Vec3(q.P2)).Sub(Vec3(q.P1).Mul(2.0))
	d := q.P0.Sub(pt)
	c0 := d.Dot(d0)
	c1 := 2.0*d0.Hypot2() + d.Dot(d1)
	c2 := 3.0 * d1.Dot(d0)
	c3 := d1.Hypot2()
	roots, n := SolveCubic(c0, c1, c2, c3)
	needEnds := n == 0
	for _, t := range roots[:n] {
		if !(t >= 0.0 && t <= 1.0) {
			needEnds = true
			continue
		}
		evalT(t, q.Eval(t))
	}
	if needEnds {
		evalT(0.0, q.P0)
		evalT(1.0, q.P2)
	}

	return rBest.value, tBest
}

func (q QuadBez) Transform(m *mat4.T) QuadBez {
	return QuadBez{
		P0: q.P0.Transform(m),
		P1: q.P1.Transform(m),
		P2: q.P2.Transform(m),
	}
}
