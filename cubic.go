package spline

import (
	"iter"
	"math"
	"sort"

	"github.com/ungerik/go3d/float64/mat4"
)

var _ ParametricCurve = CubicBez{}
var _ Extremer = CubicBez{}

// CubicBez is a cubic Bézier segment. P0 and P3 lie on the curve, P1 and P2
// are the handles that shape it.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

func (c CubicBez) BoundingBox() Box {
	return BoundingBox(c)
}

// Eval evaluates the cubic Bernstein blend
// (1−t)³ p0 + 3(1−t)²t p1 + 3(1−t)t² p2 + t³ p3. It doesn't clamp t.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec3(c.P0).Mul(mt * mt * mt)
	b := Vec3(c.P1).Mul(mt * mt * 3.0)
	cc := Vec3(c.P2).Mul(mt * 3.0)
	d := Vec3(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Deriv returns the first derivative
// 3(1−t)²(p1−p0) + 6(1−t)t(p2−p1) + 3t²(p3−p2). It doesn't clamp t.
func (c CubicBez) Deriv(t float64) Vec3 {
	return Vec3(c.Differentiate().Eval(t))
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec3(c.P0).Add(Vec3(c.P1).Mul(2.0)).Add(Vec3(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec3(c.P1).Add(Vec3(c.P2).Mul(2.0)).Add(Vec3(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

// SubdivideCurve subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) SubdivideCurve() (ParametricCurve, ParametricCurve) {
	return c.Subdivide()
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	d := c.Differentiate()
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(Vec3(d.Eval(t0)).Mul(scale))
	p2 := p3.Translate(Vec3(d.Eval(t1)).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

func (c CubicBez) SubsegmentCurve(t0, t1 float64) ParametricCurve {
	return c.Subsegment(t0, t1)
}

// Differentiate returns the derivative curve. Its points are to be
// interpreted as vectors.
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

func (c CubicBez) Extrema() ([MaxExtrema]float64, int) {
	// three calls to oneCoord, up to 2 roots per call, for a total of 6 possible values.
	var out [MaxExtrema]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		c := d0
		roots, n := SolveQuadratic(c, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	oneCoord(d0.Z, d1.Z, d2.Z)
	sort.Float64s(out[:outN])
	return out, outN
}

type CubicToQuadraticSegment struct {
	Start, End float64
	Segment    QuadBez
}

// Quadratics converts the cubic Bézier to quadratic Béziers.
//
// The iterator returns the start and end parameter in the cubic of each quadratic
// segment, along with the quadratic.
//
// Note that the resulting quadratic Béziers are not in general G1 continuous;
// they are optimized for minimizing distance error.
//
// This iterator will always produce at least one value.
func (c CubicBez) Quadratics(accuracy float64) iter.Seq[CubicToQuadraticSegment] {
	// The maximum error, as a vector from the cubic to the best approximating
	// quadratic, is proportional to the third derivative, which is constant
	// across the segment. Thus, the error scales down as the third power of
	// the number of subdivisions. Our strategy then is to subdivide t evenly.
	return func(yield func(CubicToQuadraticSegment) bool) {
		// This magic number is the square of 36 / sqrt(3).
		// See: https://web.archive.org/web/20210108052742/http://caffeineowl.com/graphics/2d/vectorial/cubic2quad01.html
		maxHypot2 := 432.0 * accuracy * accuracy
		p1x2 := Vec3(c.P1).Mul(3).Sub(Vec3(c.P0))
		p2x2 := Vec3(c.P2).Mul(3).Sub(Vec3(c.P3))
		err := p2x2.Sub(p1x2).Hypot2()
		n := max(int(math.Ceil(math.Sqrt(math.Cbrt(err/maxHypot2)))), 1)

		for i := range n {
			t0 := float64(i) / float64(n)
			t1 := float64(i+1) / float64(n)
			seg := c.Subsegment(t0, t1)
			p1x2 := Vec3(seg.P1).Mul(3).Sub(Vec3(seg.P0))
			p2x2 := Vec3(seg.P2).Mul(3).Sub(Vec3(seg.P3))
			result := QuadBez{seg.P0, Point(p1x2.Add(p2x2).Mul(1.0 / 4.0)), seg.P3}
			if !yield(CubicToQuadraticSegment{t0, t1, result}) {
				return
			}
		}
	}
}

// Nearest finds the nearest point, using subdivision into quadratics. It
// returns the squared distance and the parameter of the nearest point.
func (c CubicBez) Nearest(pt Point, accuracy float64) (distSq, t float64) {
	var bestR option[float64]
	bestT := 0.0
	for qq := range c.Quadratics(accuracy) {
		t0, t1, q := qq.Start, qq.End, qq.Segment
		qDistSq, qT := q.Nearest(pt, accuracy)
		if !bestR.isSet || qDistSq < bestR.value {
			bestT = t0 + qT*(t1-t0)
			bestR.set(qDistSq)
		}
	}
	return bestR.value, bestT
}

func (c CubicBez) Transform(m *mat4.T) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(m),
		P1: c.P1.Transform(m),
		P2: c.P2.Transform(m),
		P3: c.P3.Transform(m),
	}
}
