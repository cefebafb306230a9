package spline

import (
	"math"

	"github.com/ungerik/go3d/float64/mat4"
)

// Box is an axis-aligned box in 3D space, spanning from (X0, Y0, Z0) to
// (X1, Y1, Z1).
type Box struct {
	X0, Y0, Z0 float64
	X1, Y1, Z1 float64
}

// NewBoxFromPoints returns a box with the extents of p0 and p1, ensuring that
// width, height and depth are non-negative.
func NewBoxFromPoints(p0, p1 Point) Box {
	return Box{p0.X, p0.Y, p0.Z, p1.X, p1.Y, p1.Z}.Abs()
}

// Abs returns a new box with the same extents as b, but ensuring that width,
// height and depth are non-negative.
func (b Box) Abs() Box {
	return Box{
		X0: min(b.X0, b.X1),
		Y0: min(b.Y0, b.Y1),
		Z0: min(b.Z0, b.Z1),
		X1: max(b.X0, b.X1),
		Y1: max(b.Y0, b.Y1),
		Z1: max(b.Z0, b.Z1),
	}
}

// Min returns the corner with the smallest coordinates.
func (b Box) Min() Point { return Point{b.X0, b.Y0, b.Z0} }

// Max returns the corner with the largest coordinates.
func (b Box) Max() Point { return Point{b.X1, b.Y1, b.Z1} }

// Width returns the box's extent along x, defined as X1 − X0. It may be negative.
func (b Box) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the box's extent along y, defined as Y1 − Y0. It may be negative.
func (b Box) Height() float64 {
	return b.Y1 - b.Y0
}

// Depth returns the box's extent along z, defined as Z1 − Z0. It may be negative.
func (b Box) Depth() float64 {
	return b.Z1 - b.Z0
}

// Size returns the box's extents as a vector.
func (b Box) Size() Vec3 {
	return Vec3{b.Width(), b.Height(), b.Depth()}
}

func (b Box) Center() Point {
	return Point{
		X: 0.5 * (b.X0 + b.X1),
		Y: 0.5 * (b.Y0 + b.Y1),
		Z: 0.5 * (b.Z0 + b.Z1),
	}
}

// Contains reports whether pt lies inside the box. Unlike the half-open
// convention used for pixel rectangles, the far faces are inclusive, so that
// the bounding box of a curve contains the curve's end points.
func (b Box) Contains(pt Point) bool {
	return pt.X >= b.X0 && pt.X <= b.X1 &&
		pt.Y >= b.Y0 && pt.Y <= b.Y1 &&
		pt.Z >= b.Z0 && pt.Z <= b.Z1
}

// Union returns the smallest box enclosing b and o.
//
// Results are valid only if extents are non-negative.
func (b Box) Union(o Box) Box {
	return Box{
		X0: min(b.X0, o.X0),
		Y0: min(b.Y0, o.Y0),
		Z0: min(b.Z0, o.Z0),
		X1: max(b.X1, o.X1),
		Y1: max(b.Y1, o.Y1),
		Z1: max(b.Z1, o.Z1),
	}
}

// UnionPoint computes the union with one point.
//
// This method includes the surface of zero-volume boxes. Thus, a succession
// of UnionPoint operations on a series of points yields their enclosing box.
func (b Box) UnionPoint(pt Point) Box {
	return Box{
		X0: min(b.X0, pt.X),
		Y0: min(b.Y0, pt.Y),
		Z0: min(b.Z0, pt.Z),
		X1: max(b.X1, pt.X),
		Y1: max(b.Y1, pt.Y),
		Z1: max(b.Z1, pt.Z),
	}
}

// Inflate expands a box by a constant amount in all directions.
func (b Box) Inflate(width, height, depth float64) Box {
	return Box{
		X0: b.X0 - width,
		Y0: b.Y0 - height,
		Z0: b.Z0 - depth,
		X1: b.X1 + width,
		Y1: b.Y1 + height,
		Z1: b.Z1 + depth,
	}
}

func (b Box) Translate(v Vec3) Box {
	return Box{
		X0: b.X0 + v.X,
		Y0: b.Y0 + v.Y,
		Z0: b.Z0 + v.Z,
		X1: b.X1 + v.X,
		Y1: b.Y1 + v.Y,
		Z1: b.Z1 + v.Z,
	}
}

// TransformBoundingBox returns the smallest box enclosing the eight
// transformed corners of b.
func (b Box) TransformBoundingBox(m *mat4.T) Box {
	out := NewBoxFromPoints(b.Min().Transform(m), b.Max().Transform(m))
	for _, c := range [...]Point{
		{b.X1, b.Y0, b.Z0},
		{b.X0, b.Y1, b.Z0},
		{b.X1, b.Y1, b.Z0},
		{b.X0, b.Y0, b.Z1},
		{b.X1, b.Y0, b.Z1},
		{b.X0, b.Y1, b.Z1},
	} {
		out = out.UnionPoint(c.Transform(m))
	}
	return out
}

func (b Box) IsInf() bool {
	return math.IsInf(b.X0, 0) || math.IsInf(b.Y0, 0) || math.IsInf(b.Z0, 0) ||
		math.IsInf(b.X1, 0) || math.IsInf(b.Y1, 0) || math.IsInf(b.Z1, 0)
}

func (b Box) IsNaN() bool {
	return math.IsNaN(b.X0) || math.IsNaN(b.Y0) || math.IsNaN(b.Z0) ||
		math.IsNaN(b.X1) || math.IsNaN(b.Y1) || math.IsNaN(b.Z1)
}
