package spline

import (
	"iter"

	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"
)

// Transforms are represented as go3d 4×4 matrices. Points are transformed
// with w = 1 and thus pick up the translation, vectors with w = 0.
//
// go3d matrices are column-major: m[3] holds the translation. The idea is
// that Then(a, b) applied to p is the same as b applied to (a applied to p).

// Identity is the identity transform.
var Identity = mat4.Ident

// Translation creates a transform representing translation by v.
func Translation(v Vec3) mat4.T {
	m := mat4.Ident
	t := v.Array()
	m.SetTranslation(&t)
	return m
}

// Scaling creates a transform representing non-uniform scaling.
func Scaling(x, y, z float64) mat4.T {
	m := mat4.Ident
	m.ScaleVec3(&vec3.T{x, y, z})
	return m
}

// RotationX creates a transform representing a rotation of th radians about
// the x axis. A positive angle rotates the positive y axis into positive z.
func RotationX(th float64) mat4.T {
	var m mat4.T
	m.AssignXRotation(th)
	return m
}

// RotationY creates a transform representing a rotation of th radians about
// the y axis.
func RotationY(th float64) mat4.T {
	var m mat4.T
	m.AssignYRotation(th)
	return m
}

// RotationZ creates a transform representing a rotation of th radians about
// the z axis. A positive angle rotates the positive x axis into positive y.
func RotationZ(th float64) mat4.T {
	var m mat4.T
	m.AssignZRotation(th)
	return m
}

// Then returns the transform that applies first, followed by next.
//
// Equivalent to "next * first".
func Then(first, next mat4.T) mat4.T {
	var out mat4.T
	out.AssignMul(&next, &first)
	return out
}

// TransformDir applies the linear part of m to v, ignoring translation.
func (v Vec3) TransformDir(m *mat4.T) Vec3 {
	a := v.Array()
	return VecFromArray(m.MulVec3W(&a, 0))
}

// TransformSeq transforms every value of seq by m.
func TransformSeq[T interface{ Transform(*mat4.T) T }](seq iter.Seq[T], m *mat4.T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(m)) {
				break
			}
		}
	}
}
