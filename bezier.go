package spline

// QuadPoint returns the point at parameter t on the quadratic Bézier defined
// by p0, p1 and p2. t is clamped to [0, 1].
func QuadPoint(p0, p1, p2 Point, t float64) Point {
	return QuadBez{p0, p1, p2}.Eval(clamp01(t))
}

// QuadDerivative returns the first derivative (the velocity) at parameter t
// of the quadratic Bézier defined by p0, p1 and p2. Like the other functions
// in this file, it clamps t to [0, 1].
func QuadDerivative(p0, p1, p2 Point, t float64) Vec3 {
	return QuadBez{p0, p1, p2}.Deriv(clamp01(t))
}

// CubicPoint returns the point at parameter t on the cubic Bézier defined by
// p0 through p3. t is clamped to [0, 1].
func CubicPoint(p0, p1, p2, p3 Point, t float64) Point {
	return CubicBez{p0, p1, p2, p3}.Eval(clamp01(t))
}

// CubicDerivative returns the first derivative at parameter t of the cubic
// Bézier defined by p0 through p3. t is clamped to [0, 1].
func CubicDerivative(p0, p1, p2, p3 Point, t float64) Vec3 {
	return CubicBez{p0, p1, p2, p3}.Deriv(clamp01(t))
}
