// Package spline provides editable 3D Bézier splines: chains of cubic Bézier
// segments whose joints constrain their handles, evaluated in world space
// through a transform.
//
// # Splines
//
// A [Spline] stores its control points as a flat sequence of anchors and
// handles. Every third point is an anchor that lies on the curve, and the two
// points between neighbouring anchors are the handles of the segment that
// connects them. Each anchor is a joint with a [TangentMode]:
//
//   - [Free] handles move independently.
//   - [Aligned] handles stay on a common line through the anchor.
//   - [Mirrored] handles are reflections of each other.
//
// Edits go through [Spline.SetControlPoint] and [Spline.SetControlPointMode],
// which move neighbouring points as needed to keep the modes intact. A
// spline can be closed with [Spline.SetLoop], after which its last anchor and
// the first one are kept identical.
//
// The spline is parametrized by a single t ∈ [0, 1] that is divided evenly
// among the segments, regardless of their lengths. [Spline.Eval],
// [Spline.Velocity] and [Spline.Direction] evaluate it in world space, as
// determined by [Spline.SetTransform].
//
// # Transforms
//
// Transforms are 4×4 matrices from [github.com/ungerik/go3d/float64/mat4].
// [Translation], [Scaling], [RotationX], [RotationY] and [RotationZ] construct
// the common ones and [Then] composes them. [Point.Transform] applies the full
// transform, [Vec3.TransformDir] only its linear part.
//
// # Bézier segments
//
// [CubicBez], [QuadBez] and [Line] are the building blocks. They can be
// evaluated, differentiated, subdivided and searched for their extrema and
// nearest points. [CubicPoint], [CubicDerivative], [QuadPoint] and
// [QuadDerivative] are the clamping, free-standing forms used by splines.
//
// # Walking
//
// [Walker] moves along a spline over time, either once, in a loop or back and
// forth, and reports its [Pose].
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [Curves and Splines] by Jasper Flick
//   - [How to solve a cubic equation, revisited] by Christoph Peters
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Curves and Splines]: https://catlikecoding.com/unity/tutorials/curves-and-splines/
// [How to solve a cubic equation, revisited]: https://momentsingraphics.de/CubicRoots.html
package spline
