package spline

import (
	"fmt"
	"iter"
	"slices"

	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"
)

// Spline is a sequence of cubic Bézier segments joined end to end.
//
// Its control points are stored as [P₀, H, H, P₁, H, H, P₂, ...], where the
// points at indices divisible by three are anchors that lie on the curve and
// the points in between are handles. Segment i uses points 3i through 3i+3,
// so neighbouring segments share their anchor. There are always 3k+1 points
// for k ≥ 1 segments.
//
// Every anchor is a joint with a [TangentMode] that constrains its two
// handles. Changing a point through [Spline.SetControlPoint] moves the
// neighbouring points so that the modes keep holding.
//
// A looping spline identifies its last anchor and mode with its first.
//
// Control points live in the spline's local space. The evaluation methods
// apply the spline's transform, see [Spline.SetTransform].
//
// A Spline is not safe for concurrent use. Callers that share one between
// goroutines must serialize access to it.
type Spline struct {
	points    []Point
	modes     []TangentMode
	loop      bool
	transform mat4.T
}

// NewSpline returns a spline with a single straight segment from (1, 0, 0) to
// (4, 0, 0) and free joints.
func NewSpline() *Spline {
	s := &Spline{}
	s.Reset()
	return s
}

// NewSplineFrom returns a spline using copies of points and modes. It
// returns an error matching [ErrInvalidStructure] if they don't describe a
// spline, and one matching [ErrInvalidMode] for unknown modes.
func NewSplineFrom(points []Point, modes []TangentMode, loop bool) (*Spline, error) {
	n := len(points)
	if n < 4 || (n-1)%3 != 0 {
		return nil, fmt.Errorf("%d control points, want 3k+1 with k ≥ 1: %w", n, ErrInvalidStructure)
	}
	if want := (n-1)/3 + 1; len(modes) != want {
		return nil, fmt.Errorf("%d modes for %d control points, want %d: %w", len(modes), n, want, ErrInvalidStructure)
	}
	for i, pt := range points {
		if pt.IsNaN() || pt.IsInf() {
			return nil, fmt.Errorf("control point %d is %s: %w", i, pt, ErrInvalidStructure)
		}
	}
	for i, m := range modes {
		if !m.Valid() {
			return nil, fmt.Errorf("mode %d: %w", i, invalidModeError(m))
		}
	}
	if loop {
		if points[0] != points[n-1] {
			return nil, fmt.Errorf("looping spline starts at %s but ends at %s: %w", points[0], points[n-1], ErrInvalidStructure)
		}
		if modes[0] != modes[len(modes)-1] {
			return nil, fmt.Errorf("looping spline has first mode %s but last mode %s: %w", modes[0], modes[len(modes)-1], ErrInvalidStructure)
		}
	}
	return &Spline{
		points:    slices.Clone(points),
		modes:     slices.Clone(modes),
		loop:      loop,
		transform: mat4.Ident,
	}, nil
}

// Reset restores the configuration of [NewSpline]. The transform is reset to
// the identity.
func (s *Spline) Reset() {
	s.points = []Point{
		{1, 0, 0},
		{2, 0, 0},
		{3, 0, 0},
		{4, 0, 0},
	}
	s.modes = []TangentMode{Free, Free}
	s.loop = false
	s.transform = mat4.Ident
}

// Clone returns a deep copy of the spline. It is suitable as an undo
// snapshot.
func (s *Spline) Clone() *Spline {
	return &Spline{
		points:    slices.Clone(s.points),
		modes:     slices.Clone(s.modes),
		loop:      s.loop,
		transform: s.transform,
	}
}

// CurveCount returns the number of cubic segments.
func (s *Spline) CurveCount() int {
	return (len(s.points) - 1) / 3
}

// ControlPointCount returns the number of control points, which is always
// 3*CurveCount()+1.
func (s *Spline) ControlPointCount() int {
	return len(s.points)
}

// ControlPoints returns a copy of the control points, in local space.
func (s *Spline) ControlPoints() []Point {
	return slices.Clone(s.points)
}

// Modes returns a copy of the joint modes. Mode i governs control point 3i.
func (s *Spline) Modes() []TangentMode {
	return slices.Clone(s.modes)
}

// Loop reports whether the spline is closed.
func (s *Spline) Loop() bool {
	return s.loop
}

// SetLoop opens or closes the spline. Closing it moves the last anchor onto
// the first and copies the first joint's mode to the last joint.
func (s *Spline) SetLoop(loop bool) {
	s.loop = loop
	if loop {
		s.modes[len(s.modes)-1] = s.modes[0]
		// Can't fail, index 0 always exists.
		_ = s.SetControlPoint(0, s.points[0])
	}
}

// Transform returns the local-to-world transform.
func (s *Spline) Transform() mat4.T {
	return s.transform
}

// SetTransform sets the local-to-world transform applied by [Spline.Eval],
// [Spline.Velocity], [Spline.Direction], [Spline.Samples],
// [Spline.BoundingBox] and [Spline.Nearest].
func (s *Spline) SetTransform(m mat4.T) {
	s.transform = m
}

// ControlPoint returns the control point at index, in local space.
func (s *Spline) ControlPoint(index int) (Point, error) {
	if err := checkIndex("ControlPoint", index, len(s.points)); err != nil {
		return Point{}, err
	}
	return s.points[index], nil
}

// SetControlPoint moves the control point at index to pt, in local space.
//
// Moving an anchor moves its handles along with it. The mode of the joint
// nearest to index is then enforced on the opposite handle.
func (s *Spline) SetControlPoint(index int, pt Point) error {
	if err := checkIndex("SetControlPoint", index, len(s.points)); err != nil {
		return err
	}
	n := len(s.points)
	if index%3 == 0 {
		delta := pt.Sub(s.points[index])
		switch {
		case s.loop && index == 0:
			s.points[1] = s.points[1].Translate(delta)
			s.points[n-2] = s.points[n-2].Translate(delta)
			s.points[n-1] = pt
		case s.loop && index == n-1:
			s.points[0] = pt
			s.points[1] = s.points[1].Translate(delta)
			s.points[index-1] = s.points[index-1].Translate(delta)
		default:
			if index > 0 {
				s.points[index-1] = s.points[index-1].Translate(delta)
			}
			if index+1 < n {
				s.points[index+1] = s.points[index+1].Translate(delta)
			}
		}
	}
	s.points[index] = pt
	s.enforceMode(index)
	return nil
}

// ControlPointMode returns the mode of the joint that governs the control
// point at index.
func (s *Spline) ControlPointMode(index int) (TangentMode, error) {
	if err := checkIndex("ControlPointMode", index, len(s.points)); err != nil {
		return 0, err
	}
	return s.modes[jointOf(index)], nil
}

// SetControlPointMode sets the mode of the joint that governs the control
// point at index and enforces it, treating the point at index as the handle
// that was last edited.
func (s *Spline) SetControlPointMode(index int, mode TangentMode) error {
	if err := checkIndex("SetControlPointMode", index, len(s.points)); err != nil {
		return err
	}
	if !mode.Valid() {
		return fmt.Errorf("SetControlPointMode: %w", invalidModeError(mode))
	}
	j := jointOf(index)
	s.modes[j] = mode
	if s.loop {
		last := len(s.modes) - 1
		if j == 0 {
			s.modes[last] = mode
		} else if j == last {
			s.modes[0] = mode
		}
	}
	s.enforceMode(index)
	return nil
}

// JointMode returns the mode of joint j, which sits at control point 3j.
// Valid joints are 0 through CurveCount().
func (s *Spline) JointMode(j int) (TangentMode, error) {
	if err := checkIndex("JointMode", j, len(s.modes)); err != nil {
		return 0, err
	}
	return s.modes[j], nil
}

// SetJointMode is like [Spline.SetControlPointMode] but addresses the joint
// directly.
func (s *Spline) SetJointMode(j int, mode TangentMode) error {
	if err := checkIndex("SetJointMode", j, len(s.modes)); err != nil {
		return err
	}
	return s.SetControlPointMode(j*3, mode)
}

// AddCurve appends a segment that continues from the last anchor in steps
// of one unit along the x axis. The new joint inherits the previous last
// joint's mode. A looping spline stays closed: the new last anchor is placed
// on the first one.
func (s *Spline) AddCurve() {
	pt := s.points[len(s.points)-1]
	for range 3 {
		pt.X += 1
		s.points = append(s.points, pt)
	}
	s.modes = append(s.modes, s.modes[len(s.modes)-1])
	s.enforceMode(len(s.points) - 4)

	if s.loop {
		s.points[len(s.points)-1] = s.points[0]
		s.modes[len(s.modes)-1] = s.modes[0]
		s.enforceMode(0)
	}
}

// jointOf returns the joint whose mode governs the control point at index.
func jointOf(index int) int {
	return (index + 1) / 3
}

// enforceMode restores the mode of the joint governing index. The handle on
// the same side of the anchor as index is kept and the opposite handle is
// moved.
func (s *Spline) enforceMode(index int) {
	j := jointOf(index)
	mode := s.modes[j]
	if mode == Free || !s.loop && (j == 0 || j == len(s.modes)-1) {
		return
	}

	n := len(s.points)
	anchor := j * 3
	var fixed, enforced int
	if index <= anchor {
		fixed = anchor - 1
		if fixed < 0 {
			fixed = n - 2
		}
		enforced = anchor + 1
		if enforced >= n {
			enforced = 1
		}
	} else {
		fixed = anchor + 1
		if fixed >= n {
			fixed = 1
		}
		enforced = anchor - 1
		if enforced < 0 {
			enforced = n - 2
		}
	}

	middle := s.points[anchor]
	tangent := middle.Sub(s.points[fixed])
	if mode == Aligned {
		if tangent.IsZero() {
			// The kept handle sits on the anchor and defines no direction.
			return
		}
		tangent = tangent.Normalize().Mul(middle.Distance(s.points[enforced]))
	}
	s.points[enforced] = middle.Translate(tangent)
}

// locate maps the global parameter t to a point offset and local parameter.
func (s *Spline) locate(t float64) (int, float64) {
	if t >= 1 {
		return len(s.points) - 4, 1
	}
	t = clamp01(t) * float64(s.CurveCount())
	i := int(t)
	t -= float64(i)
	return i * 3, t
}

func (s *Spline) segmentAt(i int) CubicBez {
	return CubicBez{s.points[i], s.points[i+1], s.points[i+2], s.points[i+3]}
}

// Eval returns the world-space point at global parameter t. The parameter
// range [0, 1] is divided evenly among the segments; values outside it are
// clamped.
func (s *Spline) Eval(t float64) Point {
	i, t := s.locate(t)
	p := CubicPoint(s.points[i], s.points[i+1], s.points[i+2], s.points[i+3], t)
	return p.Transform(&s.transform)
}

// Velocity returns the world-space derivative at global parameter t, with
// respect to the parameter of the segment that contains t.
func (s *Spline) Velocity(t float64) Vec3 {
	i, t := s.locate(t)
	d := CubicDerivative(s.points[i], s.points[i+1], s.points[i+2], s.points[i+3], t)
	// Transform the derivative as if it were a point, then remove the
	// translation again, leaving a displacement.
	origin := s.transform.MulVec3(&vec3.Zero)
	return Point(d).Transform(&s.transform).Sub(Point(VecFromArray(origin)))
}

// Direction returns the unit tangent at global parameter t. It returns the
// zero vector where the velocity vanishes.
func (s *Spline) Direction(t float64) Vec3 {
	return s.Velocity(t).NormalizeOrZero()
}

// Segment returns the i-th segment, in local space.
func (s *Spline) Segment(i int) (CubicBez, error) {
	if err := checkIndex("Segment", i, s.CurveCount()); err != nil {
		return CubicBez{}, err
	}
	return s.segmentAt(i * 3), nil
}

// Segments returns an iterator over the segments, in local space.
func (s *Spline) Segments() iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		for i := 0; i+3 < len(s.points); i += 3 {
			if !yield(s.segmentAt(i)) {
				return
			}
		}
	}
}

// Samples returns an iterator over stepsPerCurve evenly spaced samples per
// segment, as pairs of global parameter and world-space point. Both end
// points are included. A non-positive stepsPerCurve is treated as 1.
func (s *Spline) Samples(stepsPerCurve int) iter.Seq2[float64, Point] {
	return func(yield func(float64, Point) bool) {
		steps := max(stepsPerCurve, 1) * s.CurveCount()
		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(steps)
			if !yield(t, s.Eval(t)) {
				return
			}
		}
	}
}

// BoundingBox returns the smallest world-space box enclosing the curve. It
// doesn't necessarily enclose the handles.
func (s *Spline) BoundingBox() Box {
	var bbox Box
	first := true
	for seg := range TransformSeq(s.Segments(), &s.transform) {
		b := seg.BoundingBox()
		if first {
			bbox = b
			first = false
		} else {
			bbox = bbox.Union(b)
		}
	}
	return bbox
}

// Nearest finds the point on the spline closest to the world-space point pt.
// It returns the global parameter of that point and its squared distance from
// pt. A non-positive accuracy is replaced by [DefaultAccuracy].
func (s *Spline) Nearest(pt Point, accuracy float64) (t, distSq float64) {
	if !(accuracy > 0) {
		accuracy = DefaultAccuracy
	}
	var best option[float64]
	var bestT float64
	n := float64(s.CurveCount())
	var i int
	for seg := range TransformSeq(s.Segments(), &s.transform) {
		d, segT := seg.Nearest(pt, accuracy)
		if !best.isSet || d < best.value {
			best.set(d)
			bestT = (float64(i) + segT) / n
		}
		i++
	}
	return bestT, best.value
}

func invalidModeError(m TangentMode) error {
	return fmt.Errorf("%w %d", ErrInvalidMode, int(m))
}
