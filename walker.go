package spline

import (
	"fmt"
	"time"

	"github.com/ungerik/go3d/float64/quaternion"
)

// WalkerMode determines what a [Walker] does when it reaches the end of its
// spline.
type WalkerMode int

const (
	// WalkOnce stops at the end.
	WalkOnce WalkerMode = iota
	// WalkLoop starts over from the beginning.
	WalkLoop
	// WalkPingPong reverses and walks back to the start, then reverses
	// again.
	WalkPingPong
)

func (m WalkerMode) String() string {
	switch m {
	case WalkOnce:
		return "Once"
	case WalkLoop:
		return "Loop"
	case WalkPingPong:
		return "PingPong"
	default:
		return fmt.Sprintf("WalkerMode(%d)", int(m))
	}
}

// Pose is a walker's position and heading in world space.
type Pose struct {
	Position  Point
	Direction Vec3
	// Orientation rotates the walker's forward axis onto Direction. It is
	// the identity if the walker doesn't look forward.
	Orientation quaternion.T
}

// Walker moves along a spline at a constant rate of the global parameter,
// taking Duration to get from one end to the other.
//
// With only Spline set, a Walker walks once without turning and arrives on
// the first call to Advance. A non-positive Duration always jumps to the
// end of the current direction.
type Walker struct {
	Spline   *Spline
	Mode     WalkerMode
	Duration time.Duration
	// LookForward makes Advance compute an orientation that turns Forward
	// onto the direction of the spline.
	LookForward bool
	// Forward is the walker's own forward axis. The zero vector means +Z.
	Forward Vec3

	progress  float64
	backwards bool
}

// Progress returns the current global parameter, in [0, 1].
func (w *Walker) Progress() float64 {
	return w.progress
}

// Reset moves the walker back to the start, walking forward.
func (w *Walker) Reset() {
	w.progress = 0
	w.backwards = false
}

// Advance moves the walker by dt and returns its new pose.
func (w *Walker) Advance(dt time.Duration) Pose {
	if w.Duration <= 0 {
		w.jump()
		return w.Pose()
	}
	delta := dt.Seconds() / w.Duration.Seconds()

	switch w.Mode {
	case WalkLoop:
		w.progress += delta
		if w.progress > 1 {
			w.progress -= 1
			if w.progress > 1 {
				w.progress -= float64(int(w.progress))
			}
		}
	case WalkPingPong:
		if w.backwards {
			w.progress -= delta
			if w.progress < 0 {
				w.progress = -w.progress
				w.backwards = false
			}
		} else {
			w.progress += delta
			if w.progress > 1 {
				w.progress = 2 - w.progress
				w.backwards = true
			}
		}
		w.progress = clamp01(w.progress)
	default:
		w.progress = min(w.progress+delta, 1)
	}

	return w.Pose()
}

// jump moves to the end of the current direction.
func (w *Walker) jump() {
	if w.Mode != WalkPingPong {
		w.progress = 1
		return
	}
	if w.backwards {
		w.progress = 0
	} else {
		w.progress = 1
	}
	w.backwards = !w.backwards
}

// Pose returns the walker's current pose without moving it.
func (w *Walker) Pose() Pose {
	dir := w.Spline.Direction(w.progress)
	pose := Pose{
		Position:    w.Spline.Eval(w.progress),
		Direction:   dir,
		Orientation: quaternion.Ident,
	}
	if w.LookForward && !dir.IsZero() {
		fwd := w.Forward.NormalizeOrZero()
		if fwd.IsZero() {
			fwd = Vec(0, 0, 1)
		}
		a, b := fwd.Array(), dir.Array()
		pose.Orientation = quaternion.Vec3Diff(&a, &b)
	}
	return pose
}

// Rotate applies the pose's orientation to v.
func (p Pose) Rotate(v Vec3) Vec3 {
	a := v.Array()
	return VecFromArray(p.Orientation.RotatedVec3(&a))
}
