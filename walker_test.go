package spline

import (
	"math"
	"testing"
	"time"

	"github.com/ungerik/go3d/float64/quaternion"
)

func TestWalkerOnce(t *testing.T) {
	w := Walker{Spline: NewSpline(), Duration: 2 * time.Second}
	pose := w.Advance(time.Second)
	if p := w.Progress(); p != 0.5 {
		t.Errorf("got progress %v, want 0.5", p)
	}
	assertNear(t, pose.Position, Pt(2.5, 0, 0), 1e-12)
	assertNearVec(t, pose.Direction, Vec(1, 0, 0), 1e-12)

	pose = w.Advance(3 * time.Second)
	if p := w.Progress(); p != 1 {
		t.Errorf("got progress %v, want 1", p)
	}
	assertNear(t, pose.Position, Pt(4, 0, 0), 1e-12)

	w.Reset()
	if p := w.Progress(); p != 0 {
		t.Errorf("got progress %v after reset, want 0", p)
	}
}

func TestWalkerLoop(t *testing.T) {
	w := Walker{Spline: NewSpline(), Mode: WalkLoop, Duration: time.Second}
	for _, step := range []struct {
		dt   time.Duration
		want float64
	}{
		{750 * time.Millisecond, 0.75},
		{500 * time.Millisecond, 0.25},
		{500 * time.Millisecond, 0.75},
		{2250 * time.Millisecond, 0},
	} {
		w.Advance(step.dt)
		if p := w.Progress(); math.Abs(p-step.want) > 1e-12 {
			t.Errorf("got progress %v, want %v", p, step.want)
		}
	}
}

func TestWalkerPingPong(t *testing.T) {
	w := Walker{Spline: NewSpline(), Mode: WalkPingPong, Duration: time.Second}
	for _, step := range []struct {
		dt   time.Duration
		want float64
	}{
		{750 * time.Millisecond, 0.75},
		{500 * time.Millisecond, 0.75},
		{500 * time.Millisecond, 0.25},
		{500 * time.Millisecond, 0.25},
		{250 * time.Millisecond, 0.5},
	} {
		w.Advance(step.dt)
		if p := w.Progress(); math.Abs(p-step.want) > 1e-12 {
			t.Errorf("got progress %v, want %v", p, step.want)
		}
	}
}

func TestWalkerZeroDuration(t *testing.T) {
	w := Walker{Spline: NewSpline()}
	w.Advance(time.Millisecond)
	if p := w.Progress(); p != 1 {
		t.Errorf("got progress %v, want 1", p)
	}

	w = Walker{Spline: NewSpline(), Mode: WalkPingPong}
	for _, want := range []float64{1, 0, 1} {
		w.Advance(time.Millisecond)
		if p := w.Progress(); p != want {
			t.Errorf("got progress %v, want %v", p, want)
		}
	}
}

func TestWalkerLookForward(t *testing.T) {
	const epsilon = 1e-9
	w := Walker{Spline: NewSpline(), Duration: time.Second}
	pose := w.Advance(100 * time.Millisecond)
	if pose.Orientation != quaternion.Ident {
		t.Errorf("got orientation %v without looking forward, want identity", pose.Orientation)
	}

	w.LookForward = true
	pose = w.Advance(100 * time.Millisecond)
	// The default forward axis is +Z.
	assertNearVec(t, pose.Rotate(Vec(0, 0, 1)), Vec(1, 0, 0), epsilon)

	w.Forward = Vec(0, 2, 0)
	pose = w.Pose()
	assertNearVec(t, pose.Rotate(Vec(0, 1, 0)), Vec(1, 0, 0), epsilon)

	// Rotating the spline turns the walker with it.
	w.Spline.SetTransform(RotationZ(math.Pi / 2))
	pose = w.Pose()
	assertNearVec(t, pose.Direction, Vec(0, 1, 0), epsilon)
	assertNearVec(t, pose.Rotate(Vec(0, 1, 0)), Vec(0, 1, 0), epsilon)
}

func TestWalkerDegenerate(t *testing.T) {
	p := Pt(1, 1, 1)
	s, err := NewSplineFrom([]Point{p, p, p, p}, []TangentMode{Free, Free}, false)
	if err != nil {
		t.Fatal(err)
	}
	w := Walker{Spline: s, Duration: time.Second, LookForward: true}
	pose := w.Advance(500 * time.Millisecond)
	diff(t, Pose{Position: p, Orientation: quaternion.Ident}, pose)
}

func TestWalkerModeString(t *testing.T) {
	for m, want := range map[WalkerMode]string{
		WalkOnce:      "Once",
		WalkLoop:      "Loop",
		WalkPingPong:  "PingPong",
		WalkerMode(5): "WalkerMode(5)",
	} {
		if got := m.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}
