package spline

import (
	"math"
	"testing"
)

func TestLineLength(t *testing.T) {
	l := Line{Pt(0, 0, 0), Pt(1, 2, 2)}
	if got := l.Length(); got != 3 {
		t.Errorf("got %v, want 3", got)
	}
}

func TestLineIsInf(t *testing.T) {
	if (Line{Pt(0.0, 0.0, 0.0), Pt(1.0, 1.0, 1.0)}).IsInf() {
		t.Error("line is infinite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0, 0.0), Pt(math.Inf(1), 1.0, 0.0)}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0, 0.0), Pt(0.0, 0.0, math.Inf(1))}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}
}

func TestLineNearest(t *testing.T) {
	l := Line{Pt(0, 0, 0), Pt(10, 0, 0)}
	verify := func(pt Point, wantDistSq, wantT float64) {
		t.Helper()
		distSq, tt := l.Nearest(pt, 0)
		if math.Abs(distSq-wantDistSq) > 1e-12 || math.Abs(tt-wantT) > 1e-12 {
			t.Errorf("got (%v, %v), want (%v, %v)", distSq, tt, wantDistSq, wantT)
		}
	}
	verify(Pt(5, 3, 4), 25, 0.5)
	verify(Pt(-1, 0, 0), 1, 0)
	verify(Pt(12, 0, 1), 5, 1)
}

func TestLineSubdivide(t *testing.T) {
	l := Line{Pt(0, 0, 0), Pt(2, 4, 6)}
	a, b := l.Subdivide()
	diff(t, Line{Pt(0, 0, 0), Pt(1, 2, 3)}, a)
	diff(t, Line{Pt(1, 2, 3), Pt(2, 4, 6)}, b)
	diff(t, Line{Pt(0.5, 1, 1.5), Pt(1.5, 3, 4.5)}, l.Subsegment(0.25, 0.75))
}

func TestLineTransform(t *testing.T) {
	tr := Translation(Vec(1, 1, 1))
	l := Line{Pt(0, 0, 0), Pt(1, 0, 0)}
	diff(t, Line{Pt(1, 1, 1), Pt(2, 1, 1)}, l.Transform(&tr))
	diff(t, Line{Pt(1, 1, 1), Pt(2, 1, 1)}, l.Translate(Vec(1, 1, 1)))
}
