package spline

import "fmt"

// TangentMode constrains how the two handles around an anchor move relative
// to each other.
type TangentMode int

const (
	// Free handles move independently.
	Free TangentMode = iota
	// Aligned handles stay collinear through the anchor, but each keeps its
	// own distance from it.
	Aligned
	// Mirrored handles are reflections of each other through the anchor.
	Mirrored
)

func (m TangentMode) String() string {
	switch m {
	case Free:
		return "Free"
	case Aligned:
		return "Aligned"
	case Mirrored:
		return "Mirrored"
	default:
		return fmt.Sprintf("TangentMode(%d)", int(m))
	}
}

// Valid reports whether m is one of the defined modes.
func (m TangentMode) Valid() bool {
	return m >= Free && m <= Mirrored
}

// ParseTangentMode returns the mode whose [TangentMode.String] is s.
func ParseTangentMode(s string) (TangentMode, error) {
	for m := Free; m <= Mirrored; m++ {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("parse tangent mode %q: %w", s, ErrInvalidMode)
}
