// Package landmark defines the normalized facial landmark data model and the
// fixed index registry that names anatomical regions within a landmark set.
package landmark

// MeshSize is the fixed number of points in a complete landmark set. Index
// positions are semantically stable: index i always denotes the same
// anatomical point.
const MeshSize = 468

// Point is a single detected facial point. X and Y are normalized to the
// image dimensions (conventionally [0,1], not clamped). Z, Visibility and
// Presence are optional model outputs; nil means the model did not report
// them.
type Point struct {
	X          float64  `json:"x"`
	Y          float64  `json:"y"`
	Z          *float64 `json:"z,omitempty"`
	Visibility *float64 `json:"visibility,omitempty"`
	Presence   *float64 `json:"presence,omitempty"`
}

// Depth returns the z coordinate, or 0 when the model did not report depth.
func (p Point) Depth() float64 {
	if p.Z == nil {
		return 0
	}
	return *p.Z
}

// Visible reports whether the point counts as visible. Missing visibility
// counts as visible.
func (p Point) Visible() bool {
	return p.Visibility == nil || *p.Visibility > 0.5
}

// InFrame reports whether the point lies inside the normalized image bounds.
func (p Point) InFrame() bool {
	return p.X >= 0 && p.X <= 1 && p.Y >= 0 && p.Y <= 1
}

// Set is the ordered landmark collection for one face. A well-formed set has
// exactly MeshSize points; the engine never retains a set across calls.
type Set []Point
