// Package geometry provides the numeric primitives the feature and face
// analyzers are built on. All functions are pure; none of them error.
package geometry

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"

	"facemetry/internal/landmark"
)

const radToDeg = 180 / math.Pi

// Distance returns the planar Euclidean distance between two points. Depth is
// ignored.
func Distance(p1, p2 landmark.Point) float64 {
	return r2.Point{X: p2.X - p1.X, Y: p2.Y - p1.Y}.Norm()
}

// AngleDeg returns the angle at center between the rays toward p1 and p2, in
// degrees within [0,180]. The normalized dot product is clamped to [-1,1]
// before acos so floating point drift cannot leave the domain. A zero-length
// ray is degenerate and yields 0.
func AngleDeg(p1, center, p2 landmark.Point) float64 {
	a := r2.Point{X: p1.X - center.X, Y: p1.Y - center.Y}
	b := r2.Point{X: p2.X - center.X, Y: p2.Y - center.Y}

	na := a.Norm()
	nb := b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}

	cos := a.Dot(b) / (na * nb)
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * radToDeg
}

// TiltDeg returns the signed angle of the line p1->p2 against the horizontal
// axis, in degrees. Positive y points down in image coordinates, so a
// positive tilt means p2 sits below p1.
func TiltDeg(p1, p2 landmark.Point) float64 {
	return math.Atan2(p2.Y-p1.Y, p2.X-p1.X) * radToDeg
}

// Centroid returns the arithmetic mean position of the points. Missing depth
// counts as 0. Callers must supply a non-empty slice; the zero Point is
// returned otherwise.
func Centroid(points []landmark.Point) landmark.Point {
	if len(points) == 0 {
		return landmark.Point{}
	}

	var sum r3.Vector
	for _, p := range points {
		sum = sum.Add(r3.Vector{X: p.X, Y: p.Y, Z: p.Depth()})
	}

	mean := sum.Mul(1 / float64(len(points)))
	z := mean.Z
	return landmark.Point{X: mean.X, Y: mean.Y, Z: &z}
}
