// Package scoring turns facial measurements into 0-100 region scores by
// comparing each quantity against a configured ideal band.
package scoring

import (
	"facemetry/internal/facerr"
)

// Range is the closed [Min,Max] interval defining the ideal band for one
// measured quantity.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max" validate:"gtefield=Min"`
}

// Contains reports whether value lies inside the closed interval.
func (r Range) Contains(value float64) bool {
	return value >= r.Min && value <= r.Max
}

// Center returns the interval midpoint.
func (r Range) Center() float64 {
	return (r.Min + r.Max) / 2
}

// Span returns the interval width.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Baselines holds one ideal band per scored quantity. Every quantity the
// engine scores has exactly one named field here and one in Weights, so a
// range cannot exist without its weight.
type Baselines struct {
	EyeAspectRatio    Range `json:"eye_aspect_ratio"`
	EyeSymmetry       Range `json:"eye_symmetry"`
	EyeTilt           Range `json:"eye_tilt"`
	NoseWidthRatio    Range `json:"nose_width_ratio"`
	NoseTipProjection Range `json:"nose_tip_projection"`
	NostrilSymmetry   Range `json:"nostril_symmetry"`
	JawAngle          Range `json:"jaw_angle"`
	LowerFaceRatio    Range `json:"lower_face_ratio"`
	JawAsymmetry      Range `json:"jaw_asymmetry"`
}

// Weights holds the relative importance of each quantity within its region's
// aggregate. Weights within one region are expected, not enforced, to sum to
// roughly 1.
type Weights struct {
	EyeAspectRatio    float64 `json:"eye_aspect_ratio" validate:"gte=0"`
	EyeSymmetry       float64 `json:"eye_symmetry" validate:"gte=0"`
	EyeTilt           float64 `json:"eye_tilt" validate:"gte=0"`
	NoseWidthRatio    float64 `json:"nose_width_ratio" validate:"gte=0"`
	NoseTipProjection float64 `json:"nose_tip_projection" validate:"gte=0"`
	NostrilSymmetry   float64 `json:"nostril_symmetry" validate:"gte=0"`
	JawAngle          float64 `json:"jaw_angle" validate:"gte=0"`
	LowerFaceRatio    float64 `json:"lower_face_ratio" validate:"gte=0"`
	JawAsymmetry      float64 `json:"jaw_asymmetry" validate:"gte=0"`
}

// DefaultBaselines are the documented ideal bands for a frontal capture with
// normalized landmark coordinates. Tilt and angle bands are in degrees, tip
// projection is an absolute depth, the rest are dimensionless ratios.
var DefaultBaselines = Baselines{
	EyeAspectRatio:    Range{Min: 2.5, Max: 3.5},
	EyeSymmetry:       Range{Min: 0.9, Max: 1.1},
	EyeTilt:           Range{Min: 0, Max: 8},
	NoseWidthRatio:    Range{Min: 1.8, Max: 2.6},
	NoseTipProjection: Range{Min: 0, Max: 0.08},
	NostrilSymmetry:   Range{Min: 0.85, Max: 1.15},
	JawAngle:          Range{Min: 50, Max: 80},
	LowerFaceRatio:    Range{Min: 0.2, Max: 0.4},
	JawAsymmetry:      Range{Min: 0.9, Max: 1.1},
}

// DefaultWeights sum to 1 within each region.
var DefaultWeights = Weights{
	EyeAspectRatio:    0.4,
	EyeSymmetry:       0.35,
	EyeTilt:           0.25,
	NoseWidthRatio:    0.4,
	NoseTipProjection: 0.3,
	NostrilSymmetry:   0.3,
	JawAngle:          0.35,
	LowerFaceRatio:    0.35,
	JawAsymmetry:      0.3,
}

// Validate rejects inverted intervals.
func (b Baselines) Validate() error {
	for _, entry := range []struct {
		name string
		r    Range
	}{
		{"eye_aspect_ratio", b.EyeAspectRatio},
		{"eye_symmetry", b.EyeSymmetry},
		{"eye_tilt", b.EyeTilt},
		{"nose_width_ratio", b.NoseWidthRatio},
		{"nose_tip_projection", b.NoseTipProjection},
		{"nostril_symmetry", b.NostrilSymmetry},
		{"jaw_angle", b.JawAngle},
		{"lower_face_ratio", b.LowerFaceRatio},
		{"jaw_asymmetry", b.JawAsymmetry},
	} {
		if entry.r.Min > entry.r.Max {
			return facerr.Newf(facerr.CodeInvalidConfig,
				"baseline %s has min %g above max %g", entry.name, entry.r.Min, entry.r.Max)
		}
	}
	return nil
}

// Validate rejects negative weights.
func (w Weights) Validate() error {
	for _, entry := range []struct {
		name   string
		weight float64
	}{
		{"eye_aspect_ratio", w.EyeAspectRatio},
		{"eye_symmetry", w.EyeSymmetry},
		{"eye_tilt", w.EyeTilt},
		{"nose_width_ratio", w.NoseWidthRatio},
		{"nose_tip_projection", w.NoseTipProjection},
		{"nostril_symmetry", w.NostrilSymmetry},
		{"jaw_angle", w.JawAngle},
		{"lower_face_ratio", w.LowerFaceRatio},
		{"jaw_asymmetry", w.JawAsymmetry},
	} {
		if entry.weight < 0 {
			return facerr.Newf(facerr.CodeInvalidConfig,
				"weight %s is negative: %g", entry.name, entry.weight)
		}
	}
	return nil
}
