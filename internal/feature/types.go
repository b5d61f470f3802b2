package feature

import (
	"facemetry/internal/landmark"
)

// SingleEye holds the measurements of one eye.
type SingleEye struct {
	Width       float64          `json:"width"`
	Height      float64          `json:"height"`
	AspectRatio float64          `json:"aspect_ratio"`
	Tilt        float64          `json:"tilt"` // signed degrees of the corner-to-corner line
	Landmarks   []landmark.Point `json:"landmarks,omitempty"`
}

// Eyes holds the per-eye measurements plus the pair-level ones.
type Eyes struct {
	Left                   SingleEye `json:"left"`
	Right                  SingleEye `json:"right"`
	InterpupillaryDistance float64   `json:"interpupillary_distance"`
	Symmetry               float64   `json:"symmetry"` // left width / right width, 1 means equal
}

// Nose holds the nose measurements.
type Nose struct {
	Width           float64          `json:"width"`
	Length          float64          `json:"length"`
	TipProjection   float64          `json:"tip_projection"` // tip depth, 0 when the model reports none
	BridgeWidth     float64          `json:"bridge_width"`
	NostrilSymmetry float64          `json:"nostril_symmetry"`
	Landmarks       []landmark.Point `json:"landmarks,omitempty"`
}

// Jaw holds the jaw and chin measurements.
type Jaw struct {
	Width          float64          `json:"width"`
	Angle          float64          `json:"angle"` // degrees at the chin between the jaw extremes
	ChinProjection float64          `json:"chin_projection"`
	LowerFaceRatio float64          `json:"lower_face_ratio"` // chin width / jaw width
	Asymmetry      float64          `json:"asymmetry"`        // left jaw perimeter / right jaw perimeter
	Landmarks      []landmark.Point `json:"landmarks,omitempty"`
}

// FacialFeatures is the structured measurement output for one landmark set.
// It is recomputed on every call and carries no identity.
type FacialFeatures struct {
	Eyes Eyes `json:"eyes"`
	Nose Nose `json:"nose"`
	Jaw  Jaw  `json:"jaw"`
}
