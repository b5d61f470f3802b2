package scoring

import (
	"math"

	"facemetry/internal/feature"
)

// Scores are the 0-100 region scores plus their rounded mean.
type Scores struct {
	Eyes    int `json:"eyes"`
	Nose    int `json:"nose"`
	Jaw     int `json:"jaw"`
	Overall int `json:"overall"`
}

// Engine scores facial measurements against immutable baseline and weight
// configuration fixed at construction. It holds no per-call state and is safe
// for concurrent use.
type Engine struct {
	baselines Baselines
	weights   Weights
}

// NewEngine validates the configuration and creates an engine. Invalid
// configuration fails fast rather than silently defaulting.
func NewEngine(baselines Baselines, weights Weights) (*Engine, error) {
	if err := baselines.Validate(); err != nil {
		return nil, err
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Engine{baselines: baselines, weights: weights}, nil
}

// Deviation measures how far value falls outside its ideal band, normalized
// to [0,1]. Values inside the closed band deviate 0; outside, the distance
// from the band center in units of the band width, capped at 1 so a single
// wild quantity cannot dominate beyond its weight.
func Deviation(value float64, r Range) float64 {
	if r.Contains(value) {
		return 0
	}
	span := r.Span()
	if span == 0 {
		return 1
	}
	return math.Min(math.Abs(value-r.Center())/span, 1)
}

// Score aggregates each region's weighted deviations into integer scores.
// A configuration fully inside every ideal band scores 100; the overall score
// is the rounded mean of the three regions.
func (e *Engine) Score(f *feature.FacialFeatures) Scores {
	eyes := e.scoreEyes(f.Eyes)
	nose := e.scoreNose(f.Nose)
	jaw := e.scoreJaw(f.Jaw)

	return Scores{
		Eyes:    eyes,
		Nose:    nose,
		Jaw:     jaw,
		Overall: int(math.Round(float64(eyes+nose+jaw) / 3)),
	}
}

func (e *Engine) scoreEyes(eyes feature.Eyes) int {
	meanAspect := (eyes.Left.AspectRatio + eyes.Right.AspectRatio) / 2
	meanTilt := (math.Abs(eyes.Left.Tilt) + math.Abs(eyes.Right.Tilt)) / 2

	weighted := e.weights.EyeAspectRatio*Deviation(meanAspect, e.baselines.EyeAspectRatio) +
		e.weights.EyeSymmetry*Deviation(eyes.Symmetry, e.baselines.EyeSymmetry) +
		e.weights.EyeTilt*Deviation(meanTilt, e.baselines.EyeTilt)

	return regionScore(weighted)
}

func (e *Engine) scoreNose(nose feature.Nose) int {
	// Nose width relative to bridge width stands in for an absolute width,
	// which normalized coordinates cannot provide.
	widthRatio := nose.Width / nose.BridgeWidth

	weighted := e.weights.NoseWidthRatio*Deviation(widthRatio, e.baselines.NoseWidthRatio) +
		e.weights.NoseTipProjection*Deviation(math.Abs(nose.TipProjection), e.baselines.NoseTipProjection) +
		e.weights.NostrilSymmetry*Deviation(nose.NostrilSymmetry, e.baselines.NostrilSymmetry)

	return regionScore(weighted)
}

func (e *Engine) scoreJaw(jaw feature.Jaw) int {
	weighted := e.weights.JawAngle*Deviation(jaw.Angle, e.baselines.JawAngle) +
		e.weights.LowerFaceRatio*Deviation(jaw.LowerFaceRatio, e.baselines.LowerFaceRatio) +
		e.weights.JawAsymmetry*Deviation(jaw.Asymmetry, e.baselines.JawAsymmetry)

	return regionScore(weighted)
}

// regionScore maps a weighted deviation sum onto the 0-100 scale.
func regionScore(weightedDeviation float64) int {
	score := 100 * (1 - weightedDeviation)
	return int(math.Round(math.Max(0, math.Min(100, score))))
}
