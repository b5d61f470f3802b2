// Package feature measures facial geometry out of a full landmark set. The
// extractor is stateless and safe for concurrent use; all ratios and tilts
// are unclamped, interpretation against baseline ranges is the scoring
// engine's job.
package feature

import (
	"facemetry/internal/facerr"
	"facemetry/internal/geometry"
	"facemetry/internal/landmark"
)

// Extractor turns landmark sets into structured per-region measurements.
type Extractor struct{}

// NewExtractor creates an extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract measures eyes, nose and jaw from a complete landmark set. Sets
// shorter than the fixed mesh size fail with insufficient_landmarks; a
// registry index that resolves to no point fails with missing_landmark.
// No partial result is returned on error.
func (e *Extractor) Extract(set landmark.Set) (*FacialFeatures, error) {
	if len(set) < landmark.MeshSize {
		return nil, facerr.Newf(facerr.CodeInsufficientLandmarks,
			"landmark set has %d points, need %d", len(set), landmark.MeshSize)
	}

	eyes, err := e.extractEyes(set)
	if err != nil {
		return nil, err
	}

	nose, err := e.extractNose(set)
	if err != nil {
		return nil, err
	}

	jaw, err := e.extractJaw(set)
	if err != nil {
		return nil, err
	}

	return &FacialFeatures{Eyes: *eyes, Nose: *nose, Jaw: *jaw}, nil
}

// extractEyes measures both eye rings and the pair-level quantities.
func (e *Extractor) extractEyes(set landmark.Set) (*Eyes, error) {
	leftRing, err := landmark.Pick(set, landmark.LeftEye)
	if err != nil {
		return nil, err
	}
	rightRing, err := landmark.Pick(set, landmark.RightEye)
	if err != nil {
		return nil, err
	}

	left := measureEye(leftRing)
	right := measureEye(rightRing)

	return &Eyes{
		Left:                   left,
		Right:                  right,
		InterpupillaryDistance: geometry.Distance(geometry.Centroid(leftRing), geometry.Centroid(rightRing)),
		Symmetry:               left.Width / right.Width,
	}, nil
}

// measureEye measures one 16-point eye ring. Corners sit at ring positions 0
// and EyeInnerPos, the lids at EyeTopPos and EyeBottomPos.
func measureEye(ring []landmark.Point) SingleEye {
	outer := ring[0]
	inner := ring[landmark.EyeInnerPos]

	width := geometry.Distance(outer, inner)
	height := geometry.Distance(ring[landmark.EyeTopPos], ring[landmark.EyeBottomPos])

	return SingleEye{
		Width:       width,
		Height:      height,
		AspectRatio: width / height,
		Tilt:        geometry.TiltDeg(outer, inner),
		Landmarks:   ring,
	}
}

// extractNose measures the nose out of the tip, bridge and nostril groups.
func (e *Extractor) extractNose(set landmark.Set) (*Nose, error) {
	tip, err := landmark.Pick(set, landmark.NoseTip)
	if err != nil {
		return nil, err
	}
	bridge, err := landmark.Pick(set, landmark.NoseBridge)
	if err != nil {
		return nil, err
	}
	leftNostril, err := landmark.Pick(set, landmark.LeftNostril)
	if err != nil {
		return nil, err
	}
	rightNostril, err := landmark.Pick(set, landmark.RightNostril)
	if err != nil {
		return nil, err
	}

	points := make([]landmark.Point, 0, len(tip)+len(bridge)+len(leftNostril)+len(rightNostril))
	points = append(points, tip...)
	points = append(points, bridge...)
	points = append(points, leftNostril...)
	points = append(points, rightNostril...)

	return &Nose{
		Width:           geometry.Distance(leftNostril[0], rightNostril[0]),
		Length:          geometry.Distance(bridge[0], tip[0]),
		TipProjection:   tip[0].Depth(),
		BridgeWidth:     geometry.Distance(bridge[landmark.BridgeLeftPos], bridge[landmark.BridgeRightPos]),
		NostrilSymmetry: nostrilWidth(leftNostril) / nostrilWidth(rightNostril),
		Landmarks:       points,
	}, nil
}

// nostrilWidth spans one nostril ring from the outer ala to the inner edge.
func nostrilWidth(ring []landmark.Point) float64 {
	return geometry.Distance(ring[0], ring[landmark.NostrilInnerPos])
}

// extractJaw measures the jaw chains and the chin.
func (e *Extractor) extractJaw(set landmark.Set) (*Jaw, error) {
	leftJaw, err := landmark.Pick(set, landmark.LeftJaw)
	if err != nil {
		return nil, err
	}
	rightJaw, err := landmark.Pick(set, landmark.RightJaw)
	if err != nil {
		return nil, err
	}
	chin, err := landmark.Pick(set, landmark.Chin)
	if err != nil {
		return nil, err
	}

	width := geometry.Distance(leftJaw[0], rightJaw[0])
	chinWidth := geometry.Distance(chin[landmark.ChinLeftPos], chin[landmark.ChinRightPos])

	points := make([]landmark.Point, 0, len(leftJaw)+len(rightJaw)+len(chin))
	points = append(points, leftJaw...)
	points = append(points, rightJaw...)
	points = append(points, chin...)

	return &Jaw{
		Width:          width,
		Angle:          geometry.AngleDeg(leftJaw[0], chin[0], rightJaw[0]),
		ChinProjection: chin[0].Depth(),
		LowerFaceRatio: chinWidth / width,
		Asymmetry:      perimeter(leftJaw) / perimeter(rightJaw),
		Landmarks:      points,
	}, nil
}

// perimeter sums the consecutive segment lengths along an ordered chain.
func perimeter(points []landmark.Point) float64 {
	var sum float64
	for i := 0; i < len(points)-1; i++ {
		sum += geometry.Distance(points[i], points[i+1])
	}
	return sum
}
