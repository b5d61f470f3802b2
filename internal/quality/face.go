package quality

import (
	"math"

	"facemetry/internal/facerr"
	"facemetry/internal/geometry"
	"facemetry/internal/landmark"
)

// Scale factors mapping normalized outline displacement onto a degree-like
// range. Heuristic proxies, not a 3-D pose estimate.
const (
	yawScale   = 60
	pitchScale = 40
)

// AnalyzeFace computes pose, framing and visibility statistics for a landmark
// set against an image of the given pixel dimensions. An empty set fails with
// invalid_input; a set too short for a required region fails with
// missing_landmark.
func AnalyzeFace(set landmark.Set, imageWidth, imageHeight int) (*FaceMetrics, error) {
	if len(set) == 0 {
		return nil, facerr.New(facerr.CodeInvalidInput, "empty landmark set")
	}
	if imageWidth <= 0 || imageHeight <= 0 {
		return nil, facerr.Newf(facerr.CodeInvalidImage, "zero-area image %dx%d", imageWidth, imageHeight)
	}

	outline, err := landmark.Pick(set, landmark.FaceOutline)
	if err != nil {
		return nil, err
	}

	completeness, err := completenessScore(set)
	if err != nil {
		return nil, err
	}

	symmetry, err := symmetryScore(set)
	if err != nil {
		return nil, err
	}

	size, position := faceBox(set, imageWidth, imageHeight)

	return &FaceMetrics{
		Angle:        faceAngle(outline),
		Size:         size,
		Position:     position,
		Completeness: completeness,
		Symmetry:     symmetry,
	}, nil
}

// faceAngle derives roll from the lateral outline pair, yaw from that pair's
// horizontal midpoint displacement and pitch from the vertical midpoint of
// the top/bottom outline pair.
func faceAngle(outline []landmark.Point) FaceAngle {
	left := outline[landmark.OutlineLeftPos]
	right := outline[landmark.OutlineRightPos]
	top := outline[0]
	bottom := outline[landmark.OutlineBottomPos]

	return FaceAngle{
		Yaw:   ((left.X+right.X)/2 - 0.5) * yawScale,
		Pitch: ((top.Y+bottom.Y)/2 - 0.5) * pitchScale,
		Roll:  geometry.TiltDeg(left, right),
	}
}

// faceBox measures the axis-aligned landmark bounding box. Landmark
// coordinates are normalized, so box dimensions are already fractions of the
// image; the center offset is measured in pixel space and normalized by half
// the image diagonal.
func faceBox(set landmark.Set, imageWidth, imageHeight int) (FaceSize, FacePosition) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range set {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	size := FaceSize{
		Width:  maxX - minX,
		Height: maxY - minY,
	}
	size.Area = size.Width * size.Height

	centerX := (minX + maxX) / 2
	centerY := (minY + maxY) / 2

	w := float64(imageWidth)
	h := float64(imageHeight)
	dx := centerX*w - w/2
	dy := centerY*h - h/2
	halfDiagonal := math.Hypot(w, h) / 2

	return size, FacePosition{
		CenterX:          centerX,
		CenterY:          centerY,
		OffsetFromCenter: math.Hypot(dx, dy) / halfDiagonal,
	}
}

// completenessScore is the fraction of key points that sit inside the frame
// and count as visible.
func completenessScore(set landmark.Set) (float64, error) {
	keys := landmark.KeyIndices()
	visible := 0
	for _, idx := range keys {
		if idx >= len(set) {
			return 0, facerr.Newf(facerr.CodeMissingLandmark,
				"key index %d outside landmark set of length %d", idx, len(set))
		}
		p := set[idx]
		if p.InFrame() && p.Visible() {
			visible++
		}
	}
	return float64(visible) / float64(len(keys)), nil
}

// symmetryScore compares how far each eye centroid sits from the frame
// center. 1 means perfectly balanced; coincident centroids count as balanced.
func symmetryScore(set landmark.Set) (float64, error) {
	leftRing, err := landmark.Pick(set, landmark.LeftEye)
	if err != nil {
		return 0, err
	}
	rightRing, err := landmark.Pick(set, landmark.RightEye)
	if err != nil {
		return 0, err
	}

	center := landmark.Point{X: 0.5, Y: 0.5}
	dLeft := geometry.Distance(geometry.Centroid(leftRing), center)
	dRight := geometry.Distance(geometry.Centroid(rightRing), center)

	maxD := math.Max(dLeft, dRight)
	if maxD == 0 {
		return 1, nil
	}
	return math.Min(dLeft, dRight) / maxD, nil
}
