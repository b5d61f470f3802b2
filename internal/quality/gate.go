package quality

import (
	"math"

	"facemetry/internal/facerr"
	"facemetry/internal/landmark"
)

// Bonus cut lines for the confidence calculation.
const (
	highCompleteness = 0.95
	highSymmetry     = 0.9
)

// Gate compares computed metrics against immutable thresholds and produces a
// pass/fail verdict with an ordered issue list, a confidence score and
// guidance strings. Safe for concurrent use.
type Gate struct {
	thresholds Thresholds
	messages   Messages
}

// NewGate validates the thresholds and creates a gate.
func NewGate(thresholds Thresholds, messages Messages) (*Gate, error) {
	if err := thresholds.Validate(); err != nil {
		return nil, err
	}
	return &Gate{thresholds: thresholds, messages: messages}, nil
}

// Validate runs the gate over one frame in a single pass. An empty landmark
// set short-circuits to a no_face_detected verdict without touching the
// metrics. Outside that path the caller must supply both metric sets; any
// unexpected failure in the pipeline is surfaced as analysis_failed with no
// partial result.
func (g *Gate) Validate(img *ImageMetrics, face *FaceMetrics, set landmark.Set) (result *CheckResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = facerr.Newf(facerr.CodeAnalysisFailed, "quality gate: %v", r)
		}
	}()

	// No landmarks means no face; every later check is skipped.
	if len(set) == 0 {
		return &CheckResult{
			IsValid:    false,
			Confidence: 0,
			Issues: []Issue{{
				Type:     IssueNoFaceDetected,
				Severity: SeverityHigh,
				Message:  g.messages.NoFace,
			}},
			Recommendations: []string{},
		}, nil
	}

	issues := make([]Issue, 0, 4)

	// A single fixed-length landmark set can only ever describe one face, so
	// this check cannot fire today; the issue type stays declared for the day
	// the input shape changes.
	if estimateFaceCount(set) > 1 {
		issues = append(issues, Issue{
			Type:     IssueMultipleFaces,
			Severity: SeverityHigh,
			Message:  g.messages.MultipleFaces,
		})
	}

	issues = append(issues, g.imageIssues(img)...)
	issues = append(issues, g.faceIssues(face)...)

	valid := !hasSeverity(issues, SeverityHigh)

	return &CheckResult{
		IsValid:         valid,
		Issues:          issues,
		Confidence:      g.confidence(issues, img, face),
		Recommendations: g.recommendations(issues, valid),
	}, nil
}

// estimateFaceCount reports how many faces the landmark input could describe:
// 0 for an empty set, otherwise 1.
func estimateFaceCount(set landmark.Set) int {
	if len(set) == 0 {
		return 0
	}
	return 1
}

func (g *Gate) imageIssues(img *ImageMetrics) []Issue {
	t := g.thresholds
	var issues []Issue

	switch {
	case img.Brightness < t.MinBrightness:
		issues = append(issues, numericIssue(IssuePoorLighting, SeverityMedium, g.messages.TooDark, img.Brightness, t.MinBrightness))
	case img.Brightness > t.MaxBrightness:
		issues = append(issues, numericIssue(IssuePoorLighting, SeverityMedium, g.messages.TooBright, img.Brightness, t.MaxBrightness))
	}

	if img.Contrast < t.MinContrast {
		issues = append(issues, numericIssue(IssueLowContrast, SeverityLow, g.messages.LowContrast, img.Contrast, t.MinContrast))
	}
	if img.Blur > t.MaxBlur {
		issues = append(issues, numericIssue(IssueBlur, SeverityHigh, g.messages.TooBlurry, img.Blur, t.MaxBlur))
	}

	return issues
}

func (g *Gate) faceIssues(face *FaceMetrics) []Issue {
	t := g.thresholds
	var issues []Issue

	if math.Abs(face.Angle.Yaw) > t.MaxYaw {
		issues = append(issues, numericIssue(IssueFaceAngle, SeverityMedium, g.messages.YawTooHigh, face.Angle.Yaw, t.MaxYaw))
	}
	if math.Abs(face.Angle.Pitch) > t.MaxPitch {
		issues = append(issues, numericIssue(IssueFaceAngle, SeverityMedium, g.messages.PitchTooHigh, face.Angle.Pitch, t.MaxPitch))
	}
	if math.Abs(face.Angle.Roll) > t.MaxRoll {
		issues = append(issues, numericIssue(IssueFaceAngle, SeverityLow, g.messages.RollTooHigh, face.Angle.Roll, t.MaxRoll))
	}

	// At most one size issue; undersize is checked before oversize.
	switch {
	case face.Size.Width < t.MinFaceWidth:
		issues = append(issues, numericIssue(IssueFaceSize, SeverityMedium, g.messages.FaceTooSmall, face.Size.Width, t.MinFaceWidth))
	case face.Size.Height < t.MinFaceHeight:
		issues = append(issues, numericIssue(IssueFaceSize, SeverityMedium, g.messages.FaceTooSmall, face.Size.Height, t.MinFaceHeight))
	case face.Size.Width > t.MaxFaceWidth:
		issues = append(issues, numericIssue(IssueFaceSize, SeverityMedium, g.messages.FaceTooLarge, face.Size.Width, t.MaxFaceWidth))
	case face.Size.Height > t.MaxFaceHeight:
		issues = append(issues, numericIssue(IssueFaceSize, SeverityMedium, g.messages.FaceTooLarge, face.Size.Height, t.MaxFaceHeight))
	}

	if face.Position.OffsetFromCenter > t.CenterTolerance {
		issues = append(issues, numericIssue(IssueFacePosition, SeverityLow, g.messages.OffCenter, face.Position.OffsetFromCenter, t.CenterTolerance))
	}
	if face.Completeness < t.MinCompleteness {
		issues = append(issues, numericIssue(IssuePartialFace, SeverityHigh, g.messages.PartialFace, face.Completeness, t.MinCompleteness))
	}

	return issues
}

// confidence starts at 100, pays each issue's severity penalty, then earns
// back up to 25 bonus points for comfortable headroom beyond the thresholds.
func (g *Gate) confidence(issues []Issue, img *ImageMetrics, face *FaceMetrics) int {
	t := g.thresholds

	confidence := 100
	for _, issue := range issues {
		confidence -= issue.Severity.Penalty()
	}

	if img.Contrast > 1.5*t.MinContrast {
		confidence += 5
	}
	if img.Blur < 0.5*t.MaxBlur {
		confidence += 5
	}
	if face.Completeness > highCompleteness {
		confidence += 10
	}
	if face.Symmetry > highSymmetry {
		confidence += 5
	}

	if confidence < 0 {
		return 0
	}
	if confidence > 100 {
		return 100
	}
	return confidence
}

// recommendations emits one guidance string per distinct recommendable issue
// type, in first-occurrence order, or the positive message for a clean pass.
func (g *Gate) recommendations(issues []Issue, valid bool) []string {
	if valid && len(issues) == 0 {
		return []string{g.messages.Positive}
	}

	advice := map[IssueType]string{
		IssuePoorLighting: g.messages.AdviceLighting,
		IssueFaceAngle:    g.messages.AdviceAngle,
		IssueFaceSize:     g.messages.AdviceSize,
		IssueBlur:         g.messages.AdviceBlur,
	}

	out := []string{}
	seen := make(map[IssueType]bool, len(advice))
	for _, issue := range issues {
		msg, ok := advice[issue.Type]
		if !ok || seen[issue.Type] {
			continue
		}
		seen[issue.Type] = true
		out = append(out, msg)
	}
	return out
}

func hasSeverity(issues []Issue, s Severity) bool {
	for _, issue := range issues {
		if issue.Severity == s {
			return true
		}
	}
	return false
}

func numericIssue(t IssueType, s Severity, msg string, value, threshold float64) Issue {
	return Issue{Type: t, Severity: s, Message: msg, Value: &value, Threshold: &threshold}
}
