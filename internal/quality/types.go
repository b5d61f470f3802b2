package quality

// ImageMetrics holds pixel-level quality statistics for one frame. Brightness,
// contrast and saturation share the 0-255 luminance scale; blur and noise are
// normalized differently (see the analyzer).
type ImageMetrics struct {
	Brightness float64 `json:"brightness"` // mean BT.601 luminance
	Contrast   float64 `json:"contrast"`   // population std dev of luminance
	Blur       float64 `json:"blur"`       // inverse edge strength in [0,1], higher is blurrier
	Saturation float64 `json:"saturation"` // mean chroma spread, scaled to 0-255
	Noise      float64 `json:"noise"`      // mean local luminance variance on a sparse grid
}

// FaceAngle holds the estimated head pose in degrees. Yaw and pitch are
// heuristic proxies from outline displacement, not a 3-D pose estimate.
type FaceAngle struct {
	Yaw   float64 `json:"yaw"`
	Pitch float64 `json:"pitch"`
	Roll  float64 `json:"roll"`
}

// FaceSize holds the landmark bounding box as fractions of the image.
type FaceSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Area   float64 `json:"area"`
}

// FacePosition locates the bounding box center in normalized coordinates.
// OffsetFromCenter is 0 for a perfectly centered face and about 1 at a corner.
type FacePosition struct {
	CenterX          float64 `json:"center_x"`
	CenterY          float64 `json:"center_y"`
	OffsetFromCenter float64 `json:"offset_from_center"`
}

// FaceMetrics holds pose, framing and visibility statistics for one landmark
// set against one image.
type FaceMetrics struct {
	Angle        FaceAngle    `json:"angle"`
	Size         FaceSize     `json:"size"`
	Position     FacePosition `json:"position"`
	Completeness float64      `json:"completeness"` // fraction of key points in frame and visible
	Symmetry     float64      `json:"symmetry"`     // left/right balance proxy in (0,1]
}

// Severity ranks how strongly an issue blocks the capture.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Penalty returns the confidence cost of one issue at this severity.
func (s Severity) Penalty() int {
	switch s {
	case SeverityHigh:
		return 30
	case SeverityMedium:
		return 15
	case SeverityLow:
		return 5
	default:
		return 0
	}
}

// IssueType categorizes a quality problem.
type IssueType string

const (
	IssueNoFaceDetected IssueType = "no_face_detected"
	IssueMultipleFaces  IssueType = "multiple_faces"
	IssuePoorLighting   IssueType = "poor_lighting"
	IssueLowContrast    IssueType = "low_contrast"
	IssueBlur           IssueType = "blur"
	IssueFaceAngle      IssueType = "face_angle"
	IssueFaceSize       IssueType = "face_size"
	IssueFacePosition   IssueType = "face_position"
	IssuePartialFace    IssueType = "partial_face"
)

// Issue is a single flagged problem. Value and Threshold carry the measured
// quantity and the breached limit when the check is numeric.
type Issue struct {
	Type      IssueType `json:"type"`
	Severity  Severity  `json:"severity"`
	Message   string    `json:"message"`
	Value     *float64  `json:"value,omitempty"`
	Threshold *float64  `json:"threshold,omitempty"`
}

// CheckResult is the gate's verdict for one frame. It is a value object:
// built once, never mutated afterwards.
type CheckResult struct {
	IsValid         bool     `json:"is_valid"`
	Issues          []Issue  `json:"issues"`
	Confidence      int      `json:"confidence"` // 0-100 trust in the capture, distinct from feature scores
	Recommendations []string `json:"recommendations"`
}

// HasSeverity reports whether any issue carries the given severity.
func (r *CheckResult) HasSeverity(s Severity) bool {
	for _, issue := range r.Issues {
		if issue.Severity == s {
			return true
		}
	}
	return false
}

// HasIssue reports whether an issue of the given type is present.
func (r *CheckResult) HasIssue(t IssueType) bool {
	for _, issue := range r.Issues {
		if issue.Type == t {
			return true
		}
	}
	return false
}
