package quality

import (
	"facemetry/internal/facerr"
)

// Thresholds are the named limits the gate compares metrics against.
// Angles are degrees, brightness and contrast share the 0-255 luminance
// scale, face size limits are fractions of the image dimensions.
type Thresholds struct {
	MaxYaw   float64 `json:"max_yaw" validate:"gte=0"`
	MaxPitch float64 `json:"max_pitch" validate:"gte=0"`
	MaxRoll  float64 `json:"max_roll" validate:"gte=0"`

	MinBrightness float64 `json:"min_brightness" validate:"gte=0"`
	MaxBrightness float64 `json:"max_brightness" validate:"gtefield=MinBrightness"`
	MinContrast   float64 `json:"min_contrast" validate:"gte=0"`
	MaxBlur       float64 `json:"max_blur" validate:"gte=0,lte=1"`

	MinFaceWidth  float64 `json:"min_face_width" validate:"gte=0"`
	MaxFaceWidth  float64 `json:"max_face_width" validate:"gtefield=MinFaceWidth"`
	MinFaceHeight float64 `json:"min_face_height" validate:"gte=0"`
	MaxFaceHeight float64 `json:"max_face_height" validate:"gtefield=MinFaceHeight"`

	CenterTolerance float64 `json:"center_tolerance" validate:"gte=0"`
	MinCompleteness float64 `json:"min_completeness" validate:"gte=0,lte=1"`
}

// DefaultThresholds are the documented capture limits.
var DefaultThresholds = Thresholds{
	MaxYaw:          15,
	MaxPitch:        15,
	MaxRoll:         10,
	MinBrightness:   80,
	MaxBrightness:   200,
	MinContrast:     30,
	MaxBlur:         0.1,
	MinFaceWidth:    0.3,
	MaxFaceWidth:    0.8,
	MinFaceHeight:   0.4,
	MaxFaceHeight:   0.9,
	CenterTolerance: 0.15,
	MinCompleteness: 0.8,
}

// Validate rejects inverted bands and limits outside their domain.
func (t Thresholds) Validate() error {
	if t.MaxYaw < 0 || t.MaxPitch < 0 || t.MaxRoll < 0 {
		return facerr.New(facerr.CodeInvalidConfig, "angle limits must be non-negative")
	}
	if t.MinBrightness > t.MaxBrightness {
		return facerr.Newf(facerr.CodeInvalidConfig,
			"brightness band inverted: min %g above max %g", t.MinBrightness, t.MaxBrightness)
	}
	if t.MinContrast < 0 {
		return facerr.New(facerr.CodeInvalidConfig, "min contrast must be non-negative")
	}
	if t.MaxBlur < 0 || t.MaxBlur > 1 {
		return facerr.Newf(facerr.CodeInvalidConfig, "max blur %g outside [0,1]", t.MaxBlur)
	}
	if t.MinFaceWidth > t.MaxFaceWidth {
		return facerr.Newf(facerr.CodeInvalidConfig,
			"face width band inverted: min %g above max %g", t.MinFaceWidth, t.MaxFaceWidth)
	}
	if t.MinFaceHeight > t.MaxFaceHeight {
		return facerr.Newf(facerr.CodeInvalidConfig,
			"face height band inverted: min %g above max %g", t.MinFaceHeight, t.MaxFaceHeight)
	}
	if t.CenterTolerance < 0 {
		return facerr.New(facerr.CodeInvalidConfig, "center tolerance must be non-negative")
	}
	if t.MinCompleteness < 0 || t.MinCompleteness > 1 {
		return facerr.Newf(facerr.CodeInvalidConfig, "min completeness %g outside [0,1]", t.MinCompleteness)
	}
	return nil
}
