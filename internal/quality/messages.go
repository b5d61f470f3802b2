package quality

// Messages holds every user-facing string the gate emits: one message per
// issue condition plus one guidance string per recommendable issue type.
// Replace the whole value to localize.
type Messages struct {
	// Issue messages
	NoFace        string
	MultipleFaces string
	TooDark       string
	TooBright     string
	LowContrast   string
	TooBlurry     string
	YawTooHigh    string
	PitchTooHigh  string
	RollTooHigh   string
	FaceTooSmall  string
	FaceTooLarge  string
	OffCenter     string
	PartialFace   string

	// Recommendations, one per issue type that has guidance
	AdviceLighting string
	AdviceAngle    string
	AdviceSize     string
	AdviceBlur     string

	// Emitted when the capture passes with no issues
	Positive string
}

// DefaultMessages are the English defaults.
var DefaultMessages = Messages{
	NoFace:        "no face detected in the frame",
	MultipleFaces: "more than one face detected",
	TooDark:       "image is too dark",
	TooBright:     "image is too bright",
	LowContrast:   "image contrast is too low",
	TooBlurry:     "image is too blurry",
	YawTooHigh:    "face is turned too far sideways",
	PitchTooHigh:  "face is tilted too far up or down",
	RollTooHigh:   "head is rotated too far",
	FaceTooSmall:  "face is too small in the frame",
	FaceTooLarge:  "face is too large in the frame",
	OffCenter:     "face is not centered",
	PartialFace:   "part of the face is outside the frame or hidden",

	AdviceLighting: "Move to an evenly lit area and avoid strong backlight.",
	AdviceAngle:    "Look straight at the camera and keep your head level.",
	AdviceSize:     "Adjust your distance so your face fills most of the frame.",
	AdviceBlur:     "Hold the camera steady and wait for it to focus.",

	Positive: "Great capture, the image is ready to use.",
}
