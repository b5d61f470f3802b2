package landmark

import (
	"facemetry/internal/facerr"
)

// ============================================================================
// Landmark Index Registry
// ============================================================================
//
// Named, ordered index groups selecting anatomical regions out of a full
// 468-point landmark set. The tables are static configuration: they are never
// recomputed, and accessors return copies so callers cannot mutate them.
//
// Ordering conventions relied on by the feature and face analyzers:
//   - eye groups are 16-point rings; outer corner at position 0, bottom lid
//     at EyeBottomPos, inner corner at EyeInnerPos, top lid at EyeTopPos
//   - nostril groups are 10-point rings; the ala span runs position 0 to
//     NostrilInnerPos
//   - nose bridge starts at the bridge top; the bridge width pair sits at
//     BridgeLeftPos/BridgeRightPos
//   - nose tip and chin groups start at the tip point; the chin width pair
//     sits at ChinLeftPos/ChinRightPos
//   - jaw groups run ear level to chin level, starting at the lateral extreme
//   - the face outline starts at the forehead top; lateral extremes sit at
//     OutlineRightPos/OutlineLeftPos and the chin bottom at OutlineBottomPos
// ============================================================================

// Region names an anatomical index group.
type Region string

const (
	LeftEye      Region = "left_eye"
	RightEye     Region = "right_eye"
	NoseTip      Region = "nose_tip"
	NoseBridge   Region = "nose_bridge"
	LeftNostril  Region = "left_nostril"
	RightNostril Region = "right_nostril"
	LeftJaw      Region = "left_jaw"
	RightJaw     Region = "right_jaw"
	Chin         Region = "chin"
	FaceOutline  Region = "face_outline"
)

// Fixed positions inside the region index lists.
const (
	EyeBottomPos = 4
	EyeInnerPos  = 8
	EyeTopPos    = 12

	NostrilInnerPos = 9

	BridgeLeftPos  = 5
	BridgeRightPos = 6

	ChinLeftPos  = 4
	ChinRightPos = 5

	OutlineRightPos  = 8
	OutlineBottomPos = 18
	OutlineLeftPos   = 28
)

var regionIndices = map[Region][]int{
	LeftEye:      {33, 7, 163, 144, 145, 153, 154, 155, 133, 173, 157, 158, 159, 160, 161, 246},
	RightEye:     {362, 382, 381, 380, 374, 373, 390, 249, 263, 466, 388, 387, 386, 385, 384, 398},
	NoseTip:      {1, 4, 5, 19, 94},
	NoseBridge:   {168, 6, 197, 195, 5, 51, 281},
	LeftNostril:  {64, 102, 49, 129, 98, 165, 203, 206, 216, 212},
	RightNostril: {294, 331, 279, 358, 327, 391, 423, 426, 436, 432},
	LeftJaw:      {234, 93, 132, 58, 172, 136, 150, 149, 176, 148},
	RightJaw:     {454, 323, 361, 288, 397, 365, 379, 378, 400, 377},
	Chin:         {152, 175, 199, 200, 201, 421, 418, 424},
	FaceOutline: {
		10, 338, 297, 332, 284, 251, 389, 356, 454, 323, 361, 288,
		397, 365, 379, 378, 400, 377, 152, 148, 176, 149, 150, 136,
		172, 58, 132, 93, 234, 127, 162, 21, 54, 103, 67, 109,
	},
}

// regionOrder keeps enumeration stable across calls.
var regionOrder = []Region{
	LeftEye, RightEye, NoseTip, NoseBridge, LeftNostril, RightNostril,
	LeftJaw, RightJaw, Chin, FaceOutline,
}

// Regions returns every named region in a stable order.
func Regions() []Region {
	out := make([]Region, len(regionOrder))
	copy(out, regionOrder)
	return out
}

// Indices returns a copy of the region's ordered index list. Unknown regions
// yield nil.
func Indices(r Region) []int {
	src, ok := regionIndices[r]
	if !ok {
		return nil
	}
	out := make([]int, len(src))
	copy(out, src)
	return out
}

// Pick resolves a region's points out of a landmark set, preserving the
// registry order. An index outside the set marks a malformed set and fails
// with a missing_landmark error.
func Pick(set Set, r Region) ([]Point, error) {
	indices, ok := regionIndices[r]
	if !ok {
		return nil, facerr.Newf(facerr.CodeInvalidInput, "unknown landmark region %q", r)
	}
	out := make([]Point, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= len(set) {
			return nil, facerr.Newf(facerr.CodeMissingLandmark,
				"region %s index %d outside landmark set of length %d", r, idx, len(set))
		}
		out[i] = set[idx]
	}
	return out, nil
}

// KeyIndices returns the indices used for the completeness check: the first
// four entries of each eye group, the nose tip group and the chin group.
func KeyIndices() []int {
	out := make([]int, 0, 16)
	for _, r := range []Region{LeftEye, RightEye, NoseTip, Chin} {
		out = append(out, regionIndices[r][:4]...)
	}
	return out
}
