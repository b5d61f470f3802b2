package feature_test

import (
	"testing"

	"facemetry/internal/facerr"
	"facemetry/internal/feature"
	"facemetry/internal/landmark"
	"facemetry/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFrontalFace(t *testing.T) {
	extractor := feature.NewExtractor()

	features, err := extractor.Extract(testutil.Face())
	require.NoError(t, err)
	require.NotNil(t, features)

	eyes := features.Eyes
	assert.InDelta(t, 0.08, eyes.Left.Width, 1e-9, "left eye width mismatch")
	assert.InDelta(t, 0.03, eyes.Left.Height, 1e-9, "left eye height mismatch")
	assert.InDelta(t, 8.0/3.0, eyes.Left.AspectRatio, 1e-9, "left aspect ratio mismatch")
	assert.Equal(t, 0.0, eyes.Left.Tilt, "level eye corners give zero tilt")
	assert.Equal(t, 0.0, eyes.Right.Tilt)
	assert.InDelta(t, 1.0, eyes.Symmetry, 1e-9, "mirrored eyes should measure equal widths")
	assert.InDelta(t, 0.2, eyes.InterpupillaryDistance, 1e-9, "ring centroids sit at x=0.4 and x=0.6")
	assert.Len(t, eyes.Left.Landmarks, 16)
	assert.Len(t, eyes.Right.Landmarks, 16)

	nose := features.Nose
	assert.InDelta(t, 0.1, nose.Width, 1e-9, "ala-to-ala width mismatch")
	assert.InDelta(t, 0.15, nose.Length, 1e-9, "bridge-to-tip length mismatch")
	assert.InDelta(t, 0.04, nose.TipProjection, 1e-9, "tip depth mismatch")
	assert.InDelta(t, 0.04, nose.BridgeWidth, 1e-9, "bridge width mismatch")
	assert.InDelta(t, 1.0, nose.NostrilSymmetry, 1e-9, "mirrored nostrils should span equally")
	assert.Len(t, nose.Landmarks, 32, "tip plus bridge plus both nostril rings")

	jaw := features.Jaw
	assert.InDelta(t, 0.48, jaw.Width, 1e-9, "jaw width mismatch")
	assert.InDelta(t, 68.87797861760724, jaw.Angle, 1e-9, "chin angle mismatch")
	assert.InDelta(t, 0.25, jaw.LowerFaceRatio, 1e-9, "chin width over jaw width mismatch")
	assert.InDelta(t, 1.0, jaw.Asymmetry, 1e-9, "mirrored jaw chains should have equal perimeters")
	assert.Equal(t, 0.0, jaw.ChinProjection, "chin carries no depth in the fixture")
	assert.Len(t, jaw.Landmarks, 28, "both jaw chains plus the chin group")
}

func TestExtractAsymmetricEyes(t *testing.T) {
	set := testutil.Face()
	// Pull the left outer corner outward so the left eye measures 0.10 wide
	// against the right eye's 0.08.
	set[33].X = 0.34

	features, err := feature.NewExtractor().Extract(set)
	require.NoError(t, err)

	assert.InDelta(t, 0.10, features.Eyes.Left.Width, 1e-9)
	assert.InDelta(t, 1.25, features.Eyes.Symmetry, 1e-9)
}

func TestExtractTiltedEye(t *testing.T) {
	set := testutil.Face()
	// Drop the left inner corner below the outer corner: a downward
	// corner-to-corner line reads as positive tilt.
	set[133].Y = 0.53

	features, err := feature.NewExtractor().Extract(set)
	require.NoError(t, err)

	assert.InDelta(t, 45.0, features.Eyes.Left.Tilt, 1e-9)
	assert.Equal(t, 0.0, features.Eyes.Right.Tilt, "other eye is unaffected")
}

func TestExtractRejectsShortSets(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{name: "empty set", size: 0},
		{name: "sparse detector output", size: 10},
		{name: "one point short", size: 467},
	}

	extractor := feature.NewExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			features, err := extractor.Extract(make(landmark.Set, tt.size))
			assert.True(t, facerr.HasCode(err, facerr.CodeInsufficientLandmarks))
			assert.Nil(t, features, "no partial result on error")
		})
	}
}
