package landmark_test

import (
	"testing"

	"facemetry/internal/facerr"
	"facemetry/internal/landmark"
	"facemetry/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointDepth(t *testing.T) {
	assert.Equal(t, 0.0, landmark.Point{}.Depth(), "missing depth reads as zero")
	assert.Equal(t, -0.03, landmark.Point{Z: testutil.Float(-0.03)}.Depth())
}

func TestPointVisible(t *testing.T) {
	tests := []struct {
		name  string
		point landmark.Point
		want  bool
	}{
		{name: "missing visibility counts as visible", point: landmark.Point{}, want: true},
		{name: "high visibility", point: landmark.Point{Visibility: testutil.Float(0.9)}, want: true},
		{name: "threshold is exclusive", point: landmark.Point{Visibility: testutil.Float(0.5)}, want: false},
		{name: "low visibility", point: landmark.Point{Visibility: testutil.Float(0.1)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.point.Visible())
		})
	}
}

func TestPointInFrame(t *testing.T) {
	tests := []struct {
		name  string
		point landmark.Point
		want  bool
	}{
		{name: "interior", point: landmark.Point{X: 0.5, Y: 0.5}, want: true},
		{name: "on the boundary", point: landmark.Point{X: 0, Y: 1}, want: true},
		{name: "left of frame", point: landmark.Point{X: -0.01, Y: 0.5}, want: false},
		{name: "below frame", point: landmark.Point{X: 0.5, Y: 1.2}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.point.InFrame())
		})
	}
}

func TestRegionsOrderAndIsolation(t *testing.T) {
	want := []landmark.Region{
		landmark.LeftEye, landmark.RightEye, landmark.NoseTip, landmark.NoseBridge,
		landmark.LeftNostril, landmark.RightNostril, landmark.LeftJaw,
		landmark.RightJaw, landmark.Chin, landmark.FaceOutline,
	}
	assert.Equal(t, want, landmark.Regions())

	got := landmark.Regions()
	got[0] = landmark.Region("mutated")
	assert.Equal(t, want, landmark.Regions(), "callers must receive a copy")
}

func TestIndicesPositions(t *testing.T) {
	tests := []struct {
		name    string
		region  landmark.Region
		length  int
		pos     int
		wantIdx int
	}{
		{name: "left eye outer corner", region: landmark.LeftEye, length: 16, pos: 0, wantIdx: 33},
		{name: "left eye bottom lid", region: landmark.LeftEye, length: 16, pos: landmark.EyeBottomPos, wantIdx: 145},
		{name: "left eye inner corner", region: landmark.LeftEye, length: 16, pos: landmark.EyeInnerPos, wantIdx: 133},
		{name: "left eye top lid", region: landmark.LeftEye, length: 16, pos: landmark.EyeTopPos, wantIdx: 159},
		{name: "right eye inner corner", region: landmark.RightEye, length: 16, pos: 0, wantIdx: 362},
		{name: "right eye outer corner", region: landmark.RightEye, length: 16, pos: landmark.EyeInnerPos, wantIdx: 263},
		{name: "right eye top lid", region: landmark.RightEye, length: 16, pos: landmark.EyeTopPos, wantIdx: 386},
		{name: "nose tip point", region: landmark.NoseTip, length: 5, pos: 0, wantIdx: 1},
		{name: "bridge top", region: landmark.NoseBridge, length: 7, pos: 0, wantIdx: 168},
		{name: "bridge left width point", region: landmark.NoseBridge, length: 7, pos: landmark.BridgeLeftPos, wantIdx: 51},
		{name: "bridge right width point", region: landmark.NoseBridge, length: 7, pos: landmark.BridgeRightPos, wantIdx: 281},
		{name: "left nostril ala start", region: landmark.LeftNostril, length: 10, pos: 0, wantIdx: 64},
		{name: "left nostril ala end", region: landmark.LeftNostril, length: 10, pos: landmark.NostrilInnerPos, wantIdx: 212},
		{name: "right nostril ala start", region: landmark.RightNostril, length: 10, pos: 0, wantIdx: 294},
		{name: "right nostril ala end", region: landmark.RightNostril, length: 10, pos: landmark.NostrilInnerPos, wantIdx: 432},
		{name: "left jaw lateral extreme", region: landmark.LeftJaw, length: 10, pos: 0, wantIdx: 234},
		{name: "right jaw lateral extreme", region: landmark.RightJaw, length: 10, pos: 0, wantIdx: 454},
		{name: "chin tip", region: landmark.Chin, length: 8, pos: 0, wantIdx: 152},
		{name: "chin left width point", region: landmark.Chin, length: 8, pos: landmark.ChinLeftPos, wantIdx: 201},
		{name: "chin right width point", region: landmark.Chin, length: 8, pos: landmark.ChinRightPos, wantIdx: 421},
		{name: "outline forehead top", region: landmark.FaceOutline, length: 36, pos: 0, wantIdx: 10},
		{name: "outline right extreme", region: landmark.FaceOutline, length: 36, pos: landmark.OutlineRightPos, wantIdx: 454},
		{name: "outline chin bottom", region: landmark.FaceOutline, length: 36, pos: landmark.OutlineBottomPos, wantIdx: 152},
		{name: "outline left extreme", region: landmark.FaceOutline, length: 36, pos: landmark.OutlineLeftPos, wantIdx: 234},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			indices := landmark.Indices(tt.region)
			require.Len(t, indices, tt.length)
			assert.Equal(t, tt.wantIdx, indices[tt.pos])
		})
	}
}

func TestIndicesUnknownRegion(t *testing.T) {
	assert.Nil(t, landmark.Indices(landmark.Region("forehead")))
}

func TestIndicesIsolation(t *testing.T) {
	got := landmark.Indices(landmark.NoseTip)
	got[0] = 999
	assert.Equal(t, 1, landmark.Indices(landmark.NoseTip)[0], "callers must receive a copy")
}

func TestPick(t *testing.T) {
	// Fingerprint each point with its own index so ordering is observable.
	set := make(landmark.Set, landmark.MeshSize)
	for i := range set {
		set[i] = landmark.Point{X: float64(i) / 1000, Y: 0.5}
	}

	points, err := landmark.Pick(set, landmark.LeftJaw)
	require.NoError(t, err)
	require.Len(t, points, 10)
	assert.Equal(t, 0.234, points[0].X)
	assert.Equal(t, 0.093, points[1].X)
	assert.Equal(t, 0.148, points[9].X)
}

func TestPickShortSet(t *testing.T) {
	set := make(landmark.Set, 50)
	_, err := landmark.Pick(set, landmark.RightEye)
	assert.True(t, facerr.HasCode(err, facerr.CodeMissingLandmark))
}

func TestPickUnknownRegion(t *testing.T) {
	set := make(landmark.Set, landmark.MeshSize)
	_, err := landmark.Pick(set, landmark.Region("cheek"))
	assert.True(t, facerr.HasCode(err, facerr.CodeInvalidInput))
}

func TestKeyIndices(t *testing.T) {
	want := []int{
		33, 7, 163, 144,
		362, 382, 381, 380,
		1, 4, 5, 19,
		152, 175, 199, 200,
	}
	assert.Equal(t, want, landmark.KeyIndices())
}
