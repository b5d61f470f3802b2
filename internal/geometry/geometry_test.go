package geometry_test

import (
	"testing"

	"facemetry/internal/geometry"
	"facemetry/internal/landmark"
	"facemetry/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		p1   landmark.Point
		p2   landmark.Point
		want float64
	}{
		{
			name: "3-4-5 triangle",
			p1:   landmark.Point{X: 0, Y: 0},
			p2:   landmark.Point{X: 0.3, Y: 0.4},
			want: 0.5,
		},
		{
			name: "coincident points",
			p1:   landmark.Point{X: 0.5, Y: 0.5},
			p2:   landmark.Point{X: 0.5, Y: 0.5},
			want: 0,
		},
		{
			name: "depth is ignored",
			p1:   landmark.Point{X: 0.1, Y: 0.2, Z: testutil.Float(0.9)},
			p2:   landmark.Point{X: 0.4, Y: 0.2, Z: testutil.Float(-0.9)},
			want: 0.3,
		},
		{
			name: "symmetric in argument order",
			p1:   landmark.Point{X: 0.8, Y: 0.1},
			p2:   landmark.Point{X: 0.2, Y: 0.1},
			want: 0.6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, geometry.Distance(tt.p1, tt.p2), 1e-12)
		})
	}
}

func TestAngleDeg(t *testing.T) {
	tests := []struct {
		name   string
		p1     landmark.Point
		center landmark.Point
		p2     landmark.Point
		want   float64
	}{
		{
			name:   "right angle",
			p1:     landmark.Point{X: 1, Y: 0},
			center: landmark.Point{X: 0, Y: 0},
			p2:     landmark.Point{X: 0, Y: 1},
			want:   90,
		},
		{
			name:   "opposite rays",
			p1:     landmark.Point{X: 1, Y: 0},
			center: landmark.Point{X: 0, Y: 0},
			p2:     landmark.Point{X: -1, Y: 0},
			want:   180,
		},
		{
			name:   "parallel rays",
			p1:     landmark.Point{X: 0.2, Y: 0.2},
			center: landmark.Point{X: 0, Y: 0},
			p2:     landmark.Point{X: 0.7, Y: 0.7},
			want:   0,
		},
		{
			name:   "60 degrees from equilateral layout",
			p1:     landmark.Point{X: 1, Y: 0},
			center: landmark.Point{X: 0, Y: 0},
			p2:     landmark.Point{X: 0.5, Y: 0.8660254037844386},
			want:   60,
		},
		{
			name:   "zero-length first ray is degenerate",
			p1:     landmark.Point{X: 0.4, Y: 0.4},
			center: landmark.Point{X: 0.4, Y: 0.4},
			p2:     landmark.Point{X: 1, Y: 1},
			want:   0,
		},
		{
			name:   "zero-length second ray is degenerate",
			p1:     landmark.Point{X: 1, Y: 1},
			center: landmark.Point{X: 0.4, Y: 0.4},
			p2:     landmark.Point{X: 0.4, Y: 0.4},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := geometry.AngleDeg(tt.p1, tt.center, tt.p2)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 180.0)
		})
	}
}

func TestTiltDeg(t *testing.T) {
	tests := []struct {
		name string
		p1   landmark.Point
		p2   landmark.Point
		want float64
	}{
		{
			name: "level line",
			p1:   landmark.Point{X: 0.3, Y: 0.5},
			p2:   landmark.Point{X: 0.7, Y: 0.5},
			want: 0,
		},
		{
			name: "downward slope is positive",
			p1:   landmark.Point{X: 0, Y: 0},
			p2:   landmark.Point{X: 0.5, Y: 0.5},
			want: 45,
		},
		{
			name: "upward slope is negative",
			p1:   landmark.Point{X: 0, Y: 0.5},
			p2:   landmark.Point{X: 0.5, Y: 0},
			want: -45,
		},
		{
			name: "vertical drop",
			p1:   landmark.Point{X: 0.5, Y: 0.1},
			p2:   landmark.Point{X: 0.5, Y: 0.9},
			want: 90,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, geometry.TiltDeg(tt.p1, tt.p2), 1e-9)
		})
	}
}

func TestCentroid(t *testing.T) {
	t.Run("empty slice yields the zero point", func(t *testing.T) {
		got := geometry.Centroid(nil)
		assert.Equal(t, 0.0, got.X)
		assert.Equal(t, 0.0, got.Y)
	})

	t.Run("single point is its own centroid", func(t *testing.T) {
		got := geometry.Centroid([]landmark.Point{{X: 0.3, Y: 0.7, Z: testutil.Float(0.2)}})
		assert.InDelta(t, 0.3, got.X, 1e-12)
		assert.InDelta(t, 0.7, got.Y, 1e-12)
		require.NotNil(t, got.Z)
		assert.InDelta(t, 0.2, *got.Z, 1e-12)
	})

	t.Run("missing depth counts as zero", func(t *testing.T) {
		points := []landmark.Point{
			{X: 0, Y: 0, Z: testutil.Float(0.4)},
			{X: 1, Y: 1},
		}
		got := geometry.Centroid(points)
		assert.InDelta(t, 0.5, got.X, 1e-12)
		assert.InDelta(t, 0.5, got.Y, 1e-12)
		require.NotNil(t, got.Z)
		assert.InDelta(t, 0.2, *got.Z, 1e-12)
	})

	t.Run("mean of four corners", func(t *testing.T) {
		points := []landmark.Point{
			{X: 0, Y: 0},
			{X: 1, Y: 0},
			{X: 1, Y: 1},
			{X: 0, Y: 1},
		}
		got := geometry.Centroid(points)
		assert.InDelta(t, 0.5, got.X, 1e-12)
		assert.InDelta(t, 0.5, got.Y, 1e-12)
	})
}
