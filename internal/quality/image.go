package quality

import (
	"math"

	"facemetry/internal/facerr"
)

// BT.601 luminance weights.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// AnalyzeImage computes pixel-level quality statistics over a row-major RGBA
// byte buffer. The alpha channel is ignored. A zero-area buffer or one
// shorter than width*height*4 bytes fails with invalid_image.
func AnalyzeImage(pix []byte, width, height int) (*ImageMetrics, error) {
	if width <= 0 || height <= 0 {
		return nil, facerr.Newf(facerr.CodeInvalidImage, "zero-area buffer %dx%d", width, height)
	}
	if len(pix) < width*height*4 {
		return nil, facerr.Newf(facerr.CodeInvalidImage,
			"pixel buffer has %d bytes, need %d for %dx%d RGBA", len(pix), width*height*4, width, height)
	}

	count := width * height
	luma := make([]float64, count)

	var lumaSum, lumaSqSum, satSum float64
	for i := 0; i < count; i++ {
		r := float64(pix[i*4])
		g := float64(pix[i*4+1])
		b := float64(pix[i*4+2])

		l := lumaR*r + lumaG*g + lumaB*b
		luma[i] = l
		lumaSum += l
		lumaSqSum += l * l

		maxC := math.Max(r, math.Max(g, b))
		minC := math.Min(r, math.Min(g, b))
		if maxC > 0 {
			satSum += (maxC - minC) / maxC
		}
	}

	n := float64(count)
	brightness := lumaSum / n

	// Population variance; floating point drift can push a uniform buffer a
	// hair below zero.
	variance := lumaSqSum/n - brightness*brightness
	if variance < 0 {
		variance = 0
	}

	return &ImageMetrics{
		Brightness: brightness,
		Contrast:   math.Sqrt(variance),
		Blur:       blurScore(luma, width, height),
		Saturation: satSum / n * 255,
		Noise:      noiseScore(luma, width, height),
	}, nil
}

// blurScore inverts the mean edge strength: the average over interior pixels
// of the absolute luminance difference toward the right and lower neighbors,
// mapped to [0,1] where 1 means no edges at all.
func blurScore(luma []float64, width, height int) float64 {
	var edgeSum float64
	var count int
	for y := 0; y < height-1; y++ {
		for x := 0; x < width-1; x++ {
			i := y*width + x
			edgeSum += math.Abs(luma[i]-luma[i+1]) + math.Abs(luma[i]-luma[i+width])
			count++
		}
	}
	if count == 0 {
		// A single row or column has no measurable edges.
		return 1
	}
	avgEdge := edgeSum / float64(count)
	return math.Max(0, math.Min(1, 1-avgEdge/255))
}

// noiseScore averages the luminance variance of 3x3 neighborhoods sampled at
// every 4th interior pixel per axis.
func noiseScore(luma []float64, width, height int) float64 {
	var varSum float64
	var samples int
	for y := 1; y < height-1; y += 4 {
		for x := 1; x < width-1; x += 4 {
			var sum, sqSum float64
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					l := luma[(y+dy)*width+(x+dx)]
					sum += l
					sqSum += l * l
				}
			}
			mean := sum / 9
			v := sqSum/9 - mean*mean
			if v > 0 {
				varSum += v
			}
			samples++
		}
	}
	if samples == 0 {
		return 0
	}
	return varSum / float64(samples)
}
