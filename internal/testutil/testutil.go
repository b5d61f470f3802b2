// Package testutil builds the synthetic fixtures shared by the package
// tests: a geometrically plausible frontal landmark set and simple frames
// with known pixel statistics.
package testutil

import (
	"facemetry/internal/capture"
	"facemetry/internal/landmark"
)

// Face returns a complete landmark set for a frontal, centered, symmetric
// face. Every measured quantity lands inside the default baseline bands and
// every gate check passes over a clean frame. Points not named below sit at
// the frame center.
func Face() landmark.Set {
	set := make(landmark.Set, landmark.MeshSize)
	for i := range set {
		set[i] = landmark.Point{X: 0.5, Y: 0.5}
	}

	place := map[int]landmark.Point{
		// Left eye ring: corners at 33/133, lids at 159/145.
		33:  {X: 0.36, Y: 0.45},
		145: {X: 0.40, Y: 0.465},
		133: {X: 0.44, Y: 0.45},
		159: {X: 0.40, Y: 0.435},
		7:   {X: 0.40, Y: 0.45},
		163: {X: 0.40, Y: 0.45},
		144: {X: 0.40, Y: 0.45},
		153: {X: 0.40, Y: 0.45},
		154: {X: 0.40, Y: 0.45},
		155: {X: 0.40, Y: 0.45},
		173: {X: 0.40, Y: 0.45},
		157: {X: 0.40, Y: 0.45},
		158: {X: 0.40, Y: 0.45},
		160: {X: 0.40, Y: 0.45},
		161: {X: 0.40, Y: 0.45},
		246: {X: 0.40, Y: 0.45},

		// Right eye ring, mirrored: corners at 362/263, lids at 386/374.
		362: {X: 0.56, Y: 0.45},
		374: {X: 0.60, Y: 0.465},
		263: {X: 0.64, Y: 0.45},
		386: {X: 0.60, Y: 0.435},
		382: {X: 0.60, Y: 0.45},
		381: {X: 0.60, Y: 0.45},
		380: {X: 0.60, Y: 0.45},
		373: {X: 0.60, Y: 0.45},
		390: {X: 0.60, Y: 0.45},
		249: {X: 0.60, Y: 0.45},
		466: {X: 0.60, Y: 0.45},
		388: {X: 0.60, Y: 0.45},
		387: {X: 0.60, Y: 0.45},
		385: {X: 0.60, Y: 0.45},
		384: {X: 0.60, Y: 0.45},
		398: {X: 0.60, Y: 0.45},

		// Nose tip group; the tip itself carries depth.
		1:  {X: 0.50, Y: 0.55, Z: Float(0.04)},
		4:  {X: 0.50, Y: 0.55},
		5:  {X: 0.50, Y: 0.55},
		19: {X: 0.50, Y: 0.55},
		94: {X: 0.50, Y: 0.55},

		// Nose bridge down the midline; width pair at 51/281.
		168: {X: 0.50, Y: 0.40},
		6:   {X: 0.50, Y: 0.43},
		197: {X: 0.50, Y: 0.46},
		195: {X: 0.50, Y: 0.49},
		51:  {X: 0.48, Y: 0.52},
		281: {X: 0.52, Y: 0.52},

		// Nostril rings; ala span 64->212 and 294->432.
		64:  {X: 0.45, Y: 0.55},
		212: {X: 0.48, Y: 0.56},
		102: {X: 0.47, Y: 0.555},
		49:  {X: 0.47, Y: 0.555},
		129: {X: 0.47, Y: 0.555},
		98:  {X: 0.47, Y: 0.555},
		165: {X: 0.47, Y: 0.555},
		203: {X: 0.47, Y: 0.555},
		206: {X: 0.47, Y: 0.555},
		216: {X: 0.47, Y: 0.555},

		294: {X: 0.55, Y: 0.55},
		432: {X: 0.52, Y: 0.56},
		331: {X: 0.53, Y: 0.555},
		279: {X: 0.53, Y: 0.555},
		358: {X: 0.53, Y: 0.555},
		327: {X: 0.53, Y: 0.555},
		391: {X: 0.53, Y: 0.555},
		423: {X: 0.53, Y: 0.555},
		426: {X: 0.53, Y: 0.555},
		436: {X: 0.53, Y: 0.555},

		// Jaw chains from ear level to chin level, mirrored.
		234: {X: 0.26, Y: 0.50},
		93:  {X: 0.27, Y: 0.55},
		132: {X: 0.28, Y: 0.60},
		58:  {X: 0.30, Y: 0.65},
		172: {X: 0.33, Y: 0.70},
		136: {X: 0.36, Y: 0.74},
		150: {X: 0.40, Y: 0.78},
		149: {X: 0.43, Y: 0.80},
		176: {X: 0.46, Y: 0.82},
		148: {X: 0.48, Y: 0.83},

		454: {X: 0.74, Y: 0.50},
		323: {X: 0.73, Y: 0.55},
		361: {X: 0.72, Y: 0.60},
		288: {X: 0.70, Y: 0.65},
		397: {X: 0.67, Y: 0.70},
		365: {X: 0.64, Y: 0.74},
		379: {X: 0.60, Y: 0.78},
		378: {X: 0.57, Y: 0.80},
		400: {X: 0.54, Y: 0.82},
		377: {X: 0.52, Y: 0.83},

		// Chin group; width pair at 201/421.
		152: {X: 0.50, Y: 0.85},
		175: {X: 0.50, Y: 0.83},
		199: {X: 0.50, Y: 0.81},
		200: {X: 0.50, Y: 0.79},
		201: {X: 0.44, Y: 0.72},
		421: {X: 0.56, Y: 0.72},
		418: {X: 0.47, Y: 0.76},
		424: {X: 0.53, Y: 0.76},

		// Face outline arc points not shared with the jaw or chin groups.
		10:  {X: 0.50, Y: 0.22},
		338: {X: 0.56, Y: 0.225},
		297: {X: 0.61, Y: 0.235},
		332: {X: 0.66, Y: 0.25},
		284: {X: 0.70, Y: 0.28},
		251: {X: 0.72, Y: 0.33},
		389: {X: 0.73, Y: 0.40},
		356: {X: 0.735, Y: 0.45},
		127: {X: 0.265, Y: 0.45},
		162: {X: 0.27, Y: 0.40},
		21:  {X: 0.28, Y: 0.33},
		54:  {X: 0.30, Y: 0.28},
		103: {X: 0.34, Y: 0.25},
		67:  {X: 0.39, Y: 0.235},
		109: {X: 0.44, Y: 0.225},
	}

	for idx, p := range place {
		set[idx] = p
	}
	return set
}

// Checkerboard returns a frame alternating single black and white pixels:
// sharp edges everywhere, mid brightness, maximal contrast.
func Checkerboard(width, height int) capture.Frame {
	pix := make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 4
			var v byte
			if (x+y)%2 == 1 {
				v = 255
			}
			pix[i] = v
			pix[i+1] = v
			pix[i+2] = v
			pix[i+3] = 255
		}
	}
	return capture.Frame{Pix: pix, Width: width, Height: height}
}

// Uniform returns a frame filled with one color.
func Uniform(width, height int, r, g, b byte) capture.Frame {
	pix := make([]byte, width*height*4)
	for i := 0; i < width*height; i++ {
		pix[i*4] = r
		pix[i*4+1] = g
		pix[i*4+2] = b
		pix[i*4+3] = 255
	}
	return capture.Frame{Pix: pix, Width: width, Height: height}
}

// Float returns a pointer to v, for the optional landmark fields.
func Float(v float64) *float64 {
	return &v
}
