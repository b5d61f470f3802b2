// Package capture decodes capture images into the row-major RGBA frame
// format the engine consumes, correcting EXIF orientation and bounding the
// decoded size.
package capture

import (
	"image"

	"github.com/disintegration/imaging"
)

// Frame is a decoded image as a row-major RGBA byte buffer with its pixel
// dimensions.
type Frame struct {
	Pix    []byte
	Width  int
	Height int
}

// FromImage converts any decoded image into a frame. The conversion always
// produces a tightly packed buffer of Width*Height*4 bytes.
func FromImage(img image.Image) Frame {
	nrgba := imaging.Clone(img)
	bounds := nrgba.Bounds()
	return Frame{
		Pix:    nrgba.Pix,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}
}
