package capture

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/webp" // Register WebP decoder

	"facemetry/internal/facerr"
)

// DefaultMaxDimension bounds the longer side of a decoded frame. Larger
// captures are downscaled before analysis; landmark coordinates are
// normalized, so scaling does not move them.
const DefaultMaxDimension = 1280

// LoaderConfig holds configuration for the image loader.
type LoaderConfig struct {
	MaxDimension int // bound on the longer side after decode; 0 keeps the original size
}

// Loader decodes capture images into frames.
type Loader struct {
	maxDimension int
}

// NewLoader creates a loader.
func NewLoader(config LoaderConfig) *Loader {
	return &Loader{maxDimension: config.MaxDimension}
}

// Load reads and decodes one image file.
func (l *Loader) Load(path string) (Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return Frame{}, facerr.Wrap(facerr.CodeInvalidImage, err)
	}
	defer f.Close()

	return l.Decode(f)
}

// Decode decodes an image stream, applies its EXIF orientation and bounds
// the result size. Orientation parse failures fall back to the upright
// assumption rather than failing the pipeline.
func (l *Loader) Decode(r io.Reader) (Frame, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Frame{}, facerr.Wrap(facerr.CodeInvalidImage, fmt.Errorf("read image data: %w", err))
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Frame{}, facerr.Wrap(facerr.CodeInvalidImage, fmt.Errorf("decode image: %w", err))
	}

	img = applyOrientation(img, readOrientation(bytes.NewReader(data)))

	if l.maxDimension > 0 {
		bounds := img.Bounds()
		if bounds.Dx() > l.maxDimension || bounds.Dy() > l.maxDimension {
			img = imaging.Fit(img, l.maxDimension, l.maxDimension, imaging.Lanczos)
		}
	}

	frame := FromImage(img)
	if frame.Width == 0 || frame.Height == 0 {
		return Frame{}, facerr.New(facerr.CodeInvalidImage, "decoded image has zero area")
	}
	return frame, nil
}

// readOrientation returns the EXIF orientation tag value, or 1 (upright)
// when the data carries none or the metadata cannot be parsed.
func readOrientation(r io.Reader) int {
	meta, err := exif.Decode(r)
	if err != nil {
		return 1
	}
	tag, err := meta.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	orientation, err := tag.Int(0)
	if err != nil || orientation < 1 || orientation > 8 {
		return 1
	}
	return orientation
}

// applyOrientation maps the eight EXIF orientation cases onto their
// correcting transforms.
func applyOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.Transpose(img)
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.Transverse(img)
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}
