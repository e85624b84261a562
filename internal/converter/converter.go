package converter

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/xfmoulet/qoi"

	"github.com/merridan/pxmgo/pfm"
)

// ToImage renders a decoded PFM into an 8-bit image.Image. Each sample is
// multiplied by the scale factor, clamped to [0,1] and quantized; monochrome
// maps to Gray, RGB to NRGBA. The PFM's logical top-to-bottom row order maps
// straight onto image coordinates.
func ToImage(img *pfm.PFM) image.Image {
	if img.Color {
		out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
		for y := 0; y < img.Height; y++ {
			for x := 0; x < img.Width; x++ {
				i := (y*img.Width + x) * 3
				out.SetNRGBA(x, y, color.NRGBA{
					R: quantize(img.Data[i], img.ScaleFactor),
					G: quantize(img.Data[i+1], img.ScaleFactor),
					B: quantize(img.Data[i+2], img.ScaleFactor),
					A: 255,
				})
			}
		}
		return out
	}

	out := image.NewGray(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			out.SetGray(x, y, color.Gray{Y: quantize(img.Data[y*img.Width+x], img.ScaleFactor)})
		}
	}
	return out
}

// quantize maps a scaled float sample to an 8-bit channel value.
func quantize(v, scale float32) uint8 {
	f := v * scale
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(f*255 + 0.5)
}

// SaveImage saves an image to a file, choosing the encoder by extension:
// ".qoi" uses the QOI codec, everything else PNG.
func SaveImage(img image.Image, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(filename), ".qoi") {
		return qoi.Encode(file, img)
	}
	return png.Encode(file, img)
}
