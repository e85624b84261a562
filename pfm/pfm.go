// Package pfm implements the Portable Float Map image format: a short ASCII
// header (magic, width, height, signed scale) followed by a flat payload of
// 4-byte IEEE-754 floats. The sign of the scale token selects the byte order
// of the payload; the magnitude is the scale factor proper. Rows are stored
// bottom-to-top on disk and exposed top-to-bottom in memory.
package pfm

import "fmt"

// Endian is the byte order of the float samples in a PFM file.
type Endian int

const (
	Little Endian = iota
	Big
)

func (e Endian) String() string {
	if e == Big {
		return "big"
	}
	return "little"
}

// PFM is a decoded Portable Float Map image. Values are built either by
// Decode or through a Builder; both validate the data-length invariant, and
// a PFM is treated as immutable afterwards.
type PFM struct {
	// Width and Height of the image in pixels, both positive.
	Width, Height int
	// Color is true for RGB images (3 interleaved channels per pixel) and
	// false for monochrome (1 channel).
	Color bool
	// ScaleFactor is the magnitude of the header's scale token, always
	// positive. The sign lives in Endian.
	ScaleFactor float32
	// Endian is the byte order the payload was (or will be) stored in.
	Endian Endian
	// Data holds Width*Height*Channels() samples, top row first, left to
	// right within a row, channel-interleaved when Color is set. This is the
	// logical order, not the bottom-to-top on-disk order.
	Data []float32
}

// Channels returns the number of samples per pixel.
func (p *PFM) Channels() int {
	return channels(p.Color)
}

func channels(color bool) int {
	if color {
		return 3
	}
	return 1
}

// Decode parses a complete PFM byte buffer into an image value.
func Decode(buf []byte) (*PFM, error) {
	b, payload, err := parseHeader(buf)
	if err != nil {
		return nil, err
	}
	data, err := decodePayload(payload, b.width, b.height, channels(b.color), b.endian)
	if err != nil {
		return nil, err
	}
	return b.Data(data).Build()
}

// Encode serializes img into a complete PFM byte buffer: the textual header
// followed immediately by the float payload in img's byte order. The
// data-length invariant is re-checked so a value assembled without the
// builder cannot emit an inconsistent file.
func Encode(img *PFM) ([]byte, error) {
	want := img.Width * img.Height * img.Channels()
	if len(img.Data) != want {
		return nil, fmt.Errorf("pfm: data length %d, want %d (%dx%d, %d channels): %w",
			len(img.Data), want, img.Width, img.Height, img.Channels(), ErrDataLengthMismatch)
	}
	buf := appendHeader(make([]byte, 0, 32+4*want), img)
	return appendPayload(buf, img), nil
}
