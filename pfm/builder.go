package pfm

import "fmt"

// Builder accumulates the fields of a PFM value, each settable independently
// and in any order, and defers the data-length invariant to Build. Size and
// Scale panic on arguments no correct caller can produce (programmer error,
// not malformed input); Build is the single recoverable validation point.
type Builder struct {
	width, height int
	color         bool
	scaleFactor   float32
	endian        Endian
	data          []float32
}

// NewBuilder returns a builder with the historical defaults: color, scale
// factor 1, little endian, no data.
func NewBuilder() *Builder {
	return &Builder{color: true, scaleFactor: 1, endian: Little}
}

// Size sets the image dimensions. Both must be strictly positive.
func (b *Builder) Size(width, height int) *Builder {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("pfm: builder size %dx%d must be positive", width, height))
	}
	b.width = width
	b.height = height
	return b
}

// Color selects RGB (true) or monochrome (false).
func (b *Builder) Color(color bool) *Builder {
	b.color = color
	return b
}

// Scale sets the scale factor and byte order together, the way the header
// encodes them: a positive scale means big endian, a negative one little
// endian, and the magnitude is stored as the scale factor. Zero panics.
func (b *Builder) Scale(scale float32) *Builder {
	if scale == 0 {
		panic("pfm: builder scale must be non-zero")
	}
	if scale > 0 {
		b.endian = Big
		b.scaleFactor = scale
	} else {
		b.endian = Little
		b.scaleFactor = -scale
	}
	return b
}

// Data sets the raw sample slice. Length is checked at Build.
func (b *Builder) Data(data []float32) *Builder {
	b.data = data
	return b
}

// Build validates that the sample count matches width*height*channels and
// yields the finished image value. Construction is all-or-nothing; a failed
// Build exposes no partial value.
func (b *Builder) Build() (*PFM, error) {
	want := b.width * b.height * channels(b.color)
	if len(b.data) != want {
		return nil, fmt.Errorf("pfm: data length %d, want %d (%dx%d, %d channels): %w",
			len(b.data), want, b.width, b.height, channels(b.color), ErrDataLengthMismatch)
	}
	return &PFM{
		Width:       b.width,
		Height:      b.height,
		Color:       b.color,
		ScaleFactor: b.scaleFactor,
		Endian:      b.endian,
		Data:        b.data,
	}, nil
}
