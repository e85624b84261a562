package pfm

import (
	"encoding/binary"
	"fmt"
	"math"
)

func (e Endian) byteOrder() binary.ByteOrder {
	if e == Big {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// decodePayload unpacks width*height*channels float32 samples from buf in
// the given byte order, then converts the on-disk bottom-to-top row order
// into the logical top-to-bottom order.
func decodePayload(buf []byte, width, height, channels int, endian Endian) ([]float32, error) {
	want := width * height * channels
	if len(buf)%4 != 0 || len(buf)/4 != want {
		return nil, fmt.Errorf("payload is %d bytes, want %d (%dx%d, %d channels): %w",
			len(buf), 4*want, width, height, channels, ErrPayloadSizeMismatch)
	}
	order := endian.byteOrder()
	data := make([]float32, want)
	for i := range data {
		if len(buf) < 4 {
			return nil, fmt.Errorf("sample %d of %d: %w", i, want, ErrTruncatedPayload)
		}
		data[i] = math.Float32frombits(order.Uint32(buf))
		buf = buf[4:]
	}
	flipRows(data, width, height, channels)
	return data, nil
}

// flipRows exchanges row r with row height-1-r, operating on whole rows of
// width*channels samples. Each pair is swapped exactly once, which makes the
// flip its own inverse; the middle row of an odd height stays put.
func flipRows(data []float32, width, height, channels int) {
	stride := width * channels
	for r := 0; r < height-1-r; r++ {
		top := data[r*stride : (r+1)*stride]
		bottom := data[(height-1-r)*stride : (height-r)*stride]
		for i := range top {
			top[i], bottom[i] = bottom[i], top[i]
		}
	}
}

// appendPayload serializes logical rows from last to first, so the stream
// carries the format's bottom-to-top order: one 4-byte word per sample in
// img's byte order, concatenated without padding.
func appendPayload(dst []byte, img *PFM) []byte {
	order := img.Endian.byteOrder()
	stride := img.Width * img.Channels()
	var word [4]byte
	for r := img.Height - 1; r >= 0; r-- {
		for _, s := range img.Data[r*stride : (r+1)*stride] {
			order.PutUint32(word[:], math.Float32bits(s))
			dst = append(dst, word[:]...)
		}
	}
	return dst
}
