package pfm

import (
	"errors"
	"reflect"
	"testing"
)

func TestFlipRowsSelfInverse(t *testing.T) {
	for _, tc := range []struct {
		name    string
		w, h, c int
	}{
		{name: "mono_even", w: 3, h: 4, c: 1},
		{name: "mono_odd", w: 3, h: 5, c: 1},
		{name: "color_even", w: 2, h: 2, c: 3},
		{name: "color_odd", w: 2, h: 3, c: 3},
		{name: "single_row", w: 7, h: 1, c: 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			data := make([]float32, tc.w*tc.h*tc.c)
			for i := range data {
				data[i] = float32(i)
			}
			orig := append([]float32(nil), data...)

			flipRows(data, tc.w, tc.h, tc.c)
			if tc.h > 1 && reflect.DeepEqual(data, orig) {
				t.Fatalf("flip changed nothing")
			}
			flipRows(data, tc.w, tc.h, tc.c)
			if !reflect.DeepEqual(data, orig) {
				t.Errorf("double flip = %v, want %v", data, orig)
			}
		})
	}
}

func TestFlipRowsMiddleRowStays(t *testing.T) {
	// 1x3 mono: middle row must be left in place.
	data := []float32{1, 2, 3}
	flipRows(data, 1, 3, 1)
	want := []float32{3, 2, 1}
	if !reflect.DeepEqual(data, want) {
		t.Errorf("flip = %v, want %v", data, want)
	}
}

func TestDecodePayloadSizeMismatch(t *testing.T) {
	for _, tc := range []struct {
		name    string
		buf     []byte
		w, h, c int
	}{
		{name: "short", buf: make([]byte, 8), w: 1, h: 3, c: 1},
		{name: "long", buf: make([]byte, 16), w: 1, h: 3, c: 1},
		{name: "not_multiple_of_4", buf: make([]byte, 13), w: 1, h: 3, c: 1},
		{name: "empty_for_one_pixel", buf: nil, w: 1, h: 1, c: 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decodePayload(tc.buf, tc.w, tc.h, tc.c, Little)
			if !errors.Is(err, ErrPayloadSizeMismatch) {
				t.Errorf("decodePayload error = %v, want %v", err, ErrPayloadSizeMismatch)
			}
		})
	}
}

func TestDecodeEncodePayloadInverse(t *testing.T) {
	img := &PFM{Width: 2, Height: 3, Color: true, ScaleFactor: 1, Endian: Big,
		Data: make([]float32, 18)}
	for i := range img.Data {
		img.Data[i] = float32(i) * 0.5
	}

	buf := appendPayload(nil, img)
	if len(buf) != 4*len(img.Data) {
		t.Fatalf("payload is %d bytes, want %d", len(buf), 4*len(img.Data))
	}
	back, err := decodePayload(buf, img.Width, img.Height, img.Channels(), img.Endian)
	if err != nil {
		t.Fatalf("decodePayload: %v", err)
	}
	if !reflect.DeepEqual(back, img.Data) {
		t.Errorf("payload round trip = %v, want %v", back, img.Data)
	}
}
