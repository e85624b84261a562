// Package pxm routes PxM image files to the matching codec based on the file
// extension. Only the PFM codec is implemented; the other PxM variants (PBM,
// PGM, PPM) are recognized and rejected. A trailing ".zst" extension layers
// transparent zstd compression over any supported format.
package pxm

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/merridan/pxmgo/pfm"
)

// Dispatch errors. These are reported separately from codec errors: a file
// that never reaches a codec fails with one of these, a file that parses
// badly fails with a pfm error.
var (
	// ErrUnknownExtension is returned for paths with no extension or an
	// extension that names no PxM format.
	ErrUnknownExtension = errors.New("pxm: unknown file extension")
	// ErrUnsupportedFormat is returned for PxM variants without a codec.
	ErrUnsupportedFormat = errors.New("pxm: format not implemented")
)

// Load reads the file at path in full and decodes it with the codec selected
// by the extension. ".pfm.zst" files are decompressed before decoding.
func Load(path string) (*pfm.PFM, error) {
	compressed, err := dispatch(path)
	if err != nil {
		return nil, err
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if compressed {
		if buf, err = decompress(buf); err != nil {
			return nil, fmt.Errorf("pxm: decompress %s: %w", path, err)
		}
	}
	return pfm.Decode(buf)
}

// Save encodes img with the codec selected by the extension of path and
// writes the resulting buffer in one call. ".pfm.zst" output is compressed
// after encoding. Nothing is written when encoding fails.
func Save(path string, img *pfm.PFM) error {
	compressed, err := dispatch(path)
	if err != nil {
		return err
	}
	buf, err := pfm.Encode(img)
	if err != nil {
		return err
	}
	if compressed {
		buf = compress(buf)
	}
	return os.WriteFile(path, buf, 0o644)
}

// dispatch classifies path by extension, case-insensitively, and reports
// whether a zstd layer applies.
func dispatch(path string) (compressed bool, err error) {
	name := strings.ToLower(filepath.Base(path))
	if strings.HasSuffix(name, ".zst") {
		compressed = true
		name = strings.TrimSuffix(name, ".zst")
	}
	switch filepath.Ext(name) {
	case ".pfm":
		return compressed, nil
	case ".pbm", ".pgm", ".ppm", ".pnm":
		return false, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	default:
		return false, fmt.Errorf("%s: %w", path, ErrUnknownExtension)
	}
}

// --- ZSTD helpers ---

var (
	zstdEnc = mustNewZstdEncoder()
	zstdDec = mustNewZstdDecoder()
)

func mustNewZstdEncoder() *zstd.Encoder {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		panic(err)
	}
	return enc
}

func mustNewZstdDecoder() *zstd.Decoder {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		panic(err)
	}
	return dec
}

func compress(buf []byte) []byte {
	return zstdEnc.EncodeAll(buf, nil)
}

func decompress(buf []byte) ([]byte, error) {
	return zstdDec.DecodeAll(buf, nil)
}
