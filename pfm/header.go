package pfm

import (
	"fmt"
	"strconv"
)

// parseHeader consumes the four whitespace-delimited header tokens (magic,
// width, height, scale) plus the single separator byte that precedes the
// binary payload. It returns a builder primed with everything but the sample
// data, and the untouched payload region.
func parseHeader(buf []byte) (*Builder, []byte, error) {
	b := NewBuilder()

	tok, buf, err := nextToken(buf)
	if err != nil {
		return nil, nil, err
	}
	if len(tok) < 2 || tok[0] != 'P' {
		return nil, nil, fmt.Errorf("magic %q: %w", tok, ErrInvalidMagic)
	}
	switch tok[1] {
	case 'F':
		b.Color(true)
	case 'f':
		b.Color(false)
	default:
		return nil, nil, fmt.Errorf("magic %q: %w", tok, ErrInvalidMagic)
	}

	tok, buf, err = nextToken(buf)
	if err != nil {
		return nil, nil, err
	}
	width, err := parseDimension(tok)
	if err != nil {
		return nil, nil, err
	}
	tok, buf, err = nextToken(buf)
	if err != nil {
		return nil, nil, err
	}
	height, err := parseDimension(tok)
	if err != nil {
		return nil, nil, err
	}
	b.Size(width, height)

	tok, buf, err = nextToken(buf)
	if err != nil {
		return nil, nil, err
	}
	scale, err := parseScale(tok)
	if err != nil {
		return nil, nil, err
	}
	b.Scale(scale)

	// Exactly one separator byte sits between the scale token and the
	// payload. Writers disagree on which whitespace byte it is, so it is
	// skipped without being inspected.
	if len(buf) < 1 {
		return nil, nil, fmt.Errorf("payload separator: %w", ErrUnexpectedEOF)
	}
	return b, buf[1:], nil
}

func parseDimension(tok []byte) (int, error) {
	n, err := strconv.Atoi(string(tok))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("dimension %q: %w", tok, ErrInvalidDimension)
	}
	return n, nil
}

func parseScale(tok []byte) (float32, error) {
	f, err := strconv.ParseFloat(string(tok), 32)
	if err != nil || f == 0 {
		return 0, fmt.Errorf("scale %q: %w", tok, ErrInvalidScale)
	}
	return float32(f), nil
}

// appendHeader emits the canonical textual header: "PF\n" or "Pf\n", the
// dimensions line, then the signed scale line. Big endian re-encodes as a
// positive scale, Little as negative, in the shortest representation that
// round-trips the magnitude. Nothing follows the final newline; the payload
// starts on the very next byte.
func appendHeader(dst []byte, img *PFM) []byte {
	if img.Color {
		dst = append(dst, "PF\n"...)
	} else {
		dst = append(dst, "Pf\n"...)
	}
	dst = strconv.AppendInt(dst, int64(img.Width), 10)
	dst = append(dst, ' ')
	dst = strconv.AppendInt(dst, int64(img.Height), 10)
	dst = append(dst, '\n')
	scale := img.ScaleFactor
	if img.Endian == Little {
		scale = -scale
	}
	dst = strconv.AppendFloat(dst, float64(scale), 'g', -1, 32)
	return append(dst, '\n')
}
