package pfm

import "fmt"

// isSpace reports whether c is ASCII whitespace. The header is defined over
// ASCII only; multi-byte whitespace never appears in well-formed files.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// nextToken skips leading whitespace, then consumes a maximal run of
// non-whitespace bytes. rest starts at the terminating whitespace byte, which
// is deliberately not consumed. An exhausted buffer yields ErrUnexpectedEOF.
func nextToken(buf []byte) (tok, rest []byte, err error) {
	start := 0
	for start < len(buf) && isSpace(buf[start]) {
		start++
	}
	if start == len(buf) {
		return nil, nil, fmt.Errorf("header token: %w", ErrUnexpectedEOF)
	}
	end := start
	for end < len(buf) && !isSpace(buf[end]) {
		end++
	}
	return buf[start:end], buf[end:], nil
}
