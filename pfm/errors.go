package pfm

import "errors"

// Codec errors. All decode and build failures wrap one of these sentinels
// with position detail, so callers can classify with errors.Is. Dispatch
// failures (bad path, unreadable file) belong to the caller and never
// originate here.
var (
	// ErrUnexpectedEOF is returned when the header buffer runs out before a
	// token or the payload separator byte could be read.
	ErrUnexpectedEOF = errors.New("pfm: unexpected end of header")
	// ErrInvalidMagic is returned when the magic token is not "PF" or "Pf".
	ErrInvalidMagic = errors.New("pfm: invalid magic")
	// ErrInvalidDimension is returned for a width or height token that is
	// not a positive integer.
	ErrInvalidDimension = errors.New("pfm: invalid dimension")
	// ErrInvalidScale is returned for a scale token that is zero or not a
	// floating-point number.
	ErrInvalidScale = errors.New("pfm: invalid scale")
	// ErrPayloadSizeMismatch is returned when the payload byte count does
	// not match the dimensions declared in the header.
	ErrPayloadSizeMismatch = errors.New("pfm: payload size mismatch")
	// ErrTruncatedPayload is returned when the float reader runs out of
	// bytes mid-sample.
	ErrTruncatedPayload = errors.New("pfm: truncated payload")
	// ErrDataLengthMismatch is returned by Build and Encode when the sample
	// slice does not hold width*height*channels values.
	ErrDataLengthMismatch = errors.New("pfm: data length mismatch")
)
