package codec

import "errors"

var (
	// ErrCodecNotFound is returned when a codec is not found in the registry
	ErrCodecNotFound = errors.New("codec not found")

	// ErrUnsupportedPlatform is returned when the operating system cannot
	// be mapped to a known native library name
	ErrUnsupportedPlatform = errors.New("unsupported platform for native codec library")

	// ErrMissingResource is returned when the native codec library cannot
	// be extracted, loaded or initialized; it wraps the underlying cause
	ErrMissingResource = errors.New("native codec library not available")

	// ErrInvalidGeometry is returned when width or height is zero
	ErrInvalidGeometry = errors.New("invalid geometry (width and height must be non-zero)")

	// ErrMissingIdentifier is returned when a codec requires a calibration
	// identifier and none was provided
	ErrMissingIdentifier = errors.New("missing calibration identifier")

	// ErrInvalidBufferLength is returned when a buffer cannot hold a whole
	// number of samples or does not match the plane geometry
	ErrInvalidBufferLength = errors.New("invalid buffer length")

	// ErrEncodingFailed is returned when the underlying transform reports
	// a non-success status
	ErrEncodingFailed = errors.New("encoding failed")

	// ErrBufferTooSmall is returned when the underlying transform reports
	// more output than the pre-sized buffer can hold
	ErrBufferTooSmall = errors.New("encoded output exceeds buffer capacity")
)
