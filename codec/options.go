package codec

import "fmt"

// Options carries the plane geometry and codec-specific settings for a
// single compress or decompress call. It is constructed once, never
// modified afterwards, and borrowed by the codec for the duration of
// one call.
type Options struct {
	Width        uint32 // plane width in pixels
	Height       uint32 // plane height in pixels
	LittleEndian bool   // byte order of the raw pixel bytes
	Identifier   string // per-session calibration identifier, codec-specific
}

// NewOptions constructs options for codecs that need no calibration.
func NewOptions(width, height uint32, littleEndian bool) (*Options, error) {
	opts := &Options{Width: width, Height: height, LittleEndian: littleEndian}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// NewCalibratedOptions constructs options for codecs that require a
// calibration identifier, such as the Jetraw codec.
func NewCalibratedOptions(width, height uint32, littleEndian bool, identifier string) (*Options, error) {
	if identifier == "" {
		return nil, ErrMissingIdentifier
	}
	opts, err := NewOptions(width, height, littleEndian)
	if err != nil {
		return nil, err
	}
	opts.Identifier = identifier
	return opts, nil
}

// Validate checks that the options describe a non-empty plane.
func (o *Options) Validate() error {
	if o == nil {
		return fmt.Errorf("%w: nil options", ErrInvalidGeometry)
	}
	if o.Width == 0 || o.Height == 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGeometry, o.Width, o.Height)
	}
	return nil
}

// Pixels returns the number of samples in one plane.
func (o *Options) Pixels() int {
	return int(o.Width) * int(o.Height)
}

// PlaneBytes returns the raw plane size in bytes for 16-bit samples.
func (o *Options) PlaneBytes() int {
	return 2 * o.Pixels()
}
