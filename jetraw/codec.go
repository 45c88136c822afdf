// Package jetraw implements the plane codec contract on top of the
// Dotphoton Jetraw native plugin, loaded into the process on first use.
//
// Compression runs in two native phases: a preparation pass keyed by the
// camera calibration identifier, then the encoding pass. Decompression
// fills exactly width*height samples; the compressed plane is trusted to
// encode that many. The plugin's own lossless guarantee applies to the
// transform itself, this package only converts buffers and crosses the
// boundary.
package jetraw

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/Jetraw/bioformats/codec"
)

// Name is the registry name of the codec.
const Name = "jetraw"

// errorBound handed to the preparation phase, fixed by the plugin ABI.
const defaultErrorBound float32 = 1.0

var _ codec.Codec = (*Codec)(nil)

// Codec compresses and decompresses 16-bit grayscale planes through the
// native Jetraw plugin. The zero value is not usable; construct with New.
type Codec struct {
	plugin *handle
}

// New returns a codec backed by the process-wide plugin handle. The
// plugin itself is not touched until the first compress or decompress.
func New() *Codec {
	return &Codec{plugin: plugin}
}

// Name returns the codec registry name.
func (c *Codec) Name() string {
	return Name
}

// Compress encodes one raw pixel plane. The options must carry a
// calibration identifier and data must be exactly width*height 16-bit
// samples in the byte order the options declare.
func (c *Codec) Compress(data []byte, opts *codec.Options) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Identifier == "" {
		return nil, fmt.Errorf("%w: jetraw preparation needs a calibration identifier", codec.ErrMissingIdentifier)
	}
	if len(data) != opts.PlaneBytes() {
		return nil, fmt.Errorf("%w: plane is %d bytes, geometry %dx%d needs %d",
			codec.ErrInvalidBufferLength, len(data), opts.Width, opts.Height, opts.PlaneBytes())
	}

	lib, err := c.plugin.acquire()
	if err != nil {
		return nil, err
	}

	samples, err := codec.BytesToSamples(data, opts.LittleEndian)
	if err != nil {
		return nil, err
	}

	log := codec.Logger()
	out := make([]byte, opts.Pixels()/2)

	c.plugin.callMu.Lock()
	defer c.plugin.callMu.Unlock()

	log.Debug("jetraw: preparing plane", zap.String("identifier", opts.Identifier))
	if st := lib.Prepare(samples, opts.Identifier, defaultErrorBound); st != statusOK {
		return nil, fmt.Errorf("%w: preparation returned status %d", codec.ErrEncodingFailed, st)
	}

	n := lib.Encode(samples, opts.Width, opts.Height, out)
	if n < 0 {
		return nil, fmt.Errorf("%w: encoder returned status %d", codec.ErrEncodingFailed, n)
	}
	if int(n) > len(out) {
		return nil, fmt.Errorf("%w: encoder reported %d bytes into a %d byte buffer",
			codec.ErrBufferTooSmall, n, len(out))
	}
	log.Debug("jetraw: plane encoded", zap.Int32("encodedBytes", n))

	encoded := make([]byte, n)
	copy(encoded, out)
	return encoded, nil
}

// Decompress decodes one compressed plane back to raw pixel bytes in the
// byte order the options declare.
func (c *Codec) Decompress(data []byte, opts *codec.Options) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty compressed plane", codec.ErrInvalidBufferLength)
	}

	lib, err := c.plugin.acquire()
	if err != nil {
		return nil, err
	}

	samples := make([]uint16, opts.Pixels())

	c.plugin.callMu.Lock()
	codec.Logger().Debug("jetraw: decoding plane", zap.Int("samples", len(samples)))
	lib.Decode(data, samples)
	c.plugin.callMu.Unlock()

	return codec.SamplesToBytes(samples, opts.LittleEndian), nil
}

// DecompressReader buffers the remaining content of r and decodes it.
func (c *Codec) DecompressReader(r io.Reader, opts *codec.Options) ([]byte, error) {
	return codec.ReadAndDecompress(c, r, opts)
}

func init() {
	codec.Register(New())
}
