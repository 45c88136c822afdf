// Package zstd provides a pure-Go plane codec backed by the zstd
// algorithm. It compresses raw pixel bytes as-is and is byte-order
// agnostic: the options geometry is used only to validate plane sizes.
package zstd

import (
	"fmt"
	"io"

	kzstd "github.com/klauspost/compress/zstd"

	"github.com/Jetraw/bioformats/codec"
)

// Name is the registry name of the codec.
const Name = "zstd"

var _ codec.Codec = (*Codec)(nil)

// Codec holds one shared encoder and decoder pair. Both are safe for
// concurrent use through EncodeAll and DecodeAll.
type Codec struct {
	encoder *kzstd.Encoder
	decoder *kzstd.Decoder
}

// New creates a zstd plane codec. Encoder concurrency is pinned to one
// so identical planes always produce identical bitstreams.
func New() (*Codec, error) {
	encoder, err := kzstd.NewWriter(nil,
		kzstd.WithEncoderLevel(kzstd.SpeedDefault),
		kzstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		return nil, fmt.Errorf("creating zstd encoder: %w", err)
	}

	decoder, err := kzstd.NewReader(nil, kzstd.WithDecoderConcurrency(1))
	if err != nil {
		encoder.Close()
		return nil, fmt.Errorf("creating zstd decoder: %w", err)
	}

	return &Codec{encoder: encoder, decoder: decoder}, nil
}

// Name returns the codec registry name.
func (c *Codec) Name() string {
	return Name
}

// Compress encodes one raw pixel plane.
func (c *Codec) Compress(data []byte, opts *codec.Options) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(data) != opts.PlaneBytes() {
		return nil, fmt.Errorf("%w: plane is %d bytes, geometry %dx%d needs %d",
			codec.ErrInvalidBufferLength, len(data), opts.Width, opts.Height, opts.PlaneBytes())
	}
	return c.encoder.EncodeAll(data, nil), nil
}

// Decompress decodes one compressed plane and checks the result against
// the plane geometry.
func (c *Codec) Decompress(data []byte, opts *codec.Options) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	decoded, err := c.decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if len(decoded) != opts.PlaneBytes() {
		return nil, fmt.Errorf("%w: decoded %d bytes, geometry %dx%d needs %d",
			codec.ErrInvalidBufferLength, len(decoded), opts.Width, opts.Height, opts.PlaneBytes())
	}
	return decoded, nil
}

// DecompressReader buffers the remaining content of r and decodes it.
func (c *Codec) DecompressReader(r io.Reader, opts *codec.Options) ([]byte, error) {
	return codec.ReadAndDecompress(c, r, opts)
}

func init() {
	c, err := New()
	if err != nil {
		// NewWriter and NewReader only fail on invalid options; the
		// fixed options above are valid.
		panic(err)
	}
	codec.Register(c)
}
