// Package codec defines the block-codec contract used by format readers
// and writers to compress and decompress fixed-geometry pixel planes.
package codec

import "io"

// Codec is the universal interface for all plane codecs.
//
// Implementations treat input buffers as read-only, return freshly
// allocated output that never aliases the input, and are deterministic:
// identical input bytes and identical options yield identical output.
type Codec interface {
	// Compress encodes one raw pixel plane.
	Compress(data []byte, opts *Options) ([]byte, error)

	// Decompress decodes one compressed plane back to raw pixel bytes.
	Decompress(data []byte, opts *Options) ([]byte, error)

	// DecompressReader reads the remaining content of r and decodes it.
	DecompressReader(r io.Reader, opts *Options) ([]byte, error)

	// Name returns the registry name of the codec.
	Name() string
}

// ReadAndDecompress buffers the remaining content of r and delegates to
// c.Decompress. Compressed planes are bounded by width*height*sampleSize,
// so reading a plane fully into memory is acceptable. Codecs use this as
// their DecompressReader implementation.
func ReadAndDecompress(c Codec, r io.Reader, opts *Options) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return c.Decompress(data, opts)
}
