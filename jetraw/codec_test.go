package jetraw

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Jetraw/bioformats/codec"
)

func testPlane(opts *codec.Options) []byte {
	samples := make([]uint16, opts.Pixels())
	for i := range samples {
		samples[i] = uint16(i * 257)
	}
	return codec.SamplesToBytes(samples, opts.LittleEndian)
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	for _, littleEndian := range []bool{true, false} {
		name := "big endian"
		if littleEndian {
			name = "little endian"
		}
		t.Run(name, func(t *testing.T) {
			stub := newStubLibrary()
			c := newStubCodec(stub)

			opts, err := codec.NewCalibratedOptions(4, 4, littleEndian, "61005001")
			if err != nil {
				t.Fatalf("NewCalibratedOptions() unexpected error: %v", err)
			}
			plane := testPlane(opts)

			encoded, err := c.Compress(plane, opts)
			if err != nil {
				t.Fatalf("Compress() unexpected error: %v", err)
			}
			if len(encoded) == 0 || len(encoded) > opts.Pixels()/2 {
				t.Fatalf("Compress() returned %d bytes, want 1..%d", len(encoded), opts.Pixels()/2)
			}

			decoded, err := c.Decompress(encoded, opts)
			if err != nil {
				t.Fatalf("Decompress() unexpected error: %v", err)
			}
			if !bytes.Equal(decoded, plane) {
				t.Errorf("round trip produced %x, want %x", decoded, plane)
			}

			if stub.lastIdentifier != "61005001" {
				t.Errorf("preparation identifier = %q, want %q", stub.lastIdentifier, "61005001")
			}
			if stub.lastErrorBound != 1.0 {
				t.Errorf("preparation error bound = %v, want 1.0", stub.lastErrorBound)
			}
		})
	}
}

func TestDecompressReader(t *testing.T) {
	stub := newStubLibrary()
	c := newStubCodec(stub)

	opts, err := codec.NewCalibratedOptions(4, 4, true, "61005001")
	if err != nil {
		t.Fatalf("NewCalibratedOptions() unexpected error: %v", err)
	}
	plane := testPlane(opts)

	encoded, err := c.Compress(plane, opts)
	if err != nil {
		t.Fatalf("Compress() unexpected error: %v", err)
	}

	decoded, err := c.DecompressReader(bytes.NewReader(encoded), opts)
	if err != nil {
		t.Fatalf("DecompressReader() unexpected error: %v", err)
	}
	if !bytes.Equal(decoded, plane) {
		t.Errorf("DecompressReader() produced %x, want %x", decoded, plane)
	}
}

func TestCompressDoesNotMutateInput(t *testing.T) {
	stub := newStubLibrary()
	c := newStubCodec(stub)

	opts, err := codec.NewCalibratedOptions(4, 4, true, "61005001")
	if err != nil {
		t.Fatalf("NewCalibratedOptions() unexpected error: %v", err)
	}
	plane := testPlane(opts)
	original := make([]byte, len(plane))
	copy(original, plane)

	if _, err := c.Compress(plane, opts); err != nil {
		t.Fatalf("Compress() unexpected error: %v", err)
	}
	if !bytes.Equal(plane, original) {
		t.Errorf("Compress() mutated the caller's buffer")
	}
}

func TestCompressValidation(t *testing.T) {
	stub := newStubLibrary()
	c := newStubCodec(stub)

	valid, err := codec.NewCalibratedOptions(4, 4, true, "61005001")
	if err != nil {
		t.Fatalf("NewCalibratedOptions() unexpected error: %v", err)
	}

	tests := []struct {
		name    string
		data    []byte
		opts    *codec.Options
		wantErr error
	}{
		{
			name:    "zero width",
			data:    testPlane(valid),
			opts:    &codec.Options{Width: 0, Height: 4, Identifier: "61005001"},
			wantErr: codec.ErrInvalidGeometry,
		},
		{
			name:    "missing identifier",
			data:    testPlane(valid),
			opts:    &codec.Options{Width: 4, Height: 4, LittleEndian: true},
			wantErr: codec.ErrMissingIdentifier,
		},
		{
			name:    "short plane",
			data:    make([]byte, 6),
			opts:    valid,
			wantErr: codec.ErrInvalidBufferLength,
		},
		{
			name:    "oversized plane",
			data:    make([]byte, valid.PlaneBytes()+2),
			opts:    valid,
			wantErr: codec.ErrInvalidBufferLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := c.Compress(tt.data, tt.opts); !errors.Is(err, tt.wantErr) {
				t.Errorf("Compress() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if stub.prepareCalls != 0 {
		t.Errorf("invalid input reached the native boundary (%d prepare calls)", stub.prepareCalls)
	}
}

func TestCompressPreparationFailure(t *testing.T) {
	stub := newStubLibrary()
	stub.prepareStatus = 5
	c := newStubCodec(stub)

	opts, _ := codec.NewCalibratedOptions(4, 4, true, "61005001")
	if _, err := c.Compress(testPlane(opts), opts); !errors.Is(err, codec.ErrEncodingFailed) {
		t.Errorf("Compress() error = %v, want ErrEncodingFailed", err)
	}
}

func TestCompressEncodeFailure(t *testing.T) {
	stub := newStubLibrary()
	stub.encodeOverride = func(_ []uint16, _, _ uint32, _ []byte) int32 {
		return -3
	}
	c := newStubCodec(stub)

	opts, _ := codec.NewCalibratedOptions(4, 4, true, "61005001")
	if _, err := c.Compress(testPlane(opts), opts); !errors.Is(err, codec.ErrEncodingFailed) {
		t.Errorf("Compress() error = %v, want ErrEncodingFailed", err)
	}
}

func TestCompressTruncatesToReportedLength(t *testing.T) {
	stub := newStubLibrary()
	stub.encodeOverride = func(_ []uint16, _, _ uint32, out []byte) int32 {
		for i := range out {
			out[i] = byte(i)
		}
		return 100
	}
	c := newStubCodec(stub)

	// 20x20 pixels pre-sizes a 200 byte output buffer.
	opts, _ := codec.NewCalibratedOptions(20, 20, true, "61005001")
	encoded, err := c.Compress(testPlane(opts), opts)
	if err != nil {
		t.Fatalf("Compress() unexpected error: %v", err)
	}
	if len(encoded) != 100 {
		t.Fatalf("Compress() returned %d bytes, want 100", len(encoded))
	}
	for i, b := range encoded {
		if b != byte(i) {
			t.Fatalf("encoded[%d] = %d, want %d", i, b, byte(i))
		}
	}
}

func TestCompressBufferTooSmall(t *testing.T) {
	stub := newStubLibrary()
	stub.encodeOverride = func(_ []uint16, _, _ uint32, out []byte) int32 {
		return int32(len(out)) + 1
	}
	c := newStubCodec(stub)

	opts, _ := codec.NewCalibratedOptions(20, 20, true, "61005001")
	if _, err := c.Compress(testPlane(opts), opts); !errors.Is(err, codec.ErrBufferTooSmall) {
		t.Errorf("Compress() error = %v, want ErrBufferTooSmall", err)
	}
}

func TestDecompressValidation(t *testing.T) {
	stub := newStubLibrary()
	c := newStubCodec(stub)

	opts, _ := codec.NewOptions(4, 4, true)
	if _, err := c.Decompress(nil, opts); !errors.Is(err, codec.ErrInvalidBufferLength) {
		t.Errorf("Decompress(empty) error = %v, want ErrInvalidBufferLength", err)
	}

	if _, err := c.Decompress([]byte{1, 2, 3, 4}, &codec.Options{}); !errors.Is(err, codec.ErrInvalidGeometry) {
		t.Errorf("Decompress(zero geometry) error = %v, want ErrInvalidGeometry", err)
	}
}

func TestDecompressWithoutIdentifier(t *testing.T) {
	stub := newStubLibrary()
	c := newStubCodec(stub)

	compressOpts, _ := codec.NewCalibratedOptions(4, 4, true, "61005001")
	plane := testPlane(compressOpts)
	encoded, err := c.Compress(plane, compressOpts)
	if err != nil {
		t.Fatalf("Compress() unexpected error: %v", err)
	}

	// Decoding needs no calibration identifier.
	decodeOpts, _ := codec.NewOptions(4, 4, true)
	decoded, err := c.Decompress(encoded, decodeOpts)
	if err != nil {
		t.Fatalf("Decompress() unexpected error: %v", err)
	}
	if !bytes.Equal(decoded, plane) {
		t.Errorf("Decompress() produced %x, want %x", decoded, plane)
	}
}

func TestRegistered(t *testing.T) {
	c, err := codec.Get(Name)
	if err != nil {
		t.Fatalf("Get(%q) unexpected error: %v", Name, err)
	}
	if _, ok := c.(*Codec); !ok {
		t.Errorf("Get(%q) returned %T, want *jetraw.Codec", Name, c)
	}
}
