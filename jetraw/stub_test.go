package jetraw

import (
	"encoding/binary"
	"sync"
)

// stubLibrary is an in-memory stand-in for the native plugin. Encode
// stores the prepared plane and emits a 4-byte token in place of the
// opaque Jetraw bitstream; Decode resolves the token back to the stored
// samples. Across the codec this behaves as a lossless transform, which
// isolates the conversion and boundary plumbing under test.
type stubLibrary struct {
	mu             sync.Mutex
	initCalls      int
	prepareCalls   int
	lastIdentifier string
	lastErrorBound float32

	initStatus    int32
	prepareStatus int32

	// encodeOverride replaces the token behavior when set.
	encodeOverride func(samples []uint16, width, height uint32, out []byte) int32

	planes  map[uint32][]uint16
	nextKey uint32
}

func newStubLibrary() *stubLibrary {
	return &stubLibrary{planes: make(map[uint32][]uint16)}
}

func (s *stubLibrary) Init() int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initCalls++
	return s.initStatus
}

func (s *stubLibrary) Prepare(samples []uint16, identifier string, errorBound float32) int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prepareCalls++
	s.lastIdentifier = identifier
	s.lastErrorBound = errorBound
	return s.prepareStatus
}

func (s *stubLibrary) Encode(samples []uint16, width, height uint32, out []byte) int32 {
	if s.encodeOverride != nil {
		return s.encodeOverride(samples, width, height, out)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	key := s.nextKey
	s.nextKey++
	stored := make([]uint16, len(samples))
	copy(stored, samples)
	s.planes[key] = stored

	binary.BigEndian.PutUint32(out, key)
	return 4
}

func (s *stubLibrary) Decode(encoded []byte, out []uint16) {
	key := binary.BigEndian.Uint32(encoded)
	s.mu.Lock()
	defer s.mu.Unlock()
	copy(out, s.planes[key])
}

// newStubCodec wires a codec to a fresh handle backed by the stub, so
// tests never touch the process-wide plugin handle.
func newStubCodec(lib nativeLibrary) *Codec {
	return &Codec{plugin: newHandle(func() (nativeLibrary, error) {
		return lib, nil
	})}
}
