package jetraw

import (
	"fmt"
	"sync"

	"github.com/Jetraw/bioformats/codec"
)

// nativeLibrary is the boundary to the dynamically loaded Jetraw plugin.
// The four entry points form a version-pinned ABI; any signature change
// is a breaking change to this package.
type nativeLibrary interface {
	// Init initializes the plugin core. Non-zero means failure.
	Init() int32

	// Prepare runs the preparation phase for one plane, keyed by the
	// camera calibration identifier. Non-zero means failure.
	Prepare(samples []uint16, identifier string, errorBound float32) int32

	// Encode compresses a prepared plane into out and returns the number
	// of encoded bytes, or a negative status on failure.
	Encode(samples []uint16, width, height uint32, out []byte) int32

	// Decode fills out with exactly len(out) samples decoded from the
	// compressed plane. The plugin reports no length; the compressed
	// plane is trusted to encode that many samples.
	Decode(encoded []byte, out []uint16)
}

const statusOK int32 = 0

// lifecycle is the load state of the shared plugin handle.
type lifecycle int32

const (
	stateUnloaded lifecycle = iota
	stateLoading
	stateReady
	stateFailed
)

// handle owns the process-wide lifecycle of the native plugin. All codec
// instances share one handle, so the load and initialize sequence runs
// at most once per process. There is no unload path.
type handle struct {
	mu    sync.Mutex
	state lifecycle
	lib   nativeLibrary
	err   error
	load  func() (nativeLibrary, error)

	// callMu serializes every call into the plugin. The plugin does not
	// guarantee reentrancy for concurrent encode or decode calls.
	callMu sync.Mutex
}

func newHandle(load func() (nativeLibrary, error)) *handle {
	return &handle{load: load}
}

// plugin is the handle shared by every Codec instance.
var plugin = newHandle(loadPlugin)

// acquire returns the ready plugin, loading and initializing it on first
// use. Concurrent first callers serialize on the handle mutex and all
// observe the same terminal state. A failed load is terminal: later
// calls fail fast with the recorded error instead of re-attempting an
// extraction that already failed.
func (h *handle) acquire() (nativeLibrary, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch h.state {
	case stateReady:
		return h.lib, nil
	case stateFailed:
		return nil, h.err
	}

	h.state = stateLoading
	lib, err := h.load()
	if err == nil {
		codec.Logger().Debug("jetraw: plugin loaded, initializing core")
		if st := lib.Init(); st != statusOK {
			err = fmt.Errorf("%w: init returned status %d", codec.ErrMissingResource, st)
		}
	}
	if err != nil {
		h.state = stateFailed
		h.err = err
		return nil, err
	}

	h.state = stateReady
	h.lib = lib
	codec.Logger().Debug("jetraw: plugin ready")
	return lib, nil
}
