//go:build darwin || linux || freebsd

package jetraw

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"

	"github.com/Jetraw/bioformats/codec"
)

// pluginLibrary binds the four plugin entry points through purego.
type pluginLibrary struct {
	init    func() int32
	prepare func(buf unsafe.Pointer, imgSize int64, identifier string, errorBound float32) int32
	encode  func(buf unsafe.Pointer, width, height int32, out unsafe.Pointer) int32
	decode  func(buf unsafe.Pointer, bufSize int32, out unsafe.Pointer, outSize int32)
}

var _ nativeLibrary = (*pluginLibrary)(nil)

// loadPlugin resolves, maps and binds the native plugin. The shared
// handle calls this at most once per process.
func loadPlugin() (nativeLibrary, error) {
	name, err := resourceName(runtime.GOOS)
	if err != nil {
		return nil, err
	}

	path, err := locateResource(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", codec.ErrMissingResource, err)
	}

	codec.Logger().Debug("jetraw: loading native plugin", zap.String("path", path))
	h, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("%w: loading %s: %w", codec.ErrMissingResource, path, err)
	}

	lib := &pluginLibrary{}
	if err := bindSymbols(h, lib); err != nil {
		purego.Dlclose(h)
		return nil, fmt.Errorf("%w: %w", codec.ErrMissingResource, err)
	}
	return lib, nil
}

// bindSymbols resolves the pinned plugin ABI. RegisterLibFunc panics on
// a missing symbol, so resolution failures are converted to an error.
func bindSymbols(h uintptr, lib *pluginLibrary) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("binding plugin symbols: %v", r)
		}
	}()
	purego.RegisterLibFunc(&lib.init, h, "jetraw_plugin_init")
	purego.RegisterLibFunc(&lib.prepare, h, "jetraw_plugin_prepare")
	purego.RegisterLibFunc(&lib.encode, h, "jetraw_plugin_encode")
	purego.RegisterLibFunc(&lib.decode, h, "jetraw_plugin_decode")
	return nil
}

func (l *pluginLibrary) Init() int32 {
	return l.init()
}

func (l *pluginLibrary) Prepare(samples []uint16, identifier string, errorBound float32) int32 {
	return l.prepare(unsafe.Pointer(&samples[0]), int64(len(samples)), identifier, errorBound)
}

func (l *pluginLibrary) Encode(samples []uint16, width, height uint32, out []byte) int32 {
	var outPtr unsafe.Pointer
	if len(out) > 0 {
		outPtr = unsafe.Pointer(&out[0])
	}
	return l.encode(unsafe.Pointer(&samples[0]), int32(width), int32(height), outPtr)
}

func (l *pluginLibrary) Decode(encoded []byte, out []uint16) {
	l.decode(unsafe.Pointer(&encoded[0]), int32(len(encoded)), unsafe.Pointer(&out[0]), int32(len(out)))
}
