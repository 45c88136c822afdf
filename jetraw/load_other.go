//go:build !(darwin || linux || freebsd)

package jetraw

import (
	"fmt"
	"runtime"

	"github.com/Jetraw/bioformats/codec"
)

// Dynamic loading is wired for unix-like systems only. The asset table
// still names the Windows DLL so interoperability with the distributed
// archives is preserved, but no loader exists for it in this build.
func loadPlugin() (nativeLibrary, error) {
	name, err := resourceName(runtime.GOOS)
	if err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: no dynamic loader for %s on %s", codec.ErrMissingResource, name, runtime.GOOS)
}
