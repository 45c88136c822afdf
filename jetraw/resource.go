package jetraw

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/Jetraw/bioformats/codec"
	"github.com/Jetraw/bioformats/jetraw/assets"
)

// Plugin file names used by the distributed native assets. These must
// match the release archives exactly.
const (
	resourceWindows = "jetraw_bioformats_plugin.dll"
	resourceDarwin  = "libjetraw_bioformats_plugin.dylib"
	resourceUnix    = "libjetraw_bioformats_plugin.so"
)

// EnvPluginPath names the environment variable that overrides the plugin
// search. It may point at the plugin file itself or at its directory.
const EnvPluginPath = "JETRAW_PLUGIN_PATH"

// platformFamily is the closed set of platforms the plugin ships for.
type platformFamily int

const (
	familyUnknown platformFamily = iota
	familyWindows
	familyDarwin
	familyUnix
)

func detectPlatform(goos string) platformFamily {
	switch goos {
	case "windows":
		return familyWindows
	case "darwin":
		return familyDarwin
	case "linux", "freebsd", "netbsd", "openbsd", "dragonfly", "solaris", "illumos", "aix":
		return familyUnix
	default:
		return familyUnknown
	}
}

// resourceName maps an operating system to the plugin file name.
func resourceName(goos string) (string, error) {
	switch detectPlatform(goos) {
	case familyWindows:
		return resourceWindows, nil
	case familyDarwin:
		return resourceDarwin, nil
	case familyUnix:
		return resourceUnix, nil
	default:
		return "", fmt.Errorf("%w: %s", codec.ErrUnsupportedPlatform, goos)
	}
}

// locateResource returns a loadable path for the named plugin. Bundled
// assets win and are extracted to a temporary file; otherwise an ordered
// list of filesystem locations is searched.
func locateResource(name string) (string, error) {
	path, err := extractBundled(name)
	if err == nil {
		return path, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	for _, candidate := range candidatePaths(name) {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%s not found in bundled assets or search paths", name)
}

// extractBundled writes a bundled plugin to a temporary file so the
// dynamic loader can map it. Returns fs.ErrNotExist when the asset is
// not embedded in this build.
func extractBundled(name string) (string, error) {
	data, err := assets.FS.ReadFile(name)
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp("", name+"-*")
	if err != nil {
		return "", fmt.Errorf("extracting %s: %w", name, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("extracting %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("extracting %s: %w", name, err)
	}
	return tmp.Name(), nil
}

// candidatePaths lists filesystem locations to probe for the plugin, in
// priority order: environment override, executable directory, system
// library directories.
func candidatePaths(name string) []string {
	var paths []string

	if env := os.Getenv(EnvPluginPath); env != "" {
		paths = append(paths, env, filepath.Join(env, name))
	}

	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(dir, name),
			filepath.Join(dir, "..", "lib", name),
		)
	}

	switch runtime.GOOS {
	case "darwin":
		paths = append(paths,
			filepath.Join("/usr/local/lib", name),
			filepath.Join("/opt/homebrew/lib", name),
		)
	case "windows":
		paths = append(paths, name)
	default:
		paths = append(paths,
			filepath.Join("/usr/local/lib", name),
			filepath.Join("/usr/lib", name),
		)
	}
	return paths
}
