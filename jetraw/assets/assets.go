// Package assets carries the native Jetraw plugin libraries bundled into
// release builds. Source checkouts ship none; the loader then falls back
// to searching the filesystem.
package assets

import "embed"

//go:embed *
var FS embed.FS
