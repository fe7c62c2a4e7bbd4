// Package deterrent carries the copy deterrents served with every page: the
// browser interceptors, print-hiding styles and an image watermark that is
// also applied on the server. None of it is a security boundary.
package deterrent

import (
	"embed"
	"io/fs"
)

//go:embed assets
var assets embed.FS

// Paths of the assets under the static prefix.
const (
	ScriptPath = "deterrent.js"
	StylePath  = "protect.css"
)

// Assets returns the embedded deterrent files.
func Assets() fs.FS {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}
