package handlers

import (
	"embed"
	"errors"
	"io/fs"
	"net/http"

	"github.com/byiringiro-albert/portfolio/internal/deterrent"
)

//go:embed static
var staticFS embed.FS

// layeredFS serves from the first layer that has the file.
type layeredFS []fs.FS

func (l layeredFS) Open(name string) (fs.File, error) {
	for _, layer := range l {
		f, err := layer.Open(name)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

// StaticAssets returns the site scripts and styles together with the
// deterrent assets.
func StaticAssets() fs.FS {
	site, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return layeredFS{deterrent.Assets(), site}
}

func (h *Handler) HandleStatic() http.Handler {
	return http.StripPrefix("/static/", http.FileServerFS(StaticAssets()))
}
