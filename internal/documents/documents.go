// Package documents serves preview document resources by file name.
package documents

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned for names that do not resolve to a document.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidName is returned for names that try to leave the store root.
	ErrInvalidName = errors.New("invalid document name")
)

// Document is an opened preview document.
type Document struct {
	Body        io.ReadSeekCloser
	Name        string
	ContentType string
	ModTime     time.Time
}

// Store opens preview documents.
type Store interface {
	Open(ctx context.Context, name string) (*Document, error)
}

// CleanName rejects empty names and anything that escapes the store root.
func CleanName(name string) (string, error) {
	if name == "" || strings.Contains(name, "..") || strings.ContainsAny(name, `\`) {
		return "", ErrInvalidName
	}
	clean := strings.TrimPrefix(path.Clean("/"+name), "/")
	if clean == "" || clean == "." {
		return "", ErrInvalidName
	}
	return clean, nil
}

func contentType(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// FSStore reads documents from a local directory.
type FSStore struct {
	root string
}

// NewFSStore creates a store rooted at dir.
func NewFSStore(dir string) *FSStore {
	return &FSStore{root: dir}
}

// Open opens name under the store root.
func (s *FSStore) Open(_ context.Context, name string) (*Document, error) {
	clean, err := CleanName(name)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.root, filepath.FromSlash(clean)))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to open document: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat document: %w", err)
	}
	if info.IsDir() {
		file.Close()
		return nil, ErrNotFound
	}

	return &Document{
		Body:        file,
		Name:        clean,
		ContentType: contentType(clean),
		ModTime:     info.ModTime(),
	}, nil
}
