package signs

import (
	"context"
	"errors"
	"io"
	"mime"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// ErrNotFound is returned when no sign video exists under the requested name.
var ErrNotFound = errors.New("sign video not found")

// Store serves precomputed sign videos by file name.
type Store interface {
	Open(ctx context.Context, name string) (*Object, error)
	Backend() string
}

// Object is an open sign video. Callers must Close it.
type Object struct {
	io.ReadSeekCloser
	Name        string
	Size        int64
	ModTime     time.Time
	ContentType string
}

// ValidName reports whether name is a plain file name with no path components.
func ValidName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return false
	}
	return path.Base(name) == name
}

// contentType guesses the MIME type from the extension.
func contentType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".mp4":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
