package signs

import (
	"context"
	"os"
	"path/filepath"
)

// LocalStore reads sign videos from a directory on disk.
type LocalStore struct {
	dir string
}

// NewLocalStore returns a store rooted at dir. The directory need not exist yet.
func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

// Backend names the storage backend.
func (s *LocalStore) Backend() string {
	return "local"
}

// Open opens dir/name.
func (s *LocalStore) Open(ctx context.Context, name string) (*Object, error) {
	if !ValidName(name) {
		return nil, ErrNotFound
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, ErrNotFound
	}

	return &Object{
		ReadSeekCloser: f,
		Name:           name,
		Size:           info.Size(),
		ModTime:        info.ModTime(),
		ContentType:    contentType(name),
	}, nil
}
