package intake

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "voicemap/internal/app/errors"
)

// AllowedExtensions is the upload allow-list. Only the filename extension is checked.
var AllowedExtensions = map[string]struct{}{
	"mp3":  {},
	"mp4":  {},
	"mpeg": {},
	"mpga": {},
	"m4a":  {},
	"wav":  {},
	"webm": {},
}

// Intake writes uploaded audio to the upload directory under collision-free names.
type Intake struct {
	dir    string
	logger *zap.Logger
}

// New creates the upload directory if needed and returns an Intake rooted there.
func New(dir string, logger *zap.Logger) (*Intake, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving upload dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &Intake{dir: abs, logger: logger}, nil
}

// Dir returns the absolute upload directory.
func (i *Intake) Dir() string {
	return i.dir
}

// Extension returns the lowercased text after the last "." and whether one exists.
func Extension(filename string) (string, bool) {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return "", false
	}
	return strings.ToLower(filename[idx+1:]), true
}

// AllowedFile reports whether filename carries an allow-listed extension.
func AllowedFile(filename string) bool {
	ext, ok := Extension(filename)
	if !ok {
		return false
	}
	_, allowed := AllowedExtensions[ext]
	return allowed
}

// Save validates the multipart header and stores its content.
func (i *Intake) Save(header *multipart.FileHeader) (string, error) {
	if header == nil {
		return "", apperrors.ErrMissingFile
	}
	if !AllowedFile(header.Filename) {
		return "", apperrors.ErrUnsupportedFileType
	}

	src, err := header.Open()
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.KindInternal, "opening upload")
	}
	defer src.Close()

	return i.SaveReader(header.Filename, src)
}

// SaveReader stores r as <uuid>.<ext> and returns the absolute path.
func (i *Intake) SaveReader(filename string, r io.Reader) (string, error) {
	if !AllowedFile(filename) {
		return "", apperrors.ErrUnsupportedFileType
	}
	ext, _ := Extension(filename)

	path := filepath.Join(i.dir, fmt.Sprintf("%s.%s", uuid.New().String(), ext))
	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.KindInternal, apperrors.ErrFileWriteFailed.Message())
	}

	n, copyErr := io.Copy(dst, r)
	closeErr := dst.Close()
	if copyErr != nil || closeErr != nil {
		os.Remove(path)
		if copyErr == nil {
			copyErr = closeErr
		}
		return "", apperrors.Wrap(copyErr, apperrors.KindInternal, apperrors.ErrFileWriteFailed.Message())
	}

	i.logger.Debug("saved upload",
		zap.String("original", filename),
		zap.String("path", path),
		zap.Int64("bytes", n),
	)
	return path, nil
}

// Remove deletes a saved upload. A file that is already gone is not an error.
func (i *Intake) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		i.logger.Warn("failed to remove upload", zap.String("path", path), zap.Error(err))
		return err
	}
	return nil
}
