package testutil

import (
	"bytes"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// WavBytes returns a minimal valid 16kHz mono PCM WAV file
func WavBytes() []byte {
	wavHeader := []byte{
		0x52, 0x49, 0x46, 0x46, // "RIFF"
		0x24, 0x08, 0x00, 0x00, // File size (2084 bytes)
		0x57, 0x41, 0x56, 0x45, // "WAVE"
		0x66, 0x6D, 0x74, 0x20, // "fmt "
		0x10, 0x00, 0x00, 0x00, // Chunk size
		0x01, 0x00,             // Audio format (PCM)
		0x01, 0x00,             // Channels (mono)
		0x80, 0x3E, 0x00, 0x00, // Sample rate (16000)
		0x00, 0x7D, 0x00, 0x00, // Byte rate
		0x02, 0x00,             // Block align
		0x10, 0x00,             // Bits per sample
		0x64, 0x61, 0x74, 0x61, // "data"
		0x00, 0x08, 0x00, 0x00, // Data size (2048 bytes)
	}
	return append(wavHeader, make([]byte, 2048)...)
}

// CreateTestAudioFile writes WavBytes to name inside a fresh temp directory
func CreateTestAudioFile(t *testing.T, name string) string {
	t.Helper()
	fullPath := filepath.Join(t.TempDir(), filepath.Base(name))
	require.NoError(t, os.WriteFile(fullPath, WavBytes(), 0644))
	return fullPath
}

// MultipartAudio builds a multipart body holding one file under field.
// An empty field produces a form with only a text field.
func MultipartAudio(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if field == "" {
		require.NoError(t, writer.WriteField("note", "no file attached"))
	} else {
		part, err := writer.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

// FileHeader parses a one-file multipart form and returns its header
func FileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	body, contentType := MultipartAudio(t, "audio", filename, content)

	_, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)

	form, err := multipart.NewReader(body, params["boundary"]).ReadForm(10 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	headers := form.File["audio"]
	require.Len(t, headers, 1)
	return headers[0]
}

// ListFiles returns the sorted names of regular files in dir
func ListFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}
