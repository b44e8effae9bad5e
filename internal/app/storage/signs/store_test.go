package signs

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicemap/internal/config"
)

func TestValidName(t *testing.T) {
	testCases := []struct {
		name string
		want bool
	}{
		{"hello.mp4", true},
		{"thank_you.webm", true},
		{"", false},
		{".", false},
		{"..", false},
		{"../secret.mp4", false},
		{"sub/hello.mp4", false},
		{`sub\hello.mp4`, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidName(tc.name))
		})
	}
}

func TestLocalStoreOpen(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hello.mp4"), []byte("fake video"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))

	store := NewLocalStore(dir)
	assert.Equal(t, "local", store.Backend())

	obj, err := store.Open(context.Background(), "hello.mp4")
	require.NoError(t, err)
	defer obj.Close()

	data, err := io.ReadAll(obj)
	require.NoError(t, err)
	assert.Equal(t, "fake video", string(data))
	assert.Equal(t, int64(10), obj.Size)
	assert.Equal(t, "video/mp4", obj.ContentType)

	for _, name := range []string{"missing.mp4", "nested", "../hello.mp4"} {
		_, err := store.Open(context.Background(), name)
		assert.ErrorIs(t, err, ErrNotFound, name)
	}
}

// fakeS3 answers HEAD and GET for objects under /signs/ the way S3 does.
func fakeS3(t *testing.T, objects map[string][]byte) *httptest.Server {
	t.Helper()
	modTime := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimPrefix(r.URL.Path, "/signs/")
		data, ok := objects[key]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			if r.Method != http.MethodHead {
				io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message><Key>`+key+`</Key><BucketName>signs</BucketName></Error>`)
			}
			return
		}

		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.Header().Set("Content-Type", "video/mp4")
		w.Header().Set("Last-Modified", modTime.Format(http.TimeFormat))
		http.ServeContent(w, r, key, modTime, bytes.NewReader(data))
	}))
}

func TestMinioStoreOpen(t *testing.T) {
	server := fakeS3(t, map[string][]byte{"hello.mp4": []byte("minio video")})
	defer server.Close()

	store, err := NewMinioStore(config.SignStoreConfig{
		Endpoint:  strings.TrimPrefix(server.URL, "http://"),
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Bucket:    "signs",
	})
	require.NoError(t, err)
	assert.Equal(t, "minio", store.Backend())

	obj, err := store.Open(context.Background(), "hello.mp4")
	require.NoError(t, err)
	defer obj.Close()

	assert.Equal(t, int64(11), obj.Size)
	assert.Equal(t, "video/mp4", obj.ContentType)

	data, err := io.ReadAll(obj)
	require.NoError(t, err)
	assert.Equal(t, "minio video", string(data))

	_, err = store.Open(context.Background(), "missing.mp4")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Open(context.Background(), "../etc/passwd")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewSelectsBackend(t *testing.T) {
	store, err := New(&config.Config{SignsDir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, "local", store.Backend())

	store, err = New(&config.Config{SignStore: config.SignStoreConfig{
		Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b", Bucket: "signs",
	}})
	require.NoError(t, err)
	assert.Equal(t, "minio", store.Backend())
}
