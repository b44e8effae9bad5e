package middleware

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"voicemap/internal/api/errors"
	apperrors "voicemap/internal/app/errors"
	"voicemap/internal/app/metrics"
	mocks "voicemap/internal/app/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type uploadForm struct {
	Audio *multipart.FileHeader `form:"audio" binding:"required"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRequestIDGeneratesAndPropagates(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, w.Header().Get("X-Request-ID"), w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Body.String())
}

func TestHandleErrorUsesMapper(t *testing.T) {
	testCases := []struct {
		name           string
		languageStatus int
		err            error
		wantStatus     int
		wantMessage    string
	}{
		{"missing file", 500, apperrors.ErrMissingFile, http.StatusBadRequest, "No audio file"},
		{"bad extension", 500, apperrors.ErrUnsupportedFileType, http.StatusBadRequest, "Invalid file type"},
		{"language default", 500, apperrors.UnsupportedLanguage("fr"), http.StatusInternalServerError, "Unsupported language: fr"},
		{"language as client error", 400, apperrors.UnsupportedLanguage("fr"), http.StatusBadRequest, "Unsupported language: fr"},
		{"api error passthrough", 500, errors.NewRequestTooLargeError(), http.StatusRequestEntityTooLarge, "File too large"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), ErrorHandler(zap.NewNop(), errors.NewStatusMapper(tc.languageStatus)))
			router.GET("/", func(c *gin.Context) { HandleError(c, tc.err) })

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Equal(t, map[string]string{"error": tc.wantMessage}, decodeError(t, w))
		})
	}
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	router := gin.New()
	router.Use(RequestID(), ErrorHandler(zap.New(core), errors.NewStatusMapper(500)))
	router.GET("/", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, map[string]string{"error": "Internal server error"}, decodeError(t, w))
	assert.Equal(t, 1, logs.FilterMessage("Recovered from panic").Len())
}

func TestStructuredLoggingSkipsHealth(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	router := gin.New()
	router.Use(StructuredLogging(zap.New(core)))
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, 0, logs.Len())

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))
	entries := logs.FilterMessage("HTTP Request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.WarnLevel, entries[0].Level)
	assert.EqualValues(t, http.StatusNotFound, entries[0].ContextMap()["status"])
}

func TestCORSPreflight(t *testing.T) {
	router := gin.New()
	router.Use(CORS(DefaultCORSConfig()))
	router.POST("/transcribe", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/transcribe", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "3600", w.Header().Get("Access-Control-Max-Age"))
}

func TestCORSRestrictedOrigins(t *testing.T) {
	config := DefaultCORSConfig()
	config.AllowOrigins = []string{"https://voicemap.example"}
	router := gin.New()
	router.Use(CORS(config))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	req.Header.Set("Origin", "https://voicemap.example")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "https://voicemap.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestBindUpload(t *testing.T) {
	newRouter := func(limit int64) *gin.Engine {
		router := gin.New()
		router.Use(BodyLimit(limit))
		router.POST("/", func(c *gin.Context) {
			var form uploadForm
			if err := BindUpload(c, &form); err != nil {
				HandleError(c, err)
				return
			}
			c.String(http.StatusOK, form.Audio.Filename)
		})
		return router
	}

	t.Run("file present", func(t *testing.T) {
		body, contentType := mocks.MultipartAudio(t, "audio", "clip.wav", mocks.WavBytes())
		req := httptest.NewRequest(http.MethodPost, "/", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		newRouter(1<<20).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "clip.wav", w.Body.String())
	})

	t.Run("wrong field", func(t *testing.T) {
		body, contentType := mocks.MultipartAudio(t, "file", "clip.wav", mocks.WavBytes())
		req := httptest.NewRequest(http.MethodPost, "/", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		newRouter(1<<20).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "No audio file", decodeError(t, w)["error"])
	})

	t.Run("not multipart", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("audio=clip.wav"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		newRouter(1<<20).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "No audio file", decodeError(t, w)["error"])
	})
}

func TestMetricsMiddlewareLabelsByRoute(t *testing.T) {
	m := metrics.New()
	router := gin.New()
	router.Use(Metrics(m))
	router.GET("/signs/:filename", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/signs/a.mp4", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/signs/b.mp4", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	count, err := testutil.GatherAndCount(m.Registry(), "voicemap_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
