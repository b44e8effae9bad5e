package handlers

import (
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"voicemap/internal/api/dto"
	"voicemap/internal/api/errors"
	"voicemap/internal/api/middleware"
	apperrors "voicemap/internal/app/errors"
	"voicemap/internal/app/gloss"
	mocks "voicemap/internal/app/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockSpeechService struct {
	mock.Mock
}

func (m *mockSpeechService) Transcribe(ctx context.Context, audio *multipart.FileHeader) (*dto.TranscribeResponse, error) {
	args := m.Called(audio.Filename)
	resp, _ := args.Get(0).(*dto.TranscribeResponse)
	return resp, args.Error(1)
}

func (m *mockSpeechService) SignLanguage(ctx context.Context, audio *multipart.FileHeader) (*dto.SignLanguageResponse, error) {
	args := m.Called(audio.Filename)
	resp, _ := args.Get(0).(*dto.SignLanguageResponse)
	return resp, args.Error(1)
}

type stubHealthService struct {
	resp *dto.HealthResponse
	ok   bool
	deep bool
}

func (s *stubHealthService) Health(ctx context.Context, deep bool) (*dto.HealthResponse, bool) {
	s.deep = deep
	return s.resp, s.ok
}

func newSpeechRouter(svc *mockSpeechService, languageStatus int) *gin.Engine {
	router := gin.New()
	router.Use(middleware.ErrorHandler(zap.NewNop(), errors.NewStatusMapper(languageStatus)))
	h := NewSpeechHandler(svc)
	router.POST("/transcribe", h.Transcribe)
	router.POST("/sign-language", h.SignLanguage)
	return router
}

func postAudio(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	body, contentType := mocks.MultipartAudio(t, "audio", "clip.wav", mocks.WavBytes())
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSpeechHandlerTranscribe(t *testing.T) {
	svc := &mockSpeechService{}
	svc.On("Transcribe", "clip.wav").Return(&dto.TranscribeResponse{Transcription: "hello"}, nil)

	w := postAudio(t, newSpeechRouter(svc, 500), "/transcribe")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"transcription":"hello"}`, w.Body.String())
	svc.AssertExpectations(t)
}

func TestSpeechHandlerSignLanguage(t *testing.T) {
	svc := &mockSpeechService{}
	svc.On("SignLanguage", "clip.wav").Return(&dto.SignLanguageResponse{
		Transcription: "hello friend",
		Gloss:         []string{"HELLO", "FRIEND"},
		Videos: []gloss.VideoRef{
			{Gloss: "HELLO", URL: "/signs/hello.mp4"},
			{Gloss: "FRIEND", Missing: true},
		},
	}, nil)

	w := postAudio(t, newSpeechRouter(svc, 500), "/sign-language")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"transcription": "hello friend",
		"gloss": ["HELLO", "FRIEND"],
		"videos": [{"gloss": "HELLO", "url": "/signs/hello.mp4"}, {"gloss": "FRIEND", "missing": true}]
	}`, w.Body.String())
}

func TestSpeechHandlerMapsErrors(t *testing.T) {
	testCases := []struct {
		name           string
		err            error
		languageStatus int
		wantStatus     int
		wantBody       string
	}{
		{"unsupported language", apperrors.UnsupportedLanguage("de"), 500, http.StatusInternalServerError, `{"error":"Unsupported language: de"}`},
		{"unsupported language as 400", apperrors.UnsupportedLanguage("de"), 400, http.StatusBadRequest, `{"error":"Unsupported language: de"}`},
		{"gloss failure", apperrors.New(apperrors.KindGlossMapping, "video mapping failed"), 400, http.StatusInternalServerError, `{"error":"video mapping failed"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockSpeechService{}
			svc.On("SignLanguage", "clip.wav").Return(nil, tc.err)

			w := postAudio(t, newSpeechRouter(svc, tc.languageStatus), "/sign-language")

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.JSONEq(t, tc.wantBody, w.Body.String())
		})
	}
}

func TestHealthHandler(t *testing.T) {
	svc := &stubHealthService{resp: &dto.HealthResponse{Status: "healthy", Provider: "whisper_server"}, ok: true}
	router := gin.New()
	router.GET("/health", NewHealthHandler(svc).Get)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, svc.deep)

	svc.ok = false
	svc.resp.Status = "degraded"
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health?deep=1", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.True(t, svc.deep)
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
}

func TestStaticHandlerServesBundledFrontend(t *testing.T) {
	router := gin.New()
	h := NewStaticHandler("../../../frontend")
	router.GET("/", h.Index)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	page := w.Body.String()
	// Microphone capture posts a webm blob under the same field as file uploads
	assert.Contains(t, page, "new MediaRecorder(")
	assert.Contains(t, page, "body.append('audio', blob, 'recording.webm')")
	assert.Contains(t, page, "value=\"/transcribe\"")
	assert.Contains(t, page, "value=\"/sign-language\"")
	// Sign videos play one after another through a single player
	assert.Contains(t, page, "player.onended = playNext")
}
