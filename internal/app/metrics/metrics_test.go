package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest("/transcribe", http.MethodPost, "200", 120*time.Millisecond)
	m.ObserveRequest("/transcribe", http.MethodPost, "200", 80*time.Millisecond)
	m.ObserveRequest("/transcribe", http.MethodPost, "400", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("/transcribe", "POST", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("/transcribe", "POST", "400")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.requestDuration))
}

func TestTranscriptionOutcomes(t *testing.T) {
	m := New()

	m.RecordTranscriptionSuccess("whisper_server", time.Second)
	m.RecordTranscriptionFailure("whisper_server", 2*time.Second)
	m.RecordLanguageRejection("fr")
	m.RecordLanguageRejection("")
	m.RecordGlossTokens(3, 1)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.transcriptions.WithLabelValues("whisper_server", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transcriptions.WithLabelValues("whisper_server", "failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.languageRejections.WithLabelValues("fr")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.languageRejections.WithLabelValues("unknown")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.glossTokens.WithLabelValues("true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.glossTokens.WithLabelValues("false")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveRequest("/", "GET", "200", time.Millisecond)
		m.RecordTranscriptionSuccess("openai", time.Second)
		m.RecordTranscriptionFailure("openai", time.Second)
		m.RecordLanguageRejection("fr")
		m.RecordGlossTokens(1, 1)
	})
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.RecordTranscriptionSuccess("whisper_cpp", time.Second)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `voicemap_transcriptions_total{outcome="success",provider="whisper_cpp"} 1`))
	assert.Contains(t, body, "go_goroutines")
}
