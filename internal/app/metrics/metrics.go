package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "voicemap"

// Metrics holds the service collectors on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	requests              *prometheus.CounterVec
	requestDuration       *prometheus.HistogramVec
	transcriptions        *prometheus.CounterVec
	transcriptionDuration *prometheus.HistogramVec
	languageRejections    *prometheus.CounterVec
	glossTokens           *prometheus.CounterVec
}

// New creates the collectors and registers them, plus Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		transcriptions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transcriptions_total",
			Help:      "Transcription attempts by provider and outcome.",
		}, []string{"provider", "outcome"}),
		transcriptionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "transcription_duration_seconds",
			Help:      "Time spent in the speech-to-text engine.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60, 120, 300},
		}, []string{"provider"}),
		languageRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "language_rejections_total",
			Help:      "Transcripts rejected by the language gate, by detected language.",
		}, []string{"language"}),
		glossTokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gloss_tokens_total",
			Help:      "Gloss tokens produced, split by whether the lexicon had a video.",
		}, []string{"mapped"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.requestDuration,
		m.transcriptions,
		m.transcriptionDuration,
		m.languageRejections,
		m.glossTokens,
	)

	return m
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(route, method, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(route, method, status).Inc()
	m.requestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// RecordTranscriptionSuccess records a successful engine call
func (m *Metrics) RecordTranscriptionSuccess(provider string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.transcriptions.WithLabelValues(provider, "success").Inc()
	m.transcriptionDuration.WithLabelValues(provider).Observe(elapsed.Seconds())
}

// RecordTranscriptionFailure records a failed engine call
func (m *Metrics) RecordTranscriptionFailure(provider string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.transcriptions.WithLabelValues(provider, "failure").Inc()
	m.transcriptionDuration.WithLabelValues(provider).Observe(elapsed.Seconds())
}

// RecordLanguageRejection counts a transcript the gate refused.
func (m *Metrics) RecordLanguageRejection(language string) {
	if m == nil {
		return
	}
	if language == "" {
		language = "unknown"
	}
	m.languageRejections.WithLabelValues(language).Inc()
}

// RecordGlossTokens counts mapped and unmapped tokens of one gloss sequence.
func (m *Metrics) RecordGlossTokens(mapped, missing int) {
	if m == nil {
		return
	}
	m.glossTokens.WithLabelValues("true").Add(float64(mapped))
	m.glossTokens.WithLabelValues("false").Add(float64(missing))
}
