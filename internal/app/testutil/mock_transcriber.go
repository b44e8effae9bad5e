package testutil

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"voicemap/internal/app/gloss"
)

// MockTranscriber is a mock implementation of pipeline.Transcriber
type MockTranscriber struct {
	mu sync.Mutex

	text     string
	language string
	err      error
	name     string

	// OnCall runs inside Transcribe, while the uploaded file still exists
	OnCall func(inputFilePath string)

	calls []string
}

// NewMockTranscriber creates a MockTranscriber returning an English transcript
func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{
		text:     "This is a mock transcription.",
		language: "en",
		name:     "mock",
	}
}

// WithResult sets the transcript and detected language
func (m *MockTranscriber) WithResult(text, language string) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.language = language
	m.err = nil
	return m
}

// WithError makes every call fail with err
func (m *MockTranscriber) WithError(err error) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

// WithName sets the reported provider name
func (m *MockTranscriber) WithName(name string) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.name = name
	return m
}

// Transcribe implements pipeline.Transcriber
func (m *MockTranscriber) Transcribe(ctx context.Context, inputFilePath string) (string, string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, inputFilePath)
	onCall := m.OnCall
	text, language, failure := m.text, m.language, m.err
	m.mu.Unlock()

	if onCall != nil {
		onCall(inputFilePath)
	}
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	if failure != nil {
		return "", "", failure
	}
	return text, language, nil
}

// ProviderName reports the configured name
func (m *MockTranscriber) ProviderName() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.name
}

// Calls returns the file paths seen so far
func (m *MockTranscriber) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// CallCount returns how many times Transcribe ran
func (m *MockTranscriber) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// MockGlossMapper is a testify mock of pipeline.GlossMapper
type MockGlossMapper struct {
	mock.Mock
}

// GlossText implements pipeline.GlossMapper
func (m *MockGlossMapper) GlossText(text string) ([]string, error) {
	args := m.Called(text)
	if tokens, ok := args.Get(0).([]string); ok {
		return tokens, args.Error(1)
	}
	return nil, args.Error(1)
}

// MapGlossToVideos implements pipeline.GlossMapper
func (m *MockGlossMapper) MapGlossToVideos(tokens []string) ([]gloss.VideoRef, error) {
	args := m.Called(tokens)
	if videos, ok := args.Get(0).([]gloss.VideoRef); ok {
		return videos, args.Error(1)
	}
	return nil, args.Error(1)
}
