package provider

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdapterWith(t *testing.T, p TranscriptionProvider, timeout time.Duration) *TranscriberAdapter {
	t.Helper()
	registry := NewProviderRegistry()
	require.NoError(t, registry.RegisterProvider("mock", p))
	return NewTranscriberAdapter(registry, timeout)
}

func TestTranscriberAdapter_NormalizesLanguage(t *testing.T) {
	var seen *TranscriptionRequest
	adapter := newAdapterWith(t, &MockTranscriptionProvider{
		name: "mock",
		transcriptFunc: func(ctx context.Context, req *TranscriptionRequest) (*TranscriptionResponse, error) {
			seen = req
			return &TranscriptionResponse{Text: "hello world", Language: "English"}, nil
		},
	}, 0)

	text, lang, err := adapter.Transcribe(context.Background(), "/tmp/a.wav")
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
	assert.Equal(t, "en", lang)
	assert.Equal(t, "/tmp/a.wav", seen.InputFilePath)
	assert.Equal(t, LanguageAuto, seen.Language)
	assert.Equal(t, "mock", adapter.ProviderName())
}

func TestTranscriberAdapter_PropagatesErrors(t *testing.T) {
	adapter := newAdapterWith(t, &MockTranscriptionProvider{
		name: "mock",
		transcriptFunc: func(context.Context, *TranscriptionRequest) (*TranscriptionResponse, error) {
			return nil, &TranscriptionError{Code: "api_error", Message: "engine exploded", Provider: "mock"}
		},
	}, 0)

	_, _, err := adapter.Transcribe(context.Background(), "/tmp/a.wav")
	var tErr *TranscriptionError
	require.True(t, errors.As(err, &tErr))
	assert.Equal(t, "api_error", tErr.Code)
}

func TestTranscriberAdapter_AppliesTimeout(t *testing.T) {
	adapter := newAdapterWith(t, &MockTranscriptionProvider{
		name: "mock",
		transcriptFunc: func(ctx context.Context, _ *TranscriptionRequest) (*TranscriptionResponse, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}, 20*time.Millisecond)

	_, _, err := adapter.Transcribe(context.Background(), "/tmp/a.wav")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTranscriberAdapter_NoProvider(t *testing.T) {
	adapter := NewTranscriberAdapter(NewProviderRegistry(), 0)

	_, _, err := adapter.Transcribe(context.Background(), "/tmp/a.wav")
	assert.Error(t, err)
	assert.Empty(t, adapter.ProviderName())
}
