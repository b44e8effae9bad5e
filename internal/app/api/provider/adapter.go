package provider

import (
	"context"
	"fmt"
	"time"

	"voicemap/internal/app/language"
)

// TranscriberAdapter adapts the registry's default provider to the pipeline's
// Transcribe(path) -> (text, language) contract.
type TranscriberAdapter struct {
	registry ProviderRegistry
	timeout  time.Duration
}

// NewTranscriberAdapter creates a new adapter. A zero timeout means the caller's
// context alone bounds the call.
func NewTranscriberAdapter(registry ProviderRegistry, timeout time.Duration) *TranscriberAdapter {
	return &TranscriberAdapter{
		registry: registry,
		timeout:  timeout,
	}
}

// Transcribe runs the default provider on a file and returns the text and the
// normalized ISO 639-1 language code.
func (a *TranscriberAdapter) Transcribe(ctx context.Context, inputFilePath string) (string, string, error) {
	p, err := a.registry.GetDefaultProvider()
	if err != nil {
		return "", "", err
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	response, err := p.TranscriptWithOptions(ctx, &TranscriptionRequest{
		InputFilePath: inputFilePath,
		Language:      LanguageAuto,
	})
	if err != nil {
		return "", "", err
	}
	if response == nil {
		return "", "", fmt.Errorf("%s returned no response", p.GetProviderInfo().Name)
	}

	return response.Text, language.Normalize(response.Language), nil
}

// ProviderName returns the name of the provider that serves requests.
func (a *TranscriberAdapter) ProviderName() string {
	p, err := a.registry.GetDefaultProvider()
	if err != nil {
		return ""
	}
	return p.GetProviderInfo().Name
}
