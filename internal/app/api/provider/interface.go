package provider

import (
	"context"
)

// TranscriptionProvider is the boundary to an external speech-to-text engine.
// Implementations must return the full transcript and their best-guess language.
type TranscriptionProvider interface {
	// Transcribe a local audio file
	TranscriptWithOptions(ctx context.Context, request *TranscriptionRequest) (*TranscriptionResponse, error)

	// Provider metadata and capabilities
	GetProviderInfo() ProviderInfo

	// Configuration validation and health checks
	ValidateConfiguration() error

	// Health check to verify provider is available and functioning
	HealthCheck(ctx context.Context) error
}

// ProviderRegistry manages named transcription provider instances
type ProviderRegistry interface {
	// Register a provider
	RegisterProvider(name string, provider TranscriptionProvider) error

	// Get a provider by name
	GetProvider(name string) (TranscriptionProvider, error)

	// List all registered providers
	ListProviders() []string

	// Get default provider
	GetDefaultProvider() (TranscriptionProvider, error)

	// Set default provider
	SetDefaultProvider(name string) error

	// Health check all providers
	HealthCheckAll(ctx context.Context) map[string]error
}
