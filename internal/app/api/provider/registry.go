package provider

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// DefaultProviderRegistry implements ProviderRegistry interface.
// The first registered provider becomes the default.
type DefaultProviderRegistry struct {
	mu          sync.RWMutex
	providers   map[string]TranscriptionProvider
	defaultName string
}

// NewProviderRegistry creates a new provider registry
func NewProviderRegistry() *DefaultProviderRegistry {
	return &DefaultProviderRegistry{
		providers: make(map[string]TranscriptionProvider),
	}
}

// RegisterProvider registers a new transcription provider
func (r *DefaultProviderRegistry) RegisterProvider(name string, provider TranscriptionProvider) error {
	if name == "" {
		return fmt.Errorf("provider name cannot be empty")
	}
	if provider == nil {
		return fmt.Errorf("provider cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Check for duplicate registration
	if _, exists := r.providers[name]; exists {
		return fmt.Errorf("provider '%s' already registered", name)
	}

	// Validate the provider configuration
	if err := provider.ValidateConfiguration(); err != nil {
		return fmt.Errorf("provider validation failed: %w", err)
	}

	r.providers[name] = provider

	// Set as default if it's the first provider
	if r.defaultName == "" {
		r.defaultName = name
	}

	return nil
}

// GetProvider retrieves a provider by name
func (r *DefaultProviderRegistry) GetProvider(name string) (TranscriptionProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[name]
	if !exists {
		return nil, fmt.Errorf("provider '%s' not found", name)
	}

	return provider, nil
}

// ListProviders returns a list of all registered provider names
func (r *DefaultProviderRegistry) ListProviders() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetDefaultProvider returns the default provider
func (r *DefaultProviderRegistry) GetDefaultProvider() (TranscriptionProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.defaultName == "" {
		return nil, fmt.Errorf("no default provider set")
	}

	provider, exists := r.providers[r.defaultName]
	if !exists {
		return nil, fmt.Errorf("default provider '%s' not found", r.defaultName)
	}

	return provider, nil
}

// SetDefaultProvider sets the default provider
func (r *DefaultProviderRegistry) SetDefaultProvider(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[name]; !exists {
		return fmt.Errorf("provider '%s' not found", name)
	}

	r.defaultName = name
	return nil
}

// HealthCheckAll performs health checks on all registered providers
func (r *DefaultProviderRegistry) HealthCheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	providers := make(map[string]TranscriptionProvider)
	for name, provider := range r.providers {
		providers[name] = provider
	}
	r.mu.RUnlock()

	results := make(map[string]error)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for name, provider := range providers {
		wg.Add(1)
		go func(name string, provider TranscriptionProvider) {
			defer wg.Done()

			err := provider.HealthCheck(ctx)

			mu.Lock()
			results[name] = err
			mu.Unlock()
		}(name, provider)
	}

	wg.Wait()
	return results
}
