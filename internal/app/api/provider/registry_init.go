package provider

import (
	"fmt"
	"sort"
	"sync"
)

// ProviderCreator is a function that creates a provider from configuration
type ProviderCreator func(settings map[string]interface{}) (TranscriptionProvider, error)

// creators stores provider creation functions, filled by engine packages in init()
var (
	creators      = make(map[string]ProviderCreator)
	creatorsMutex sync.RWMutex
)

// RegisterProvider registers a provider creator function
func RegisterProvider(providerType string, creator ProviderCreator) {
	creatorsMutex.Lock()
	defer creatorsMutex.Unlock()
	creators[providerType] = creator
}

// GetProviderCreator returns the creator function for a provider type
func GetProviderCreator(providerType string) (ProviderCreator, error) {
	creatorsMutex.RLock()
	defer creatorsMutex.RUnlock()

	creator, ok := creators[providerType]
	if !ok {
		return nil, fmt.Errorf("provider type %s not registered", providerType)
	}
	return creator, nil
}

// ListRegisteredProviders returns all registered provider types, sorted
func ListRegisteredProviders() []string {
	creatorsMutex.RLock()
	defer creatorsMutex.RUnlock()

	providers := make([]string, 0, len(creators))
	for providerType := range creators {
		providers = append(providers, providerType)
	}
	sort.Strings(providers)
	return providers
}
