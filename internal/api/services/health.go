package services

import (
	"context"

	"voicemap/internal/api/dto"
	"voicemap/internal/app/api/provider"
	"voicemap/internal/app/storage/signs"
)

// HealthServiceImpl implements HealthService
type HealthServiceImpl struct {
	registry  provider.ProviderRegistry
	supported []string
	signStore signs.Store
}

// NewHealthService creates a new health service. signStore may be nil.
func NewHealthService(registry provider.ProviderRegistry, supported []string, signStore signs.Store) HealthService {
	return &HealthServiceImpl{
		registry:  registry,
		supported: supported,
		signStore: signStore,
	}
}

// Health reports the active provider and, when deep is set, the health of
// every registered provider. The bool result is false when any check failed.
func (s *HealthServiceImpl) Health(ctx context.Context, deep bool) (*dto.HealthResponse, bool) {
	resp := &dto.HealthResponse{
		Status:             "healthy",
		SupportedLanguages: s.supported,
	}
	if s.signStore != nil {
		resp.SignStore = s.signStore.Backend()
	}

	if s.registry == nil {
		resp.Status = "degraded"
		return resp, false
	}

	if p, err := s.registry.GetDefaultProvider(); err == nil {
		resp.Provider = p.GetProviderInfo().Name
	} else {
		resp.Status = "degraded"
		return resp, false
	}

	if !deep {
		return resp, true
	}

	healthy := true
	resp.Providers = make(map[string]string)
	for name, err := range s.registry.HealthCheckAll(ctx) {
		if err != nil {
			healthy = false
			resp.Providers[name] = err.Error()
			continue
		}
		resp.Providers[name] = "healthy"
	}
	if !healthy {
		resp.Status = "degraded"
	}
	return resp, healthy
}
