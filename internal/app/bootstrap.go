package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"voicemap/internal/app/api/provider"
	"voicemap/internal/app/logging"
	"voicemap/internal/config"
)

// Bootstrap loads and validates configuration and builds the logger every command shares
func Bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, envFile, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.NewLogger(!cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	if envFile != "" {
		logger.Debug("loaded environment file", zap.String("path", envFile))
	}
	return cfg, logger, nil
}

// CheckProviders builds the configured engine and runs its health check
func CheckProviders(ctx context.Context, cfg *config.Config) (map[string]error, error) {
	registry, err := provideProviderRegistry(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build provider: %w", err)
	}
	return registry.HealthCheckAll(ctx), nil
}

// ProviderInfo describes the configured engine without contacting it
func ProviderInfo(cfg *config.Config) (provider.ProviderInfo, error) {
	p, err := provider.NewFromConfig(cfg.Transcription)
	if err != nil {
		return provider.ProviderInfo{}, err
	}
	return p.GetProviderInfo(), nil
}
