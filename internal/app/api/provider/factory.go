package provider

import (
	"fmt"

	"voicemap/internal/config"
)

// SettingsFromConfig flattens the typed transcription configuration into the
// generic settings map provider creators accept.
func SettingsFromConfig(cfg config.TranscriptionConfig) (map[string]interface{}, error) {
	timeout := cfg.Timeout.Seconds()

	switch cfg.Provider {
	case "whisper_server":
		return map[string]interface{}{
			"base_url": cfg.WhisperServerURL,
			"timeout":  timeout,
		}, nil
	case "openai":
		return map[string]interface{}{
			"api_key":  cfg.OpenAIAPIKey,
			"base_url": cfg.OpenAIBaseURL,
			"model":    cfg.OpenAIModel,
			"timeout":  timeout,
		}, nil
	case "whisper_cpp":
		return map[string]interface{}{
			"binary_path": cfg.WhisperCppBinary,
			"model_path":  cfg.WhisperCppModel,
			"timeout":     timeout,
		}, nil
	default:
		return nil, fmt.Errorf("unknown provider type: %s", cfg.Provider)
	}
}

// NewFromConfig creates the configured provider through its registered creator.
func NewFromConfig(cfg config.TranscriptionConfig) (TranscriptionProvider, error) {
	settings, err := SettingsFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	creator, err := GetProviderCreator(cfg.Provider)
	if err != nil {
		return nil, fmt.Errorf("%s provider not registered: %w", cfg.Provider, err)
	}

	p, err := creator(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s provider: %w", cfg.Provider, err)
	}
	return p, nil
}

// NewRegistryFromConfig creates a registry holding the configured provider as default.
func NewRegistryFromConfig(cfg config.TranscriptionConfig) (*DefaultProviderRegistry, error) {
	p, err := NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	registry := NewProviderRegistry()
	if err := registry.RegisterProvider(cfg.Provider, p); err != nil {
		return nil, err
	}
	return registry, nil
}
