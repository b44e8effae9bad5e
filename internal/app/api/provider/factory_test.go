package provider

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicemap/internal/config"
)

func TestSettingsFromConfig(t *testing.T) {
	settings, err := SettingsFromConfig(config.TranscriptionConfig{
		Provider:         "whisper_server",
		Timeout:          90 * time.Second,
		WhisperServerURL: "http://whisper:8080",
	})
	require.NoError(t, err)
	assert.Equal(t, "http://whisper:8080", settings["base_url"])
	assert.Equal(t, 90.0, settings["timeout"])

	settings, err = SettingsFromConfig(config.TranscriptionConfig{
		Provider:     "openai",
		OpenAIAPIKey: "sk-test",
		OpenAIModel:  "whisper-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "sk-test", settings["api_key"])
	assert.Equal(t, "whisper-1", settings["model"])

	settings, err = SettingsFromConfig(config.TranscriptionConfig{
		Provider:         "whisper_cpp",
		WhisperCppBinary: "/usr/local/bin/whisper-cli",
		WhisperCppModel:  "/models/ggml-base.bin",
	})
	require.NoError(t, err)
	assert.Equal(t, "/models/ggml-base.bin", settings["model_path"])

	_, err = SettingsFromConfig(config.TranscriptionConfig{Provider: "vosk"})
	assert.ErrorContains(t, err, "unknown provider type")
}

func TestNewRegistryFromConfig(t *testing.T) {
	RegisterProvider("factory_test", func(settings map[string]interface{}) (TranscriptionProvider, error) {
		return &MockTranscriptionProvider{name: "factory_test"}, nil
	})

	_, err := NewFromConfig(config.TranscriptionConfig{Provider: "factory_test"})
	assert.ErrorContains(t, err, "unknown provider type")

	RegisterProvider("whisper_server", func(settings map[string]interface{}) (TranscriptionProvider, error) {
		assert.Equal(t, "http://127.0.0.1:8080", settings["base_url"])
		return &MockTranscriptionProvider{name: "whisper_server"}, nil
	})

	registry, err := NewRegistryFromConfig(config.TranscriptionConfig{
		Provider:         "whisper_server",
		WhisperServerURL: "http://127.0.0.1:8080",
		Timeout:          time.Minute,
	})
	require.NoError(t, err)

	p, err := registry.GetDefaultProvider()
	require.NoError(t, err)
	assert.Equal(t, "whisper_server", p.GetProviderInfo().Name)
	assert.Contains(t, ListRegisteredProviders(), "factory_test")
}

func TestNewFromConfigUnregistered(t *testing.T) {
	_, err := NewFromConfig(config.TranscriptionConfig{Provider: "whisper_cpp"})
	assert.ErrorContains(t, err, "not registered")
}
