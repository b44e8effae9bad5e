package whisper

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"voicemap/internal/app/api/provider"
)

// RemoteTranscriber transcribes through the OpenAI audio API, or any server
// that speaks the same protocol when BaseURL is set.
type RemoteTranscriber struct {
	client *openai.Client
	config OpenAIProviderConfig
}

// OpenAIProviderConfig represents configuration specific to OpenAI Whisper provider
type OpenAIProviderConfig struct {
	APIKey      string        `yaml:"api_key"`
	Model       string        `yaml:"model"`
	Temperature float32       `yaml:"temperature"`
	Prompt      string        `yaml:"prompt"`
	BaseURL     string        `yaml:"base_url"`
	Timeout     time.Duration `yaml:"timeout"`
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(config OpenAIProviderConfig) *RemoteTranscriber {
	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = strings.TrimRight(config.BaseURL, "/")
	}
	if config.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: config.Timeout}
	}

	if config.Model == "" {
		config.Model = openai.Whisper1
	}

	return &RemoteTranscriber{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}
}

// NewRemoteTranscriberFromSettings creates a transcriber from generic settings
func NewRemoteTranscriberFromSettings(settings map[string]interface{}) (*RemoteTranscriber, error) {
	apiKey, _ := settings["api_key"].(string)
	if apiKey == "" {
		return nil, fmt.Errorf("openai provider requires 'api_key'")
	}

	config := OpenAIProviderConfig{APIKey: apiKey}
	if model, ok := settings["model"].(string); ok {
		config.Model = model
	}
	if temperature, ok := settings["temperature"].(float64); ok {
		config.Temperature = float32(temperature)
	}
	if prompt, ok := settings["prompt"].(string); ok {
		config.Prompt = prompt
	}
	if baseURL, ok := settings["base_url"].(string); ok {
		config.BaseURL = baseURL
	}
	if timeout, ok := settings["timeout"].(float64); ok {
		config.Timeout = time.Duration(timeout * float64(time.Second))
	}

	return NewRemoteTranscriber(config), nil
}

// TranscriptWithOptions requests a verbose_json transcription so the detected language comes back with the text
func (rt *RemoteTranscriber) TranscriptWithOptions(ctx context.Context, request *provider.TranscriptionRequest) (*provider.TranscriptionResponse, error) {
	startTime := time.Now()

	if request.InputFilePath == "" {
		return nil, &provider.TranscriptionError{
			Code:     "invalid_input",
			Message:  "input file path is required",
			Provider: "openai",
		}
	}

	if _, err := os.Stat(request.InputFilePath); os.IsNotExist(err) {
		return nil, &provider.TranscriptionError{
			Code:     "file_not_found",
			Message:  fmt.Sprintf("input file not found: %s", request.InputFilePath),
			Provider: "openai",
		}
	}

	audioRequest := openai.AudioRequest{
		Model:       rt.getModel(request),
		FilePath:    request.InputFilePath,
		Prompt:      rt.getPrompt(request),
		Temperature: rt.config.Temperature,
		Format:      openai.AudioResponseFormatVerboseJSON,
	}
	// The API detects the language when none is given
	if request.Language != "" && request.Language != provider.LanguageAuto {
		audioRequest.Language = request.Language
	}

	resp, err := rt.client.CreateTranscription(ctx, audioRequest)
	if err != nil {
		return nil, handleAPIError(err)
	}

	return &provider.TranscriptionResponse{
		Text:           strings.TrimSpace(resp.Text),
		Language:       resp.Language,
		Duration:       time.Duration(resp.Duration * float64(time.Second)),
		ProcessingTime: time.Since(startTime),
		ModelUsed:      audioRequest.Model,
	}, nil
}

func (rt *RemoteTranscriber) getModel(request *provider.TranscriptionRequest) string {
	if request.Model != "" {
		return request.Model
	}
	return rt.config.Model
}

func (rt *RemoteTranscriber) getPrompt(request *provider.TranscriptionRequest) string {
	if request.Prompt != "" {
		return request.Prompt
	}
	return rt.config.Prompt
}

// handleAPIError converts OpenAI API errors to TranscriptionError
func handleAPIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized:
			return &provider.TranscriptionError{
				Code:        "authentication_failed",
				Message:     "OpenAI API key is invalid or missing",
				Provider:    "openai",
				Suggestions: []string{"Check your OPENAI_API_KEY environment variable"},
			}
		case http.StatusTooManyRequests:
			return &provider.TranscriptionError{
				Code:      "rate_limit_exceeded",
				Message:   "OpenAI API rate limit exceeded",
				Provider:  "openai",
				Retryable: true,
			}
		case http.StatusRequestEntityTooLarge:
			return &provider.TranscriptionError{
				Code:     "file_too_large",
				Message:  "Audio file is too large for OpenAI API",
				Provider: "openai",
			}
		case http.StatusBadRequest:
			return &provider.TranscriptionError{
				Code:     "invalid_file",
				Message:  "Invalid audio file format or corrupted file",
				Provider: "openai",
			}
		default:
			return &provider.TranscriptionError{
				Code:      "api_error",
				Message:   fmt.Sprintf("OpenAI API error: %v", apiErr.Message),
				Provider:  "openai",
				Retryable: true,
			}
		}
	}

	return &provider.TranscriptionError{
		Code:      "unknown_error",
		Message:   fmt.Sprintf("Transcription failed: %v", err),
		Provider:  "openai",
		Retryable: true,
	}
}

// GetProviderInfo returns metadata about the OpenAI provider
func (rt *RemoteTranscriber) GetProviderInfo() provider.ProviderInfo {
	return provider.ProviderInfo{
		Name:                      "openai",
		DisplayName:               "OpenAI Whisper API",
		Type:                      provider.ProviderTypeRemote,
		SupportedFormats:          provider.AllFormats(),
		SupportsLanguageDetection: true,
		RequiresInternet:          true,
		RequiresAPIKey:            true,
		DefaultModel:              openai.Whisper1,
	}
}

// ValidateConfiguration validates the provider configuration
func (rt *RemoteTranscriber) ValidateConfiguration() error {
	if rt.config.APIKey == "" {
		return fmt.Errorf("OpenAI API key is required")
	}

	// Compatible servers issue keys in other formats
	if rt.config.BaseURL == "" && !strings.HasPrefix(rt.config.APIKey, "sk-") {
		return fmt.Errorf("OpenAI API key should start with 'sk-'")
	}

	if rt.config.Temperature < 0 || rt.config.Temperature > 1 {
		return fmt.Errorf("temperature must be between 0.0 and 1.0")
	}

	return nil
}

// HealthCheck lists models, the cheapest authenticated call the API offers
func (rt *RemoteTranscriber) HealthCheck(ctx context.Context) error {
	if err := rt.ValidateConfiguration(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if _, err := rt.client.ListModels(ctx); err != nil {
		return fmt.Errorf("OpenAI API health check failed: %w", err)
	}

	return nil
}
