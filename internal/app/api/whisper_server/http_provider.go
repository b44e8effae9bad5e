package whisper_server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"voicemap/internal/app/api/provider"
)

// WhisperServerProvider implements transcription via HTTP to a whisper-server instance
type WhisperServerProvider struct {
	config WhisperServerConfig
	client *http.Client
}

// WhisperServerConfig represents configuration for whisper-server HTTP API
type WhisperServerConfig struct {
	BaseURL        string            `yaml:"base_url"`        // Base URL of whisper-server (e.g., "http://192.168.1.100:8080")
	InferencePath  string            `yaml:"inference_path"`  // Inference endpoint path (default: "/inference")
	Timeout        time.Duration     `yaml:"timeout"`         // Request timeout
	ResponseFormat string            `yaml:"response_format"` // json or verbose_json; only verbose_json reports the language
	Temperature    float64           `yaml:"temperature"`     // Decoding temperature (0.0-1.0)
	CustomHeaders  map[string]string `yaml:"custom_headers"`  // Custom HTTP headers
}

// WhisperServerResponse represents the response from whisper-server
type WhisperServerResponse struct {
	Text                        string                 `json:"text,omitempty"`
	Task                        string                 `json:"task,omitempty"`
	Language                    string                 `json:"language,omitempty"`
	Duration                    float64                `json:"duration,omitempty"`
	Segments                    []WhisperServerSegment `json:"segments,omitempty"`
	DetectedLanguage            string                 `json:"detected_language,omitempty"`
	DetectedLanguageProbability float64                `json:"detected_language_probability,omitempty"`
}

// WhisperServerSegment represents a segment in verbose response
type WhisperServerSegment struct {
	ID    int     `json:"id"`
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// NewWhisperServerProvider creates a new whisper-server HTTP provider
func NewWhisperServerProvider(config WhisperServerConfig) *WhisperServerProvider {
	if config.InferencePath == "" {
		config.InferencePath = "/inference"
	}
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second
	}
	if config.ResponseFormat == "" {
		config.ResponseFormat = "verbose_json"
	}
	if config.CustomHeaders == nil {
		config.CustomHeaders = make(map[string]string)
	}

	return &WhisperServerProvider{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

// NewWhisperServerProviderFromSettings creates provider from generic settings
func NewWhisperServerProviderFromSettings(settings map[string]interface{}) (*WhisperServerProvider, error) {
	config := WhisperServerConfig{}

	baseURL, ok := settings["base_url"].(string)
	if !ok || baseURL == "" {
		return nil, fmt.Errorf("base_url is required")
	}
	config.BaseURL = strings.TrimRight(baseURL, "/")

	if inferencePath, ok := settings["inference_path"].(string); ok {
		config.InferencePath = inferencePath
	}
	if timeout, ok := settings["timeout"].(float64); ok {
		config.Timeout = time.Duration(timeout * float64(time.Second))
	}
	if responseFormat, ok := settings["response_format"].(string); ok {
		config.ResponseFormat = responseFormat
	}
	if temperature, ok := settings["temperature"].(float64); ok {
		config.Temperature = temperature
	}
	if headers, ok := settings["custom_headers"].(map[string]interface{}); ok {
		config.CustomHeaders = make(map[string]string)
		for k, v := range headers {
			if str, ok := v.(string); ok {
				config.CustomHeaders[k] = str
			}
		}
	}

	return NewWhisperServerProvider(config), nil
}

// TranscriptWithOptions uploads the file to /inference and returns the text and detected language
func (wsp *WhisperServerProvider) TranscriptWithOptions(ctx context.Context, request *provider.TranscriptionRequest) (*provider.TranscriptionResponse, error) {
	startTime := time.Now()

	if request.InputFilePath == "" {
		return nil, &provider.TranscriptionError{
			Code:     "invalid_input",
			Message:  "input file path is required",
			Provider: "whisper_server",
		}
	}

	if _, err := os.Stat(request.InputFilePath); os.IsNotExist(err) {
		return nil, &provider.TranscriptionError{
			Code:     "file_not_found",
			Message:  fmt.Sprintf("input file not found: %s", request.InputFilePath),
			Provider: "whisper_server",
		}
	}

	body, contentType, err := wsp.createMultipartForm(request)
	if err != nil {
		return nil, &provider.TranscriptionError{
			Code:     "form_creation_failed",
			Message:  fmt.Sprintf("failed to create multipart form: %v", err),
			Provider: "whisper_server",
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, wsp.config.BaseURL+wsp.config.InferencePath, body)
	if err != nil {
		return nil, &provider.TranscriptionError{
			Code:     "request_creation_failed",
			Message:  fmt.Sprintf("failed to create HTTP request: %v", err),
			Provider: "whisper_server",
		}
	}

	httpReq.Header.Set("Content-Type", contentType)
	for key, value := range wsp.config.CustomHeaders {
		httpReq.Header.Set(key, value)
	}

	resp, err := wsp.client.Do(httpReq)
	if err != nil {
		return nil, &provider.TranscriptionError{
			Code:      "request_failed",
			Message:   fmt.Sprintf("HTTP request failed: %v", err),
			Provider:  "whisper_server",
			Retryable: true,
		}
	}
	defer resp.Body.Close()

	responseData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &provider.TranscriptionError{
			Code:      "response_read_failed",
			Message:   fmt.Sprintf("failed to read response: %v", err),
			Provider:  "whisper_server",
			Retryable: true,
		}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &provider.TranscriptionError{
			Code:      "api_error",
			Message:   fmt.Sprintf("API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(responseData))),
			Provider:  "whisper_server",
			Retryable: resp.StatusCode >= 500,
		}
	}

	var parsed WhisperServerResponse
	if err := json.Unmarshal(responseData, &parsed); err != nil {
		return nil, &provider.TranscriptionError{
			Code:     "response_parse_failed",
			Message:  fmt.Sprintf("failed to parse response: %v", err),
			Provider: "whisper_server",
		}
	}

	text := strings.TrimSpace(parsed.Text)
	if text == "" {
		text = joinSegments(parsed.Segments)
	}

	return &provider.TranscriptionResponse{
		Text:           text,
		Language:       detectedLanguage(parsed, request),
		Duration:       time.Duration(parsed.Duration * float64(time.Second)),
		ProcessingTime: time.Since(startTime),
		ModelUsed:      "whisper-server",
	}, nil
}

// createMultipartForm creates the multipart form for the API request
func (wsp *WhisperServerProvider) createMultipartForm(request *provider.TranscriptionRequest) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	file, err := os.Open(request.InputFilePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %v", err)
	}
	defer file.Close()

	part, err := writer.CreateFormFile("file", filepath.Base(request.InputFilePath))
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file: %v", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", fmt.Errorf("failed to copy file content: %v", err)
	}

	language := request.Language
	if language == "" {
		language = provider.LanguageAuto
	}

	params := [][2]string{
		{"response_format", wsp.config.ResponseFormat},
		{"temperature", fmt.Sprintf("%.2f", wsp.config.Temperature)},
		{"language", language},
	}
	if request.Prompt != "" {
		params = append(params, [2]string{"prompt", request.Prompt})
	}

	for _, kv := range params {
		if err := writer.WriteField(kv[0], kv[1]); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %v", kv[0], err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %v", err)
	}

	return body, writer.FormDataContentType(), nil
}

// detectedLanguage prefers what the server detected; a concrete hint is the fallback.
func detectedLanguage(resp WhisperServerResponse, request *provider.TranscriptionRequest) string {
	if resp.Language != "" {
		return resp.Language
	}
	if resp.DetectedLanguage != "" {
		return resp.DetectedLanguage
	}
	if request.Language != provider.LanguageAuto {
		return request.Language
	}
	return ""
}

func joinSegments(segments []WhisperServerSegment) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if t := strings.TrimSpace(s.Text); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// GetProviderInfo returns metadata about the whisper-server provider
func (wsp *WhisperServerProvider) GetProviderInfo() provider.ProviderInfo {
	return provider.ProviderInfo{
		Name:                      "whisper_server",
		DisplayName:               "Whisper Server (HTTP API)",
		Type:                      provider.ProviderTypeRemote,
		SupportedFormats:          provider.AllFormats(),
		SupportsLanguageDetection: true,
		RequiresInternet:          true,
		DefaultModel:              "whisper-server",
	}
}

// ValidateConfiguration validates the provider configuration
func (wsp *WhisperServerProvider) ValidateConfiguration() error {
	if wsp.config.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if !strings.HasPrefix(wsp.config.BaseURL, "http://") && !strings.HasPrefix(wsp.config.BaseURL, "https://") {
		return fmt.Errorf("base_url must start with http:// or https://")
	}
	if wsp.config.Temperature < 0.0 || wsp.config.Temperature > 1.0 {
		return fmt.Errorf("temperature must be between 0.0 and 1.0")
	}
	if wsp.config.ResponseFormat != "json" && wsp.config.ResponseFormat != "verbose_json" {
		return fmt.Errorf("response_format must be one of: json, verbose_json")
	}
	return nil
}

// HealthCheck performs a health check on the provider
func (wsp *WhisperServerProvider) HealthCheck(ctx context.Context) error {
	if err := wsp.ValidateConfiguration(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, wsp.config.BaseURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create health check request: %w", err)
	}
	for key, value := range wsp.config.CustomHeaders {
		req.Header.Set(key, value)
	}

	resp, err := wsp.client.Do(req)
	if err != nil {
		return fmt.Errorf("server connectivity test failed: %w", err)
	}
	defer resp.Body.Close()

	// 503 can come from a proxy in front of a live server
	if resp.StatusCode >= 500 && resp.StatusCode != http.StatusServiceUnavailable {
		return fmt.Errorf("server returned error status: %d", resp.StatusCode)
	}

	return nil
}
