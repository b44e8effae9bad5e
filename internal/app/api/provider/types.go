package provider

import (
	"time"
)

// AudioFormat defines supported audio formats
type AudioFormat string

const (
	FormatWAV  AudioFormat = "wav"
	FormatMP3  AudioFormat = "mp3"
	FormatMP4  AudioFormat = "mp4"
	FormatMPEG AudioFormat = "mpeg"
	FormatMPGA AudioFormat = "mpga"
	FormatM4A  AudioFormat = "m4a"
	FormatWEBM AudioFormat = "webm"
)

// ProviderType defines the type of transcription provider
type ProviderType string

const (
	ProviderTypeLocal  ProviderType = "local"
	ProviderTypeRemote ProviderType = "remote"
)

// LanguageAuto asks the engine to detect the spoken language.
const LanguageAuto = "auto"

// TranscriptionRequest represents a transcription request
type TranscriptionRequest struct {
	InputFilePath string `json:"input_file_path"`

	// Language hint; empty or "auto" lets the engine detect it
	Language string `json:"language,omitempty"`
	Model    string `json:"model,omitempty"`
	Prompt   string `json:"prompt,omitempty"`
}

// TranscriptionResponse represents the response from a transcription provider
type TranscriptionResponse struct {
	Text string `json:"text"`

	// Detected language as reported by the engine, before normalization
	Language string        `json:"language,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`

	ProcessingTime time.Duration `json:"processing_time,omitempty"`
	ModelUsed      string        `json:"model_used,omitempty"`
}

// ProviderInfo contains metadata about a transcription provider
type ProviderInfo struct {
	Name        string       `json:"name"`
	DisplayName string       `json:"display_name"`
	Type        ProviderType `json:"type"`

	SupportedFormats          []AudioFormat `json:"supported_formats"`
	SupportsLanguageDetection bool          `json:"supports_language_detection"`

	RequiresInternet bool `json:"requires_internet"`
	RequiresAPIKey   bool `json:"requires_api_key"`
	RequiresBinary   bool `json:"requires_binary"`

	DefaultModel string `json:"default_model,omitempty"`
}

// TranscriptionError represents provider-specific errors
type TranscriptionError struct {
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	Provider    string   `json:"provider"`
	Retryable   bool     `json:"retryable"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func (e *TranscriptionError) Error() string {
	return e.Message
}

// AllFormats lists every upload format the service accepts.
func AllFormats() []AudioFormat {
	return []AudioFormat{FormatMP3, FormatMP4, FormatMPEG, FormatMPGA, FormatM4A, FormatWAV, FormatWEBM}
}
