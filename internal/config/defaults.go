package config

import "time"

// Default configuration constants
const (
	// Network defaults
	DefaultHost = "0.0.0.0"
	DefaultPort = 5001

	// Timeout defaults
	DefaultReadTimeout          = 60 * time.Second
	DefaultWriteTimeout         = 10 * time.Minute
	DefaultTranscriptionTimeout = 5 * time.Minute

	// Filesystem defaults
	DefaultUploadDir   = "uploads"
	DefaultFrontendDir = "frontend"
	DefaultSignsDir    = "signs"
	DefaultMaxUploadMB = 25

	// Pipeline defaults
	DefaultProvider            = "whisper_server"
	DefaultWhisperServerURL    = "http://127.0.0.1:8080"
	DefaultOpenAIModel         = "whisper-1"
	DefaultLanguageErrorStatus = 500
	DefaultSignsBucket         = "signs"
)

// DefaultSupportedLanguages are the transcript languages the gloss stage understands.
var DefaultSupportedLanguages = []string{"en", "hi"}
