package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

// Config is the explicitly constructed service configuration handed to every component.
type Config struct {
	Host         string        `validate:"required"`
	Port         int           `validate:"min=1,max=65535"`
	Environment  string        `validate:"oneof=development production test"`
	LogLevel     string        `validate:"oneof=debug info warn error"`
	ReadTimeout  time.Duration `validate:"gt=0"`
	WriteTimeout time.Duration `validate:"gt=0"`

	UploadDir   string `validate:"required"`
	FrontendDir string `validate:"required"`
	SignsDir    string `validate:"required"`
	LexiconPath string
	MaxUploadMB int64 `validate:"min=1,max=1024"`

	SupportedLanguages  []string `validate:"min=1,dive,len=2"`
	LanguageErrorStatus int      `validate:"oneof=400 500"`

	Transcription TranscriptionConfig
	SignStore     SignStoreConfig
}

// TranscriptionConfig selects and configures the speech-to-text engine.
type TranscriptionConfig struct {
	Provider         string        `validate:"oneof=whisper_server openai whisper_cpp"`
	Timeout          time.Duration `validate:"gt=0"`
	WhisperServerURL string        `validate:"omitempty,url"`
	WhisperCppBinary string        `validate:"required_if=Provider whisper_cpp"`
	WhisperCppModel  string        `validate:"required_if=Provider whisper_cpp"`
	OpenAIAPIKey     string        `validate:"required_if=Provider openai"`
	OpenAIBaseURL    string        `validate:"omitempty,url"`
	OpenAIModel      string
}

// SignStoreConfig points /signs at a MinIO bucket instead of the local directory.
type SignStoreConfig struct {
	Endpoint  string
	AccessKey string `validate:"required_with=Endpoint"`
	SecretKey string `validate:"required_with=Endpoint"`
	Bucket    string `validate:"required_with=Endpoint"`
	UseSSL    bool
}

// Enabled reports whether sign videos are served from object storage.
func (s SignStoreConfig) Enabled() bool {
	return s.Endpoint != ""
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// MaxUploadBytes returns the multipart memory limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

// LoadEnv loads environment variables from the first .env file found and returns its path.
// A missing file is not an error; variables may be set system-wide.
func LoadEnv() (string, error) {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return "", fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			return envPath, nil
		}
	}

	return "", nil
}

// FromEnv builds a Config from process environment variables, applying defaults.
func FromEnv() (*Config, error) {
	port, err := getEnvInt("PORT", DefaultPort)
	if err != nil {
		return nil, err
	}
	maxUpload, err := getEnvInt("MAX_UPLOAD_MB", DefaultMaxUploadMB)
	if err != nil {
		return nil, err
	}
	languageStatus, err := getEnvInt("LANGUAGE_ERROR_STATUS", DefaultLanguageErrorStatus)
	if err != nil {
		return nil, err
	}
	readTimeout, err := getEnvDuration("READ_TIMEOUT", DefaultReadTimeout)
	if err != nil {
		return nil, err
	}
	writeTimeout, err := getEnvDuration("WRITE_TIMEOUT", DefaultWriteTimeout)
	if err != nil {
		return nil, err
	}
	transcriptionTimeout, err := getEnvDuration("TRANSCRIPTION_TIMEOUT", DefaultTranscriptionTimeout)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Host:                getEnvOrDefault("HOST", DefaultHost),
		Port:                port,
		Environment:         getEnvOrDefault("ENVIRONMENT", "development"),
		LogLevel:            strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
		ReadTimeout:         readTimeout,
		WriteTimeout:        writeTimeout,
		UploadDir:           absPath(getEnvOrDefault("UPLOAD_DIR", DefaultUploadDir)),
		FrontendDir:         absPath(getEnvOrDefault("FRONTEND_DIR", DefaultFrontendDir)),
		SignsDir:            absPath(getEnvOrDefault("SIGNS_DIR", DefaultSignsDir)),
		LexiconPath:         strings.TrimSpace(os.Getenv("GLOSS_LEXICON")),
		MaxUploadMB:         int64(maxUpload),
		SupportedLanguages:  parseList(getEnvOrDefault("SUPPORTED_LANGUAGES", strings.Join(DefaultSupportedLanguages, ","))),
		LanguageErrorStatus: languageStatus,
		Transcription: TranscriptionConfig{
			Provider:         getEnvOrDefault("TRANSCRIPTION_PROVIDER", DefaultProvider),
			Timeout:          transcriptionTimeout,
			WhisperServerURL: getEnvOrDefault("WHISPER_SERVER_URL", DefaultWhisperServerURL),
			WhisperCppBinary: os.Getenv("WHISPER_CPP_BINARY"),
			WhisperCppModel:  os.Getenv("WHISPER_CPP_MODEL"),
			OpenAIAPIKey:     strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
			OpenAIBaseURL:    os.Getenv("OPENAI_BASE_URL"),
			OpenAIModel:      getEnvOrDefault("OPENAI_MODEL", DefaultOpenAIModel),
		},
		SignStore: SignStoreConfig{
			Endpoint:  os.Getenv("SIGNS_MINIO_ENDPOINT"),
			AccessKey: os.Getenv("SIGNS_MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("SIGNS_MINIO_SECRET_KEY"),
			Bucket:    getEnvOrDefault("SIGNS_MINIO_BUCKET", DefaultSignsBucket),
			UseSSL:    os.Getenv("SIGNS_MINIO_USE_SSL") == "true",
		},
	}

	return cfg, nil
}

// Load is the main entry point for configuration loading: .env, environment, validation.
func Load() (*Config, string, error) {
	envFile, err := LoadEnv()
	if err != nil {
		return nil, "", fmt.Errorf("failed to load environment: %w", err)
	}

	cfg, err := FromEnv()
	if err != nil {
		return nil, envFile, err
	}

	if err := Validate(cfg); err != nil {
		return nil, envFile, err
	}

	return cfg, envFile, nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be an integer", key, value)
	}
	return n, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return d, nil
}

func parseList(value string) []string {
	parts := lo.Map(strings.Split(value, ","), func(s string, _ int) string {
		return strings.ToLower(strings.TrimSpace(s))
	})
	return lo.Uniq(lo.Compact(parts))
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
