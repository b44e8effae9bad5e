package whisper_cpp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"voicemap/internal/app/api/provider"
	"voicemap/internal/app/audio"
)

// LocalTranscriber runs a local whisper.cpp binary and reads its JSON output.
type LocalTranscriber struct {
	config LocalProviderConfig
}

// LocalProviderConfig represents configuration specific to local whisper.cpp provider
type LocalProviderConfig struct {
	BinaryPath string        `yaml:"binary_path"`
	ModelPath  string        `yaml:"model_path"`
	FFmpegPath string        `yaml:"ffmpeg_path"`
	Prompt     string        `yaml:"prompt"`
	Threads    int           `yaml:"threads"`
	TempDir    string        `yaml:"temp_dir"`
	Timeout    time.Duration `yaml:"timeout"`
}

// whisperCppOutput is the document written by `-oj`.
type whisperCppOutput struct {
	Result struct {
		Language string `json:"language"`
	} `json:"result"`
	Transcription []struct {
		Text string `json:"text"`
	} `json:"transcription"`
}

// NewLocalTranscriber creates a new instance of LocalTranscriber.
func NewLocalTranscriber(config LocalProviderConfig) *LocalTranscriber {
	if config.FFmpegPath == "" {
		config.FFmpegPath = "ffmpeg"
	}
	return &LocalTranscriber{config: config}
}

// NewLocalTranscriberFromSettings creates a transcriber from generic settings
func NewLocalTranscriberFromSettings(settings map[string]interface{}) (*LocalTranscriber, error) {
	config := LocalProviderConfig{}

	binaryPath, ok := settings["binary_path"].(string)
	if !ok || binaryPath == "" {
		return nil, fmt.Errorf("whisper_cpp provider requires 'binary_path' setting")
	}
	config.BinaryPath = binaryPath

	modelPath, ok := settings["model_path"].(string)
	if !ok || modelPath == "" {
		return nil, fmt.Errorf("whisper_cpp provider requires 'model_path' setting")
	}
	config.ModelPath = modelPath

	if ffmpegPath, ok := settings["ffmpeg_path"].(string); ok {
		config.FFmpegPath = ffmpegPath
	}
	if prompt, ok := settings["prompt"].(string); ok {
		config.Prompt = prompt
	}
	if threads, ok := settings["threads"].(float64); ok {
		config.Threads = int(threads)
	}
	if tempDir, ok := settings["temp_dir"].(string); ok {
		config.TempDir = tempDir
	}
	if timeout, ok := settings["timeout"].(float64); ok {
		config.Timeout = time.Duration(timeout * float64(time.Second))
	}

	return NewLocalTranscriber(config), nil
}

// TranscriptWithOptions runs the binary with language auto-detection and JSON output
func (lt *LocalTranscriber) TranscriptWithOptions(ctx context.Context, request *provider.TranscriptionRequest) (*provider.TranscriptionResponse, error) {
	startTime := time.Now()

	if request.InputFilePath == "" {
		return nil, &provider.TranscriptionError{
			Code:     "invalid_input",
			Message:  "input file path is required",
			Provider: "whisper_cpp",
		}
	}

	if _, err := os.Stat(request.InputFilePath); os.IsNotExist(err) {
		return nil, &provider.TranscriptionError{
			Code:     "file_not_found",
			Message:  fmt.Sprintf("input file not found: %s", request.InputFilePath),
			Provider: "whisper_cpp",
		}
	}

	if lt.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, lt.config.Timeout)
		defer cancel()
	}

	workDir, err := os.MkdirTemp(lt.config.TempDir, "whisper_cpp_")
	if err != nil {
		return nil, &provider.TranscriptionError{
			Code:      "temp_dir_error",
			Message:   fmt.Sprintf("failed to create temp directory: %v", err),
			Provider:  "whisper_cpp",
			Retryable: true,
		}
	}
	defer os.RemoveAll(workDir)

	inputFilePath := request.InputFilePath
	if audio.NeedsConversion(inputFilePath) {
		inputFilePath, err = audio.ConvertTo16kHzWav(ctx, lt.config.FFmpegPath, request.InputFilePath, workDir)
		if err != nil {
			return nil, &provider.TranscriptionError{
				Code:     "audio_conversion_error",
				Message:  fmt.Sprintf("error converting input file: %v", err),
				Provider: "whisper_cpp",
			}
		}
	}

	language := request.Language
	if language == "" {
		language = provider.LanguageAuto
	}

	outputBase := filepath.Join(workDir, "transcript")
	args := []string{
		"-m", lt.config.ModelPath,
		"-l", language,
		"-oj",
		"-np",
		"-f", inputFilePath,
		"-of", outputBase,
	}
	if prompt := lt.getPrompt(request); prompt != "" {
		args = append(args, "--prompt", prompt)
	}
	if lt.config.Threads > 0 {
		args = append(args, "-t", fmt.Sprintf("%d", lt.config.Threads))
	}

	command := exec.CommandContext(ctx, lt.config.BinaryPath, args...)
	var stderr bytes.Buffer
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &provider.TranscriptionError{
			Code:      "transcription_failed",
			Message:   fmt.Sprintf("command execution error: %v, stderr: %s", err, strings.TrimSpace(stderr.String())),
			Provider:  "whisper_cpp",
			Retryable: true,
		}
	}

	text, detected, err := readOutputFile(outputBase + ".json")
	if err != nil {
		return nil, &provider.TranscriptionError{
			Code:     "response_parse_failed",
			Message:  fmt.Sprintf("failed to read output file: %v", err),
			Provider: "whisper_cpp",
		}
	}

	return &provider.TranscriptionResponse{
		Text:           text,
		Language:       detected,
		ProcessingTime: time.Since(startTime),
		ModelUsed:      filepath.Base(lt.config.ModelPath),
	}, nil
}

func readOutputFile(path string) (string, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}

	var out whisperCppOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return "", "", err
	}

	parts := make([]string, 0, len(out.Transcription))
	for _, segment := range out.Transcription {
		if t := strings.TrimSpace(segment.Text); t != "" {
			parts = append(parts, t)
		}
	}

	return strings.Join(parts, " "), out.Result.Language, nil
}

func (lt *LocalTranscriber) getPrompt(request *provider.TranscriptionRequest) string {
	if request.Prompt != "" {
		return request.Prompt
	}
	return lt.config.Prompt
}

// GetProviderInfo returns metadata about the whisper.cpp provider
func (lt *LocalTranscriber) GetProviderInfo() provider.ProviderInfo {
	return provider.ProviderInfo{
		Name:                      "whisper_cpp",
		DisplayName:               "Whisper.cpp (Local)",
		Type:                      provider.ProviderTypeLocal,
		SupportedFormats:          provider.AllFormats(),
		SupportsLanguageDetection: true,
		RequiresBinary:            true,
		DefaultModel:              filepath.Base(lt.config.ModelPath),
	}
}

// ValidateConfiguration checks that the binary and model are present
func (lt *LocalTranscriber) ValidateConfiguration() error {
	if lt.config.BinaryPath == "" {
		return fmt.Errorf("binary_path is required")
	}
	if lt.config.ModelPath == "" {
		return fmt.Errorf("model_path is required")
	}
	if _, err := exec.LookPath(lt.config.BinaryPath); err != nil {
		return fmt.Errorf("whisper.cpp binary not found: %s", lt.config.BinaryPath)
	}
	if _, err := os.Stat(lt.config.ModelPath); err != nil {
		return fmt.Errorf("model file not found: %s", lt.config.ModelPath)
	}
	return nil
}

// HealthCheck performs a health check on the provider
func (lt *LocalTranscriber) HealthCheck(ctx context.Context) error {
	if err := lt.ValidateConfiguration(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return ctx.Err()
}
