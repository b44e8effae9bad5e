package audio

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Containers whisper.cpp cannot decode on its own and that need ffmpeg first.
var needsFFmpeg = map[string]bool{
	".m4a":  true,
	".mp4":  true,
	".mpeg": true,
	".webm": true,
}

// NeedsConversion reports whether a file must be converted to WAV before a local engine can read it.
func NeedsConversion(filePath string) bool {
	return needsFFmpeg[strings.ToLower(filepath.Ext(filePath))]
}

// ConvertTo16kHzWav writes a 16kHz mono PCM copy of the input into outDir and returns its path.
func ConvertTo16kHzWav(ctx context.Context, ffmpegPath, inputFilePath, outDir string) (string, error) {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}

	base := strings.TrimSuffix(filepath.Base(inputFilePath), filepath.Ext(inputFilePath))
	outputFilePath := filepath.Join(outDir, base+"_16khz.wav")

	cmd := exec.CommandContext(ctx, ffmpegPath, "-y", "-i", inputFilePath, "-vn", "-acodec", "pcm_s16le", "-ar", "16000", "-ac", "1", outputFilePath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("FFmpeg error: %v, stderr: %s", err, strings.TrimSpace(stderr.String()))
	}

	return outputFilePath, nil
}
