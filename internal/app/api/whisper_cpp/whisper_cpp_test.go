package whisper_cpp

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicemap/internal/app/api/provider"
)

// fakeWhisperCli writes a shell script that mimics `whisper-cli -oj -of <base>`
func fakeWhisperCli(t *testing.T, output string, exitCode int) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixture requires a POSIX shell")
	}

	script := `#!/bin/sh
out=""
while [ $# -gt 0 ]; do
  if [ "$1" = "-of" ]; then out="$2"; fi
  shift
done
cat > "$out.json" <<'JSON'
` + output + `
JSON
echo "whisper failed" >&2
exit ` + string(rune('0'+exitCode)) + `
`
	path := filepath.Join(t.TempDir(), "whisper-cli")
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

func setupFixture(t *testing.T, binary string) (*LocalTranscriber, string) {
	t.Helper()
	dir := t.TempDir()
	model := filepath.Join(dir, "ggml-base.bin")
	require.NoError(t, os.WriteFile(model, []byte("model"), 0644))
	input := filepath.Join(dir, "clip.wav")
	require.NoError(t, os.WriteFile(input, []byte("RIFF"), 0644))

	return NewLocalTranscriber(LocalProviderConfig{
		BinaryPath: binary,
		ModelPath:  model,
		TempDir:    dir,
	}), input
}

func TestLocalTranscriber_TranscriptWithOptions(t *testing.T) {
	binary := fakeWhisperCli(t, `{"result":{"language":"en"},"transcription":[{"text":" I am going"},{"text":" to school "}]}`, 0)
	lt, input := setupFixture(t, binary)

	resp, err := lt.TranscriptWithOptions(context.Background(), &provider.TranscriptionRequest{
		InputFilePath: input,
		Language:      provider.LanguageAuto,
	})
	require.NoError(t, err)

	assert.Equal(t, "I am going to school", resp.Text)
	assert.Equal(t, "en", resp.Language)
	assert.Equal(t, "ggml-base.bin", resp.ModelUsed)
}

func TestLocalTranscriber_CommandFailure(t *testing.T) {
	binary := fakeWhisperCli(t, `{}`, 1)
	lt, input := setupFixture(t, binary)

	_, err := lt.TranscriptWithOptions(context.Background(), &provider.TranscriptionRequest{InputFilePath: input})

	var tErr *provider.TranscriptionError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, "transcription_failed", tErr.Code)
	assert.Contains(t, tErr.Message, "whisper failed")
}

func TestLocalTranscriber_MalformedOutput(t *testing.T) {
	binary := fakeWhisperCli(t, `not json`, 0)
	lt, input := setupFixture(t, binary)

	_, err := lt.TranscriptWithOptions(context.Background(), &provider.TranscriptionRequest{InputFilePath: input})

	var tErr *provider.TranscriptionError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, "response_parse_failed", tErr.Code)
}

func TestLocalTranscriber_ValidateConfiguration(t *testing.T) {
	binary := fakeWhisperCli(t, `{}`, 0)
	lt, _ := setupFixture(t, binary)
	assert.NoError(t, lt.ValidateConfiguration())
	assert.NoError(t, lt.HealthCheck(context.Background()))

	missingModel := NewLocalTranscriber(LocalProviderConfig{BinaryPath: binary, ModelPath: "/nonexistent/model.bin"})
	assert.ErrorContains(t, missingModel.ValidateConfiguration(), "model file not found")

	missingBinary := NewLocalTranscriber(LocalProviderConfig{BinaryPath: "/nonexistent/whisper-cli", ModelPath: "m"})
	assert.ErrorContains(t, missingBinary.ValidateConfiguration(), "binary not found")
}

func TestLocalTranscriber_RegisteredCreator(t *testing.T) {
	creator, err := provider.GetProviderCreator("whisper_cpp")
	require.NoError(t, err)

	_, err = creator(map[string]interface{}{"model_path": "m.bin"})
	assert.ErrorContains(t, err, "binary_path")

	p, err := creator(map[string]interface{}{"binary_path": "whisper-cli", "model_path": "m.bin", "timeout": 60.0})
	require.NoError(t, err)
	assert.Equal(t, "whisper_cpp", p.GetProviderInfo().Name)
}
