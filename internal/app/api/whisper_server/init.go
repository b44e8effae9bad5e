package whisper_server

import (
	"voicemap/internal/app/api/provider"
)

func init() {
	provider.RegisterProvider("whisper_server", func(settings map[string]interface{}) (provider.TranscriptionProvider, error) {
		return NewWhisperServerProviderFromSettings(settings)
	})
}
