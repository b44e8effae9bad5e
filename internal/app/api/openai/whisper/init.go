package whisper

import (
	"voicemap/internal/app/api/provider"
)

func init() {
	provider.RegisterProvider("openai", func(settings map[string]interface{}) (provider.TranscriptionProvider, error) {
		return NewRemoteTranscriberFromSettings(settings)
	})
}
