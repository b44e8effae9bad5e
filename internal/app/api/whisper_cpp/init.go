package whisper_cpp

import (
	"voicemap/internal/app/api/provider"
)

func init() {
	provider.RegisterProvider("whisper_cpp", func(settings map[string]interface{}) (provider.TranscriptionProvider, error) {
		return NewLocalTranscriberFromSettings(settings)
	})
}
