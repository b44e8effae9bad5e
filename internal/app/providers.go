package app

import (
	"go.uber.org/zap"

	"voicemap/internal/api/routes"
	"voicemap/internal/api/services"
	"voicemap/internal/app/api/provider"
	"voicemap/internal/app/gloss"
	"voicemap/internal/app/intake"
	"voicemap/internal/app/language"
	"voicemap/internal/app/metrics"
	"voicemap/internal/app/storage/signs"
	"voicemap/internal/config"

	// Register transcription engines with the provider factory
	_ "voicemap/internal/app/api/openai/whisper"
	_ "voicemap/internal/app/api/whisper_cpp"
	_ "voicemap/internal/app/api/whisper_server"
)

func provideIntake(cfg *config.Config, logger *zap.Logger) (*intake.Intake, error) {
	return intake.New(cfg.UploadDir, logger.Named("intake"))
}

func provideLexicon(cfg *config.Config) (*gloss.Lexicon, error) {
	return gloss.LoadLexicon(cfg.LexiconPath)
}

func provideGate(cfg *config.Config) *language.Gate {
	return language.NewGate(cfg.SupportedLanguages)
}

func provideProviderRegistry(cfg *config.Config) (*provider.DefaultProviderRegistry, error) {
	return provider.NewRegistryFromConfig(cfg.Transcription)
}

// provideTranscriber bounds every engine call by the configured transcription timeout
func provideTranscriber(registry *provider.DefaultProviderRegistry, cfg *config.Config) *provider.TranscriberAdapter {
	return provider.NewTranscriberAdapter(registry, cfg.Transcription.Timeout)
}

func provideSignStore(cfg *config.Config) (signs.Store, error) {
	return signs.New(cfg)
}

func provideHealthService(registry *provider.DefaultProviderRegistry, gate *language.Gate, store signs.Store) services.HealthService {
	return services.NewHealthService(registry, gate.Supported(), store)
}

func provideServiceContainer(
	cfg *config.Config,
	speech services.SpeechService,
	health services.HealthService,
	store signs.Store,
	m *metrics.Metrics,
) *routes.ServiceContainer {
	return &routes.ServiceContainer{
		SpeechService: speech,
		HealthService: health,
		SignService:   services.NewSignService(store),
		Metrics:       m,
		FrontendDir:   cfg.FrontendDir,
	}
}
