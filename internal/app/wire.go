//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"voicemap/internal/api/server"
	"voicemap/internal/api/services"
	"voicemap/internal/app/gloss"
	"voicemap/internal/app/metrics"
	"voicemap/internal/app/pipeline"
	"voicemap/internal/app/api/provider"
	"voicemap/internal/config"
)

var pipelineSet = wire.NewSet(
	provideGate,
	provideLexicon,
	gloss.NewGlosser,
	gloss.NewService,
	provideProviderRegistry,
	provideTranscriber,
	metrics.New,
	pipeline.New,
	wire.Bind(new(pipeline.Transcriber), new(*provider.TranscriberAdapter)),
	wire.Bind(new(pipeline.GlossMapper), new(*gloss.Service)),
)

// InitializeServer builds the HTTP server and everything behind it
func InitializeServer(cfg *config.Config, logger *zap.Logger) (*server.Server, error) {
	wire.Build(
		pipelineSet,
		provideIntake,
		provideSignStore,
		provideHealthService,
		provideServiceContainer,
		services.NewSpeechService,
		server.NewServer,
		wire.Bind(new(services.Runner), new(*pipeline.Pipeline)),
	)
	return &server.Server{}, nil
}

// InitializePipeline builds the transcription pipeline for the batch CLI
func InitializePipeline(cfg *config.Config, logger *zap.Logger) (*pipeline.Pipeline, error) {
	wire.Build(pipelineSet)
	return &pipeline.Pipeline{}, nil
}
