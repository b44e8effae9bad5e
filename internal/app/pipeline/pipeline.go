package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperrors "voicemap/internal/app/errors"
	"voicemap/internal/app/gloss"
	"voicemap/internal/app/language"
	"voicemap/internal/app/metrics"
)

// Transcriber turns an audio file into text and a detected language code.
type Transcriber interface {
	Transcribe(ctx context.Context, inputFilePath string) (text string, lang string, err error)
}

// GlossMapper converts text to gloss tokens and tokens to sign videos.
type GlossMapper interface {
	GlossText(text string) ([]string, error)
	MapGlossToVideos(tokens []string) ([]gloss.VideoRef, error)
}

// named is implemented by transcribers that can report their engine.
type named interface {
	ProviderName() string
}

// Transcription is the language-checked output of the speech stage.
type Transcription struct {
	Text     string
	Language string
}

// SignLanguage is the full pipeline output.
type SignLanguage struct {
	Transcription
	Gloss  []string
	Videos []gloss.VideoRef
}

// Pipeline runs Transcribe, the language gate and optionally the gloss stage.
// Every failure comes back as an *errors.Error with a kind the API can map.
type Pipeline struct {
	transcriber Transcriber
	gate        *language.Gate
	glosser     GlossMapper
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// New creates a pipeline. m may be nil.
func New(transcriber Transcriber, gate *language.Gate, glosser GlossMapper, m *metrics.Metrics, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		transcriber: transcriber,
		gate:        gate,
		glosser:     glosser,
		metrics:     m,
		logger:      logger,
	}
}

// Transcribe runs the engine on a saved upload and applies the language gate.
func (p *Pipeline) Transcribe(ctx context.Context, inputFilePath string) (*Transcription, error) {
	providerName := "unknown"
	if n, ok := p.transcriber.(named); ok && n.ProviderName() != "" {
		providerName = n.ProviderName()
	}

	start := time.Now()
	text, lang, err := p.transcriber.Transcribe(ctx, inputFilePath)
	elapsed := time.Since(start)
	if err != nil {
		p.metrics.RecordTranscriptionFailure(providerName, elapsed)
		p.logger.Warn("transcription failed",
			zap.String("provider", providerName),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		return nil, apperrors.Wrap(err, apperrors.KindTranscription, "transcription failed")
	}
	p.metrics.RecordTranscriptionSuccess(providerName, elapsed)

	detected := lang
	text, lang, err = p.gate.Check(text, lang)
	if err != nil {
		p.metrics.RecordLanguageRejection(detected)
		p.logger.Info("language rejected", zap.String("language", detected))
		return nil, err
	}

	p.logger.Debug("transcription accepted",
		zap.String("provider", providerName),
		zap.String("language", lang),
		zap.Int("chars", len(text)),
		zap.Duration("elapsed", elapsed))

	return &Transcription{Text: text, Language: lang}, nil
}

// SignLanguage runs the full pipeline through gloss mapping.
func (p *Pipeline) SignLanguage(ctx context.Context, inputFilePath string) (*SignLanguage, error) {
	transcription, err := p.Transcribe(ctx, inputFilePath)
	if err != nil {
		return nil, err
	}

	tokens, err := p.glosser.GlossText(transcription.Text)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindGlossMapping, "gloss generation failed")
	}

	videos, err := p.glosser.MapGlossToVideos(tokens)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindGlossMapping, "video mapping failed")
	}

	missing := 0
	for _, v := range videos {
		if v.Missing {
			missing++
		}
	}
	p.metrics.RecordGlossTokens(len(videos)-missing, missing)

	if tokens == nil {
		tokens = []string{}
	}
	if videos == nil {
		videos = []gloss.VideoRef{}
	}

	return &SignLanguage{
		Transcription: *transcription,
		Gloss:         tokens,
		Videos:        videos,
	}, nil
}
