package services

import (
	"context"
	"mime/multipart"

	"go.uber.org/zap"

	"voicemap/internal/api/dto"
	"voicemap/internal/app/intake"
	"voicemap/internal/app/pipeline"
)

// Runner is the part of the pipeline the speech service drives
type Runner interface {
	Transcribe(ctx context.Context, inputFilePath string) (*pipeline.Transcription, error)
	SignLanguage(ctx context.Context, inputFilePath string) (*pipeline.SignLanguage, error)
}

// SpeechServiceImpl implements SpeechService
type SpeechServiceImpl struct {
	intake *intake.Intake
	runner Runner
	logger *zap.Logger
}

// NewSpeechService creates a new speech service
func NewSpeechService(in *intake.Intake, runner Runner, logger *zap.Logger) SpeechService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SpeechServiceImpl{
		intake: in,
		runner: runner,
		logger: logger,
	}
}

// Transcribe saves the upload, transcribes it and removes the temp file
func (s *SpeechServiceImpl) Transcribe(ctx context.Context, audio *multipart.FileHeader) (*dto.TranscribeResponse, error) {
	var resp *dto.TranscribeResponse
	err := s.withUpload(audio, func(path string) error {
		result, err := s.runner.Transcribe(ctx, path)
		if err != nil {
			return err
		}
		resp = &dto.TranscribeResponse{Transcription: result.Text}
		return nil
	})
	return resp, err
}

// SignLanguage saves the upload, runs the full pipeline and removes the temp file
func (s *SpeechServiceImpl) SignLanguage(ctx context.Context, audio *multipart.FileHeader) (*dto.SignLanguageResponse, error) {
	var resp *dto.SignLanguageResponse
	err := s.withUpload(audio, func(path string) error {
		result, err := s.runner.SignLanguage(ctx, path)
		if err != nil {
			return err
		}
		resp = &dto.SignLanguageResponse{
			Transcription: result.Text,
			Gloss:         result.Gloss,
			Videos:        result.Videos,
		}
		return nil
	})
	return resp, err
}

// withUpload stores the audio for the duration of fn. The file is removed
// whether fn succeeds, fails or panics.
func (s *SpeechServiceImpl) withUpload(audio *multipart.FileHeader, fn func(path string) error) error {
	path, err := s.intake.Save(audio)
	if err != nil {
		return err
	}
	defer s.intake.Remove(path)

	if err := fn(path); err != nil {
		s.logger.Debug("pipeline failed", zap.String("upload", audio.Filename), zap.Error(err))
		return err
	}
	return nil
}
