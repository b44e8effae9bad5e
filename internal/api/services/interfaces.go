package services

import (
	"context"
	"mime/multipart"

	"voicemap/internal/api/dto"
	"voicemap/internal/app/storage/signs"
)

// SpeechService runs uploaded audio through the pipeline
type SpeechService interface {
	Transcribe(ctx context.Context, audio *multipart.FileHeader) (*dto.TranscribeResponse, error)
	SignLanguage(ctx context.Context, audio *multipart.FileHeader) (*dto.SignLanguageResponse, error)
}

// HealthService reports service readiness
type HealthService interface {
	Health(ctx context.Context, deep bool) (*dto.HealthResponse, bool)
}

// SignService opens sign video assets
type SignService interface {
	Open(ctx context.Context, filename string) (*signs.Object, error)
}
