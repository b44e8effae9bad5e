package dto

import (
	"mime/multipart"

	"voicemap/internal/app/gloss"
)

// UploadRequest is the multipart form accepted by both speech endpoints
type UploadRequest struct {
	Audio *multipart.FileHeader `form:"audio" binding:"required"`
}

// TranscribeResponse is returned by POST /transcribe
type TranscribeResponse struct {
	Transcription string `json:"transcription"`
}

// SignLanguageResponse is returned by POST /sign-language
type SignLanguageResponse struct {
	Transcription string           `json:"transcription"`
	Gloss         []string         `json:"gloss"`
	Videos        []gloss.VideoRef `json:"videos"`
}
