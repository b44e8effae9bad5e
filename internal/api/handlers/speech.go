package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voicemap/internal/api/dto"
	"voicemap/internal/api/middleware"
	"voicemap/internal/api/services"
)

// SpeechHandler handles the audio upload endpoints
type SpeechHandler struct {
	service services.SpeechService
}

// NewSpeechHandler creates a new speech handler
func NewSpeechHandler(service services.SpeechService) *SpeechHandler {
	return &SpeechHandler{
		service: service,
	}
}

// Transcribe handles POST /transcribe
// Accepts multipart field "audio" and returns {"transcription": text}
// @Summary Transcribe audio
// @Tags Speech
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "Audio file (wav, mp3, ogg, webm, m4a, flac)"
// @Success 200 {object} dto.TranscribeResponse
// @Failure 400 {object} errors.APIError
// @Failure 413 {object} errors.APIError
// @Failure 500 {object} errors.APIError
// @Router /transcribe [post]
func (h *SpeechHandler) Transcribe(c *gin.Context) {
	var req dto.UploadRequest
	if err := middleware.BindUpload(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	resp, err := h.service.Transcribe(c.Request.Context(), req.Audio)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SignLanguage handles POST /sign-language
// Returns the transcription, its gloss tokens and the matching sign videos
// @Summary Translate audio to sign language
// @Tags Speech
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "Audio file (wav, mp3, ogg, webm, m4a, flac)"
// @Success 200 {object} dto.SignLanguageResponse
// @Failure 400 {object} errors.APIError
// @Failure 413 {object} errors.APIError
// @Failure 500 {object} errors.APIError
// @Router /sign-language [post]
func (h *SpeechHandler) SignLanguage(c *gin.Context) {
	var req dto.UploadRequest
	if err := middleware.BindUpload(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	resp, err := h.service.SignLanguage(c.Request.Context(), req.Audio)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
