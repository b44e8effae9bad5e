package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"voicemap/internal/api/errors"
	"voicemap/internal/api/middleware"
	"voicemap/internal/api/services"
	"voicemap/internal/app/storage/signs"
)

// SignHandler serves sign video assets
type SignHandler struct {
	service services.SignService
}

// NewSignHandler creates a new sign handler
func NewSignHandler(service services.SignService) *SignHandler {
	return &SignHandler{
		service: service,
	}
}

// Get handles GET /signs/:filename
// @Summary Fetch a sign video
// @Tags Signs
// @Produce video/mp4
// @Param filename path string true "Video file name"
// @Failure 404 {object} errors.APIError
// @Router /signs/{filename} [get]
func (h *SignHandler) Get(c *gin.Context) {
	obj, err := h.service.Open(c.Request.Context(), c.Param("filename"))
	if err != nil {
		if stderrors.Is(err, signs.ErrNotFound) {
			middleware.HandleError(c, errors.NewNotFoundError())
			return
		}
		middleware.HandleError(c, errors.NewInternalError("Failed to open sign video"))
		return
	}
	defer obj.Close()

	if obj.ContentType != "" {
		c.Header("Content-Type", obj.ContentType)
	}
	http.ServeContent(c.Writer, c.Request, obj.Name, obj.ModTime, obj)
}
