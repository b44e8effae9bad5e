package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"voicemap/internal/api/services"
)

// HealthHandler reports service readiness
type HealthHandler struct {
	service services.HealthService
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(service services.HealthService) *HealthHandler {
	return &HealthHandler{
		service: service,
	}
}

// Get handles GET /health. ?deep=1 also checks every provider.
// @Summary Service health
// @Tags System
// @Produce json
// @Param deep query bool false "Also check every transcription provider"
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Get(c *gin.Context) {
	deep, _ := strconv.ParseBool(c.Query("deep"))

	resp, ok := h.service.Health(c.Request.Context(), deep)
	status := http.StatusOK
	if !ok {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}
