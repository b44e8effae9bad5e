package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"voicemap/internal/api/errors"
	"voicemap/internal/api/middleware"
)

// StaticHandler serves the single-page frontend from a directory
type StaticHandler struct {
	dir string
}

// NewStaticHandler creates a new static handler rooted at dir
func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{dir: dir}
}

// Index handles GET /
func (h *StaticHandler) Index(c *gin.Context) {
	h.serve(c, "index.html")
}

// Fallback serves any unmatched GET or HEAD path from the frontend directory
func (h *StaticHandler) Fallback(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		middleware.HandleError(c, errors.NewNotFoundError())
		return
	}
	h.serve(c, c.Request.URL.Path)
}

// MethodNotAllowed answers a registered path requested with an unregistered method
func MethodNotAllowed(c *gin.Context) {
	middleware.HandleError(c, errors.NewMethodNotAllowedError())
}

func (h *StaticHandler) serve(c *gin.Context, name string) {
	clean := strings.TrimPrefix(path.Clean("/"+name), "/")
	if clean == "" {
		clean = "index.html"
	}

	fullPath := filepath.Join(h.dir, filepath.FromSlash(clean))
	info, err := os.Stat(fullPath)
	if err != nil || info.IsDir() {
		middleware.HandleError(c, errors.NewNotFoundError())
		return
	}

	c.File(fullPath)
}
