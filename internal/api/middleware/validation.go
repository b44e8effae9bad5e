package middleware

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"voicemap/internal/api/errors"
	apperrors "voicemap/internal/app/errors"
)

// BodyLimit caps the request body; reads past the limit fail
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// BindUpload binds a multipart upload request. Non-multipart bodies and any failure to find a file
// under the expected field is reported as MissingFile.
func BindUpload(c *gin.Context, req interface{}) error {
	if c.ContentType() != binding.MIMEMultipartPOSTForm {
		return apperrors.ErrMissingFile
	}
	if err := c.ShouldBind(req); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return errors.NewRequestTooLargeError()
		}
		return apperrors.ErrMissingFile
	}
	return nil
}
