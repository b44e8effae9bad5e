package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voicemap/internal/api/errors"
)

const statusMapperKey = "status_mapper"

// ErrorHandler installs the status mapper for HandleError and turns panics into 500 JSON responses
func ErrorHandler(logger *zap.Logger, mapper errors.StatusMapper) gin.HandlerFunc {
	recovery := gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := c.GetString(RequestIDKey)

		logger.Error("Recovered from panic",
			zap.Any("recovered", recovered),
			zap.String("request_id", requestID),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)

		apiErr := errors.NewInternalError("Internal server error")
		apiErr.RequestID = requestID
		c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
	})

	return func(c *gin.Context) {
		c.Set(statusMapperKey, mapper)
		recovery(c)
	}
}

// HandleError is a helper function for handlers to return errors
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	mapper := errors.NewStatusMapper(0)
	if m, ok := c.Get(statusMapperKey); ok {
		mapper = m.(errors.StatusMapper)
	}

	apiErr := mapper.FromError(err)
	apiErr.RequestID = c.GetString(RequestIDKey)

	c.Error(err)
	c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
}
