package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/asteria-rituals/daily-ritual/internal/adapters/http/dto"
)

// abortWithEnvelope writes the JSON error envelope unless the handler has
// already started its response.
func abortWithEnvelope(c *gin.Context, code, message string) {
	if c.Writer.Written() {
		c.Abort()
		return
	}

	resp := dto.NewErrorResponse(code, message).WithTraceID(dto.GetTraceID(c))
	c.AbortWithStatusJSON(dto.HTTPStatusFromCode(code), resp)
}
