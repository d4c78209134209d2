package http

import (
	"github.com/gin-gonic/gin"

	"github.com/asteria-rituals/daily-ritual/internal/adapters/http/dto"
)

// AbortWithErrorCode aborts the request chain with a JSON error envelope.
func AbortWithErrorCode(c *gin.Context, code, message string) {
	errResp := dto.NewErrorResponse(code, message).WithTraceID(dto.GetTraceID(c))

	c.AbortWithStatusJSON(dto.HTTPStatusFromCode(code), errResp)
}

func noRoute(c *gin.Context) {
	AbortWithErrorCode(c, dto.ErrorCodeNotFound, "no route for "+c.Request.Method+" "+c.Request.URL.Path)
}

func noMethod(c *gin.Context) {
	AbortWithErrorCode(c, dto.ErrorCodeMethodNotAllowed, "method "+c.Request.Method+" not allowed")
}
