package utils

import (
	"github.com/gin-gonic/gin"

	"auction-house/internal/auctionerrors"
)

// JSONResponse sends a structured success response
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// JSONError sends a structured error response carrying the stable auction
// error code alongside the HTTP status
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, gin.H{
		"success":   false,
		"errorCode": int(auctionerrors.CodeOf(err)),
		"message":   message,
		"error":     err.Error(),
	})
}
